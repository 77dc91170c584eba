// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package accum

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrUnknownKind is returned for a Kind outside the four supported representations.
	ErrUnknownKind = errors.New("unknown accumulator kind")

	// ErrUnknownOrder is returned for an Order outside Forward, Backward and Parallel.
	ErrUnknownOrder = errors.New("unknown accumulation order")
)

// Kind selects the type that holds the running total.
type Kind uint8

const (
	Float32 Kind = iota
	Float64
	Int32
	Int64

	numKinds
)

var kindNames = [numKinds]string{
	Float32: "float32",
	Float64: "float64",
	Int32:   "int32",
	Int64:   "int64",
}

// C spellings of the same representations.
var kindAliases = map[string]Kind{
	"float":  Float32,
	"double": Float64,
	"int":    Int32,
	"long":   Int64,
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{Float32, Float64, Int32, Int64}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// IsInteger reports whether k truncates samples and wraps on overflow.
func (k Kind) IsInteger() bool {
	return k == Int32 || k == Int64
}

// Bits returns the storage width of k, or 0 for an invalid kind.
func (k Kind) Bits() int {
	switch k {
	case Float32, Int32:
		return 32
	case Float64, Int64:
		return 64
	}
	return 0
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind maps a name to a Kind. Both Go names (float32, int64, ...) and
// C names (float, double, int, long) are accepted, ignoring case.
func ParseKind(name string) (Kind, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == folded {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[folded]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// ParseKinds parses each name with ParseKind. An empty list yields Kinds().
func ParseKinds(names []string) ([]Kind, error) {
	if len(names) == 0 {
		return Kinds(), nil
	}
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
