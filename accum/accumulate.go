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
	"fmt"
	"math"
	"strconv"
)

// Options tunes Accumulate. The zero value is ready to use.
type Options struct {
	// Workers bounds the goroutines used by the Parallel order.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// Result is the outcome of one accumulation.
type Result struct {
	Kind  Kind
	Order Order

	// Workers is the number of chunks summed, 1 for sequential orders.
	Workers int

	// Value is the final total widened to float64. Widening is exact for
	// every kind except Int64 totals beyond 2^53.
	Value float64

	// Int is the exact total for integer kinds and 0 for float kinds.
	Int int64

	// Reference is the float64 forward sum of the same samples.
	Reference float64

	// AbsError is |Value - Reference|.
	AbsError float64

	// RelError is AbsError / |Reference|, or 0 when Reference is 0.
	RelError float64
}

// Native formats the total in its kind's own domain: shortest round-trip
// digits at the kind's float width, or the exact integer.
func (r Result) Native() string {
	switch r.Kind {
	case Float32:
		return strconv.FormatFloat(r.Value, 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(r.Value, 'g', -1, 64)
	case Int32, Int64:
		return strconv.FormatInt(r.Int, 10)
	}
	return ""
}

// Accumulate sums samples in the representation selected by kind, visiting
// them in the given order, and measures the result against Reference.
//
// The samples slice is only read. Overflow and rounding never produce an
// error; the only errors are an invalid kind or order.
func Accumulate(samples []float64, kind Kind, order Order) (Result, error) {
	return AccumulateWith(samples, kind, order, Options{})
}

// AccumulateWith is Accumulate with explicit Options.
func AccumulateWith(samples []float64, kind Kind, order Order, opts Options) (Result, error) {
	return accumulate(samples, kind, order, opts, Reference(samples))
}

func accumulate(samples []float64, kind Kind, order Order, opts Options, ref float64) (Result, error) {
	if !kind.Valid() {
		return Result{}, fmt.Errorf("accumulate: %w: %v", ErrUnknownKind, kind)
	}
	if !order.Valid() {
		return Result{}, fmt.Errorf("accumulate: %w: %v", ErrUnknownOrder, order)
	}

	r := Result{Kind: kind, Order: order, Reference: ref}
	switch kind {
	case Float32:
		v, w := run[float32](samples, order, opts.Workers)
		r.Value, r.Workers = float64(v), w
	case Float64:
		r.Value, r.Workers = run[float64](samples, order, opts.Workers)
	case Int32:
		v, w := run[int32](samples, order, opts.Workers)
		r.Int, r.Workers = int64(v), w
		r.Value = float64(v)
	case Int64:
		v, w := run[int64](samples, order, opts.Workers)
		r.Int, r.Workers = v, w
		r.Value = float64(v)
	}

	r.AbsError = math.Abs(r.Value - r.Reference)
	if r.Reference != 0 {
		r.RelError = r.AbsError / math.Abs(r.Reference)
	}
	return r, nil
}

func run[T Number](samples []float64, order Order, workers int) (T, int) {
	switch order {
	case Backward:
		return Backward[T](samples), 1
	case Parallel:
		return parallel[T](samples, workers)
	}
	return Forward[T](samples), 1
}

// Sweep runs every kind against every order over the same samples,
// kind-major, in the order given. The reference sum is computed once.
func Sweep(samples []float64, kinds []Kind, orders []Order, opts Options) ([]Result, error) {
	ref := Reference(samples)
	results := make([]Result, 0, len(kinds)*len(orders))
	for _, k := range kinds {
		for _, o := range orders {
			r, err := accumulate(samples, k, o, opts, ref)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}
	return results, nil
}
