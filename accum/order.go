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
	"strings"

	"golang.org/x/text/cases"
)

// Order selects the traversal used to sum the samples.
type Order uint8

const (
	// Forward sums samples[0] through samples[n-1].
	Forward Order = iota
	// Backward sums samples[n-1] through samples[0].
	Backward
	// Parallel sums contiguous chunks concurrently, then combines the
	// partials in chunk order.
	Parallel

	numOrders
)

var orderNames = [numOrders]string{
	Forward:  "forward",
	Backward: "backward",
	Parallel: "parallel",
}

// Orders returns every supported order in declaration order.
func Orders() []Order {
	return []Order{Forward, Backward, Parallel}
}

// SequentialOrders returns the single-threaded orders.
func SequentialOrders() []Order {
	return []Order{Forward, Backward}
}

// Valid reports whether o is one of the supported orders.
func (o Order) Valid() bool {
	return o < numOrders
}

func (o Order) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
	return orderNames[o]
}

// ParseOrder maps a name such as "forward" to an Order, ignoring case.
func ParseOrder(name string) (Order, error) {
	folded := cases.Fold().String(strings.TrimSpace(name))
	for o, n := range orderNames {
		if n == folded {
			return Order(o), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// ParseOrders parses each name with ParseOrder. An empty list yields
// SequentialOrders().
func ParseOrders(names []string) ([]Order, error) {
	if len(names) == 0 {
		return SequentialOrders(), nil
	}
	orders := make([]Order, 0, len(names))
	for _, name := range names {
		o, err := ParseOrder(name)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
