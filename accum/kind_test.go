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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"float32", Float32},
		{"float", Float32},
		{"FLOAT64", Float64},
		{"double", Float64},
		{" Int32 ", Int32},
		{"int", Int32},
		{"int64", Int64},
		{"Long", Int64},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.name)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := ParseKind("uint8"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(uint8): got %v, want ErrUnknownKind", err)
	}
}

func TestParseKinds(t *testing.T) {
	got, err := ParseKinds(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Kinds(), got); diff != "" {
		t.Errorf("ParseKinds(nil) mismatch (-want +got):\n%s", diff)
	}

	got, err = ParseKinds([]string{"long", "float"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Kind{Int64, Float32}, got); diff != "" {
		t.Errorf("ParseKinds mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseKinds([]string{"int", "bogus"}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestKindMethods(t *testing.T) {
	for _, k := range Kinds() {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("%v does not round-trip: %v, %v", k, back, err)
		}
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("invalid kind String() = %q", got)
	}
	if Float32.IsInteger() || Float64.IsInteger() || !Int32.IsInteger() || !Int64.IsInteger() {
		t.Error("IsInteger misclassifies a kind")
	}
	if Float32.Bits() != 32 || Int64.Bits() != 64 || Kind(9).Bits() != 0 {
		t.Error("Bits returned the wrong width")
	}
}

func TestParseOrders(t *testing.T) {
	got, err := ParseOrders(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Order{Forward, Backward}, got); diff != "" {
		t.Errorf("ParseOrders(nil) mismatch (-want +got):\n%s", diff)
	}

	got, err = ParseOrders([]string{"Parallel", "backward"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Order{Parallel, Backward}, got); diff != "" {
		t.Errorf("ParseOrders mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseOrder("sideways"); !errors.Is(err, ErrUnknownOrder) {
		t.Errorf("got %v, want ErrUnknownOrder", err)
	}
	if got := Order(7).String(); got != "Order(7)" {
		t.Errorf("invalid order String() = %q", got)
	}
}

func TestSweepLayout(t *testing.T) {
	xs := []float64{0.5, 1.5, 2.5}
	results, err := Sweep(xs, []Kind{Int64, Float32}, []Order{Forward, Backward}, Options{})
	if err != nil {
		t.Fatal(err)
	}

	type cell struct {
		Kind  Kind
		Order Order
		Int   int64
		Value float64
	}
	var got []cell
	for _, r := range results {
		got = append(got, cell{r.Kind, r.Order, r.Int, r.Value})
		if r.Reference != 4.5 {
			t.Errorf("%v/%v: reference %v, want 4.5", r.Kind, r.Order, r.Reference)
		}
	}
	want := []cell{
		{Int64, Forward, 3, 3},
		{Int64, Backward, 3, 3},
		{Float32, Forward, 0, 4.5},
		{Float32, Backward, 0, 4.5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sweep mismatch (-want +got):\n%s", diff)
	}

	if _, err := Sweep(xs, []Kind{Kind(200)}, []Order{Forward}, Options{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}
