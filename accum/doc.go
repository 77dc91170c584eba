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

// Package accum sums float64 samples using a chosen accumulator type so the
// precision and overflow behavior of each type can be compared.
//
// # Accumulator Kinds
//
// The running total is held in one of four representations:
//   - Float32: each sample is rounded to float32, sums round at float32
//   - Float64: the native sample type, sums round at float64
//   - Int32: each sample is truncated toward zero, sums wrap at 32 bits
//   - Int64: each sample is truncated toward zero, sums wrap at 64 bits
//
// Overflow and rounding are never reported as errors. Exposing them is the
// point of the package.
//
// # Orders
//
// Forward and Backward are strictly sequential traversals. Parallel splits
// the input into contiguous chunks summed on separate goroutines; the chunk
// partials are then combined in chunk order. Parallel changes the rounding
// trajectory for float kinds and is only used when asked for explicitly.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-accumulate/accum"
//
//	xs := []float64{0.1, 0.2, 0.3}
//	r, _ := accum.Accumulate(xs, accum.Float64, accum.Forward)
//	// r.Value == 0.6000000000000001
//
//	r, _ = accum.Accumulate(xs, accum.Int32, accum.Forward)
//	// r.Int == 0, every sample truncates to 0
//
//	// Compile-time dispatch
//	s := accum.Backward[float32](xs)
package accum
