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

import "math"

// Number is the set of types a running total may be held in.
type Number interface {
	float32 | float64 | int32 | int64
}

// Convert converts a sample to T the way the kernels do before adding it.
//
// float32 rounds to nearest. Integer types truncate toward zero; NaN becomes
// 0, values outside the int64 range saturate to MinInt64/MaxInt64, and int32
// keeps the low 32 bits of the truncated int64.
//
// Example:
//
//	Convert[int32](-1.9)  // -1
//	Convert[int32](3e9)   // -1294967296
//	Convert[int64](1e300) // math.MaxInt64
func Convert[T Number](x float64) T {
	return converter[T]()(x)
}

// converter resolves the conversion for T once so the kernels do not type
// switch per element.
func converter[T Number]() func(float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return func(x float64) T { return T(float32(x)) }
	case int32:
		return func(x float64) T { return T(int32(truncate(x))) }
	case int64:
		return func(x float64) T { return T(truncate(x)) }
	}
	return func(x float64) T { return T(x) }
}

// truncate converts x to int64 toward zero with saturation.
func truncate(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= 1<<63:
		return math.MaxInt64
	case x < -(1 << 63):
		return math.MinInt64
	}
	return int64(x)
}

// Forward sums samples front to back in T.
// Returns 0 for an empty slice.
//
// Example:
//
//	Forward[float64]([]float64{0.1, 0.2, 0.3}) // 0.6000000000000001
//	Forward[int32]([]float64{0.1, 0.2, 0.3})   // 0
func Forward[T Number](samples []float64) T {
	conv := converter[T]()
	var sum T
	for _, x := range samples {
		sum += conv(x)
	}
	return sum
}

// Backward sums samples back to front in T.
// Returns 0 for an empty slice.
//
// For integer T the result always equals Forward. For float T the two may
// differ in the low bits.
func Backward[T Number](samples []float64) T {
	conv := converter[T]()
	var sum T
	for i := len(samples) - 1; i >= 0; i-- {
		sum += conv(samples[i])
	}
	return sum
}
