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

// Reference is the float64 forward sum of samples, the baseline every
// Result is measured against.
func Reference(samples []float64) float64 {
	return Forward[float64](samples)
}

// Compensated returns the Neumaier-compensated float64 sum of samples.
// Its error does not grow with len(samples), which makes the drift of the
// plain float64 Reference itself measurable.
func Compensated(samples []float64) float64 {
	var sum, c float64
	for _, x := range samples {
		t := sum + x
		if math.Abs(sum) >= math.Abs(x) {
			c += (sum - t) + x
		} else {
			c += (x - t) + sum
		}
		sum = t
	}
	return sum + c
}

// ULPDistance32 returns the number of representable float32 values between
// a and b. NaN inputs return math.MaxUint32.
func ULPDistance32(a, b float32) uint32 {
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return math.MaxUint32
	}
	ia, ib := orderedBits32(a), orderedBits32(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// orderedBits32 maps float32 bit patterns onto a monotonic integer line,
// with -0 and +0 both at zero.
func orderedBits32(f float32) int64 {
	bits := math.Float32bits(f)
	if bits&(1<<31) != 0 {
		return -int64(bits &^ (1 << 31))
	}
	return int64(bits)
}
