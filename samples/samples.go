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

// Package samples generates the reproducible input sequences summed by
// package accum.
//
// The generator is the 32-bit Mersenne Twister with the same parameters and
// seeding as C++ std::mt19937, and doubles are built the way libstdc++'s
// std::uniform_real_distribution<double> builds them. Uniform(n, 1) therefore
// yields the same sequence as a C++ program seeding std::mt19937 with 1.
package samples

const (
	// DefaultN is the number of samples the driver sums.
	DefaultN = 100000

	// DefaultSeed seeds the generator when none is given.
	DefaultSeed = 1
)

// Source produces uniformly distributed 32-bit values.
type Source interface {
	Uint32() uint32
}

// Uniform returns n values in [0, 1) drawn from an MT19937 seeded with seed.
// n <= 0 returns an empty slice.
func Uniform(n int, seed uint32) []float64 {
	if n <= 0 {
		return []float64{}
	}
	return Fill(make([]float64, n), New(seed))
}

// Fill overwrites dst with canonical doubles from src and returns it.
func Fill(dst []float64, src Source) []float64 {
	for i := range dst {
		dst[i] = Canonical(src)
	}
	return dst
}
