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

package samples

import "math"

const (
	mtN       = 624
	mtM       = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
	initMult  = 1812433253
)

// MT19937 is the 32-bit Mersenne Twister. It is not safe for concurrent use.
type MT19937 struct {
	state [mtN]uint32
	index int
}

// New returns a generator seeded with seed.
func New(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed resets the generator state from seed.
func (mt *MT19937) Seed(seed uint32) {
	mt.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := mt.state[i-1]
		mt.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = mtN
}

// Uint32 returns the next tempered output.
func (mt *MT19937) Uint32() uint32 {
	if mt.index >= mtN {
		mt.twist()
	}
	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (mt *MT19937) twist() {
	for i := range mtN {
		y := (mt.state[i] & upperMask) | (mt.state[(i+1)%mtN] & lowerMask)
		next := mt.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		mt.state[i] = next
	}
	mt.index = 0
}

// Canonical returns a double in [0, 1) built from two draws of src, low
// word first: (lo + hi*2^32) / 2^64. A result that rounds up to 1 is
// clamped to the largest double below 1.
func Canonical(src Source) float64 {
	lo := float64(src.Uint32())
	hi := float64(src.Uint32())
	r := (lo + hi*(1<<32)) / (1 << 64)
	if r >= 1 {
		r = math.Nextafter(1, 0)
	}
	return r
}
