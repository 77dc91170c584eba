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
	"runtime"
	"sync"
)

// MinParallelLen is the shortest input Parallel will split. Shorter inputs
// are summed as a single chunk on the calling goroutine.
const MinParallelLen = 4096

// Parallel sums samples in T using up to workers goroutines.
// workers <= 0 uses runtime.GOMAXPROCS(0).
//
// The input is split into contiguous chunks, one per worker, with the last
// chunk taking the remainder. Each chunk is summed forward into its own
// accumulator and the partials are added in chunk order, so the result is
// deterministic for a given worker count. Integer results equal Forward.
func Parallel[T Number](samples []float64, workers int) T {
	sum, _ := parallel[T](samples, workers)
	return sum
}

// parallel also returns the number of chunks used.
func parallel[T Number](samples []float64, workers int) (T, int) {
	chunks := chunkCount(len(samples), workers)
	if chunks == 1 {
		return Forward[T](samples), 1
	}

	size := len(samples) / chunks
	partials := make([]T, chunks)

	var wg sync.WaitGroup
	for c := range chunks {
		start := c * size
		end := start + size
		if c == chunks-1 {
			end = len(samples)
		}
		wg.Go(func() {
			partials[c] = Forward[T](samples[start:end])
		})
	}
	wg.Wait()

	var sum T
	for _, p := range partials {
		sum += p
	}
	return sum, chunks
}

func chunkCount(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n < MinParallelLen || workers == 1 {
		return 1
	}
	return min(workers, n)
}
