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
	"testing"
)

func TestChunkCount(t *testing.T) {
	tests := []struct {
		n, workers, want int
	}{
		{0, 8, 1},
		{MinParallelLen - 1, 8, 1},
		{MinParallelLen, 1, 1},
		{MinParallelLen, 8, 8},
		{100000, 3, 3},
	}
	for _, tt := range tests {
		if got := chunkCount(tt.n, tt.workers); got != tt.want {
			t.Errorf("chunkCount(%d, %d) = %d, want %d", tt.n, tt.workers, got, tt.want)
		}
	}
	if got := chunkCount(MinParallelLen, 0); got < 1 {
		t.Errorf("chunkCount with default workers = %d", got)
	}
}

func TestParallelDeterministic(t *testing.T) {
	xs := lcgSamples(100000)
	for _, workers := range []int{2, 3, 8} {
		first := Parallel[float32](xs, workers)
		for range 5 {
			if got := Parallel[float32](xs, workers); got != first {
				t.Fatalf("workers=%d: got %v, then %v", workers, first, got)
			}
		}
	}
}

func TestParallelMatchesChunkedForward(t *testing.T) {
	xs := lcgSamples(10001)
	const workers = 4
	size := len(xs) / workers

	var want float32
	for c := range workers {
		end := (c + 1) * size
		if c == workers-1 {
			end = len(xs)
		}
		want += Forward[float32](xs[c*size : end])
	}
	if got := Parallel[float32](xs, workers); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParallelResultWorkers(t *testing.T) {
	r, err := AccumulateWith(lcgSamples(MinParallelLen), Float64, Parallel, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if r.Workers != 4 {
		t.Errorf("Workers = %d, want 4", r.Workers)
	}

	r, err = AccumulateWith(lcgSamples(10), Float64, Parallel, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if r.Workers != 1 {
		t.Errorf("short input Workers = %d, want 1", r.Workers)
	}

	r, err = AccumulateWith(lcgSamples(MinParallelLen), Float64, Backward, Options{Workers: 4})
	if err != nil {
		t.Fatal(err)
	}
	if r.Workers != 1 {
		t.Errorf("backward Workers = %d, want 1", r.Workers)
	}
}

func BenchmarkParallel(b *testing.B) {
	xs := lcgSamples(1 << 20)
	for b.Loop() {
		_ = Parallel[float64](xs, 0)
	}
}
