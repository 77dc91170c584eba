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

// Command accumulate sums a reproducible uniform sample sequence using
// float32, float64, int32 and int64 accumulators and reports how far each
// drifts from the float64 reference.
//
// Usage:
//
//	accumulate [-n 100000] [--seed 1] [--kinds float,double,int,long] [--orders forward,backward]
//	accumulate info
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "accumulate:", err)
		os.Exit(1)
	}
}
