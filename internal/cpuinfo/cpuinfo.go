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

// Package cpuinfo summarizes the host CPU for the accumulate driver.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one CPU capability flag.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Summary describes the host the accumulation ran on.
type Summary struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []Feature
}

// Detect reads the runtime and golang.org/x/sys/cpu feature flags.
func Detect() Summary {
	s := Summary{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
	switch runtime.GOARCH {
	case "arm64":
		s.Features = arm64Features()
	case "amd64":
		s.Features = amd64Features()
	}
	return s
}

// Present returns the names of the features the CPU reports.
func (s Summary) Present() []string {
	var names []string
	for _, f := range s.Features {
		if f.Present {
			names = append(names, f.Name)
		}
	}
	return names
}

// Print writes s in the layout of the driver's info command.
func (s Summary) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "GOOS: %s\nGOARCH: %s\nNumCPU: %d\nGOMAXPROCS: %d\n",
		s.GOOS, s.GOARCH, s.NumCPU, s.GOMAXPROCS); err != nil {
		return err
	}
	if len(s.Features) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n=== golang.org/x/sys/cpu.%s ===\n", archVar(s.GOARCH)); err != nil {
		return err
	}
	for _, f := range s.Features {
		line := fmt.Sprintf("  %-12s %v", f.Name+":", f.Present)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func archVar(goarch string) string {
	if goarch == "arm64" {
		return "ARM64"
	}
	return "X86"
}

func arm64Features() []Feature {
	return []Feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasFPHP", cpu.ARM64.HasFPHP, "FP16 scalar"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, ""},
		{"HasATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"HasSSE2", cpu.X86.HasSSE2, ""},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, ""},
		{"HasFMA", cpu.X86.HasFMA, ""},
		{"HasAVX512F", cpu.X86.HasAVX512F, ""},
	}
}
