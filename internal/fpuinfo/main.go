// Copyright 2025 go-denormals Authors
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

// Package main provides a diagnostic tool that prints floating-point related
// CPU features and demonstrates denormal flushing on the current machine.
package main

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-denormals/denormals"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64", "386":
		printX86Features()
	}
	fmt.Println()

	demonstrateFlush()
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Println("  Denormal control: FPCR.FZ (bit 24)")
}

func printX86Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Println("  Denormal control: MXCSR FTZ (bit 15) | DAZ (bit 6)")
}

//go:noinline
func halve(x float32) float32 { return x * 0.5 }

func demonstrateFlush() {
	small := float32(math.SmallestNonzeroFloat32 * (1 << 23)) // smallest normal

	outside := halve(small)
	fmt.Printf("smallest normal * 0.5 outside scope: %g (bits %#08x, subnormal=%v)\n",
		outside, math.Float32bits(outside), isSubnormal(outside))

	inside := denormals.Do(func() float32 { return halve(small) })
	fmt.Printf("smallest normal * 0.5 inside scope:  %g (bits %#08x, subnormal=%v)\n",
		inside, math.Float32bits(inside), isSubnormal(inside))

	again := halve(small)
	fmt.Printf("smallest normal * 0.5 after scope:   %g (bits %#08x, subnormal=%v)\n",
		again, math.Float32bits(again), isSubnormal(again))
}

func isSubnormal(f float32) bool {
	bits := math.Float32bits(f)
	return bits&0x7f800000 == 0 && bits&0x007fffff != 0
}
