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

// Package denormals temporarily disables denormal (subnormal) floating-point
// support for the duration of a computation, then restores the previous
// hardware state.
//
// Arithmetic on subnormal values is dramatically slower than normal-range
// arithmetic on most CPUs (often 10-100x), which matters in tight numeric
// loops: IIR filter tails, exponential decays, gradient underflow in ML
// workloads. Setting the flush-to-zero control bits trades the bottom of the
// float range for predictable throughput.
//
// # Usage
//
//	import "github.com/ajroetker/go-denormals/denormals"
//
//	// Run one computation with denormals off.
//	sum := denormals.Do(func() float64 {
//	    return processTail(samples)
//	})
//
//	// Or bracket a region explicitly.
//	restore := denormals.Disable()
//	defer restore()
//
// The previous control-register value is restored bit-for-bit on every exit
// path, including panics, so rounding mode and exception masks set by the
// caller survive the scope untouched. Scopes nest like a stack: an inner
// scope saves the already-masked value and its restore is a no-op with
// respect to the outer scope.
//
// # Architecture support
//
// Exactly one register accessor is compiled in per target:
//   - amd64, 386 (hardware floating point): the SSE MXCSR register, setting
//     FTZ (flush-to-zero, bit 15) and DAZ (denormals-are-zero, bit 6).
//   - arm64: the FPCR register, setting FZ (bit 24), which flushes both
//     subnormal inputs and subnormal results.
//
// Other architectures fail at compile time; there is no software fallback
// and no runtime detection.
//
// # Goroutines and threads
//
// The control register belongs to the OS thread, not the goroutine, so
// Disable locks the calling goroutine to its thread until the restore
// function runs. The restore function must be called on the goroutine that
// created it; handing it to another goroutine would restore some other
// thread's register.
package denormals
