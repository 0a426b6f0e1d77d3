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

package denormals

import "runtime"

// Disable turns off denormal floating-point support on the current thread and
// returns a function that restores the previous control-register value.
// The restore function must be deferred on the same goroutine:
//
//	defer denormals.Disable()()
//
// The goroutine stays locked to its OS thread until restore runs, because the
// control register is per-thread state and the scheduler is otherwise free to
// migrate the goroutine mid-computation.
func Disable() func() {
	runtime.LockOSThread()
	prev := readControl()
	writeControl(prev | denormalsOffMask)
	return func() {
		writeControl(prev)
		runtime.UnlockOSThread()
	}
}

// Do invokes fn exactly once with denormals disabled and returns its result.
// The prior control-register value is restored verbatim on every exit path;
// a panic from fn propagates unchanged after restoration.
func Do[T any](fn func() T) T {
	defer Disable()()
	return fn()
}
