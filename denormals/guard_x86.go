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

//go:build amd64 || (386 && !386.softfloat)

package denormals

// controlWord mirrors the 32-bit SSE MXCSR register.
type controlWord = uint32

// FTZ (flush-to-zero, bit 15) flushes subnormal results; DAZ
// (denormals-are-zero, bit 6) treats subnormal inputs as zero. Exception mask
// bits 7-12 are left alone.
const denormalsOffMask controlWord = 0x8040

// Implemented in guard_amd64.s / guard_386.s via STMXCSR / LDMXCSR.
// The call itself is the compiler barrier: surrounding float ops cannot be
// reordered across a non-inlinable assembly function.

func readControl() controlWord

func writeControl(w controlWord)
