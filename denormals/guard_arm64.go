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

//go:build arm64

package denormals

// controlWord mirrors the 64-bit FPCR register.
type controlWord = uint64

// FZ (flush-to-zero, bit 24). AArch64 has no separate denormals-are-zero
// control; FZ flushes subnormal inputs as well as subnormal results.
const denormalsOffMask controlWord = 1 << 24

// Implemented in guard_arm64.s via MRS/MSR on FPCR.

func readControl() controlWord

func writeControl(w controlWord)
