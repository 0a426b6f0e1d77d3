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

//go:build !amd64 && !arm64 && !(386 && !386.softfloat)

package denormals

// There is no register accessor for this target and no software fallback,
// so the build must stop here rather than at run time. The stubs below keep
// the rest of the package compiling so the one deliberate error is the only
// diagnostic the user sees.

var _ = ERROR_denormal_control_requires_amd64_arm64_or_386_with_hardware_sse

type controlWord = uint32

const denormalsOffMask controlWord = 0

func readControl() controlWord { return 0 }

func writeControl(w controlWord) {}
