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

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests that read the control register directly pin the goroutine first so
// that consecutive reads observe the same thread. LockOSThread nests, so the
// pin inside Disable stacks on top of ours.

func TestDisableRestoresControlWord(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	before := readControl()
	restore := Disable()
	during := readControl()
	require.Equal(t, denormalsOffMask, during&denormalsOffMask,
		"disable mask not set while scope is active")
	restore()
	after := readControl()
	require.Equal(t, before, after, "control word not restored bit-for-bit")
}

func TestDoReturnsResult(t *testing.T) {
	got := Do(func() int { return 42 })
	require.Equal(t, 42, got)

	gotStr := Do(func() string { return "flushed" })
	require.Equal(t, "flushed", gotStr)
}

func TestDoRestoresOnPanic(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	before := readControl()

	require.PanicsWithValue(t, "boom", func() {
		Do(func() int {
			panic("boom")
		})
	}, "panic must propagate unchanged")

	after := readControl()
	require.Equal(t, before, after, "control word not restored after panic")
}

func TestNestedScopes(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	before := readControl()

	restoreOuter := Disable()
	outerActive := readControl()

	restoreInner := Disable()
	restoreInner()

	// Inner exit must leave the outer scope's state in place, not the
	// pre-outer value.
	require.Equal(t, outerActive, readControl(),
		"inner restore clobbered the outer scope")
	require.Equal(t, denormalsOffMask, readControl()&denormalsOffMask)

	restoreOuter()
	require.Equal(t, before, readControl())
}

func TestSequentialScopes(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	before := readControl()
	for i := 0; i < 3; i++ {
		restore := Disable()
		restore()
		require.Equal(t, before, readControl(), "scope %d did not restore", i)
	}
}
