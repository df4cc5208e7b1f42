// Copyright 2026 The instinct Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build debug

// Package debug includes debugging helpers that are compiled away unless
// the debug tag is enabled.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/timandy/routine"
)

// Enabled is true if the library is being built with the debug tag, which
// enables debug logging and internal assertions.
const Enabled = true

// tls routes log output to the test that installed itself via [WithTesting],
// following goroutines the test spawns.
var tls = routine.NewInheritableThreadLocal[testing.TB]()

// WithTesting captures debug logs into t until the returned func is called:
//
//	defer debug.WithTesting(t)()
func WithTesting(t testing.TB) func() {
	prev := tls.Get()
	tls.Set(t)
	return func() { tls.Set(prev) }
}

// Log prints a line of debugging information, tagged with the callsite and
// the current goroutine. Under a test that called [WithTesting], the line
// goes to the test log instead of stderr.
func Log(format string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	msg := fmt.Sprintf("%s:%d [g%04d] %s",
		filepath.Base(file), line, routine.Goid(), fmt.Sprintf(format, args...))

	if t := tls.Get(); t != nil {
		t.Log(msg)
		return
	}

	_, _ = fmt.Fprintln(os.Stderr, msg)
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug builds.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("instinct: internal assertion failed: "+format, args...))
	}
}
