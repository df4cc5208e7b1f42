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

//go:build !debug

// Package debug includes debugging helpers that are compiled away unless
// the debug tag is enabled.
package debug

import "testing"

// Enabled is true if the library is being built with the debug tag, which
// enables debug logging and internal assertions.
const Enabled = false

// WithTesting captures debug logs into t until the returned func is called.
// No-op without the debug tag.
func WithTesting(testing.TB) func() { return func() {} }

// Log prints a line of debugging information. No-op without the debug tag.
func Log(string, ...any) {}

// Assert panics if cond is false, but only in debug builds.
func Assert(bool, string, ...any) {}
