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

package instinct

import (
	"errors"
	"fmt"
)

// ErrViolation is wrapped by every contract-violation panic raised by this
// package. It exists so that tests (and only tests) can identify the panic
// with [errors.Is]; production code is not expected to recover it.
var ErrViolation = errors.New("instinct: contract violation")

// violate reports a contract violation: an attempt to construct, overwrite
// or read a value outside its declared domain. Violations are unrecoverable
// programming errors, so this panics rather than returning.
func violate(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrViolation}, args...)...))
}
