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

import "fmt"

// Int is a distinct integer: a value of the underlying type T made into its
// own nominal type by the marker type ID. Any value of T is valid; there are
// no failure modes.
//
// The zero value is the wrapped zero of T.
type Int[T Underlying, ID any] struct {
	v T
}

// New constructs an [Int] from a raw value. The identity marker is given
// explicitly; T is inferred from the argument:
//
//	n := instinct.New[node](uint32(42))
func New[ID any, T Underlying](v T) Int[T, ID] {
	return Int[T, ID]{v}
}

// Get returns the raw value unchanged.
func (i Int[T, ID]) Get() T { return i.v }

// Set replaces the stored value in place.
func (i *Int[T, ID]) Set(v T) { i.v = v }

// String implements [fmt.Stringer].
func (i Int[T, ID]) String() string { return fmt.Sprintf("%d", i.v) }
