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

// Option is a distinct integer with one reserved representation, declared by
// the marker type N, meaning "no value". Present values cover all of T minus
// the sentinel; constructing a present value equal to the sentinel panics
// with [ErrViolation].
//
// Absence is encoded in-band, so an Option is exactly the size of T.
//
// Construct options with [Some], [None] or the Retag functions. The zero
// value reads as a present zero unless N's sentinel is itself zero.
type Option[T Underlying, N Sentinel[T], ID any] struct {
	v T
}

// Some constructs a present [Option]. The identity and sentinel markers are
// given explicitly; T is inferred from the argument. Panics if v equals N's
// sentinel.
func Some[ID any, N Sentinel[T], T Underlying](v T) Option[T, N, ID] {
	checkPresent[T, N](v)
	return Option[T, N, ID]{v}
}

// None constructs an absent [Option]. With no argument to infer from, all
// three type arguments must be supplied:
//
//	instinct.None[user, nullU32, uint32]()
func None[ID any, N Sentinel[T], T Underlying]() Option[T, N, ID] {
	return Option[T, N, ID]{NullOf[T, N]()}
}

// Get returns the stored value and whether one is present. Absent options
// return the zero of T and false.
func (o Option[T, N, ID]) Get() (T, bool) {
	if o.v == NullOf[T, N]() {
		var zero T
		return zero, false
	}
	return o.v, true
}

// IsSome reports whether a value is present.
func (o Option[T, N, ID]) IsSome() bool { return o.v != NullOf[T, N]() }

// IsNone reports whether the option is absent.
func (o Option[T, N, ID]) IsNone() bool { return o.v == NullOf[T, N]() }

// Set replaces the stored value with a present one. Panics if v equals N's
// sentinel; use [Option.Clear] to make the option absent.
func (o *Option[T, N, ID]) Set(v T) {
	checkPresent[T, N](v)
	o.v = v
}

// Clear makes the option absent.
func (o *Option[T, N, ID]) Clear() { o.v = NullOf[T, N]() }

// String implements [fmt.Stringer]. Absent options print as "<none>".
func (o Option[T, N, ID]) String() string {
	if o.IsNone() {
		return "<none>"
	}
	return fmt.Sprintf("%d", o.v)
}
