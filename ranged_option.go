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

// RangedOption combines [Ranged] and [Option]: present values must lie in
// the half-open interval declared by B and differ from the sentinel declared
// by N. The sentinel itself bypasses the interval check in both directions,
// so it may lie outside [low, high); reserving an out-of-interval
// representation for absence keeps the whole interval usable for genuine
// values.
//
// Construct with [SomeRanged], [NoneRanged] or the Retag functions.
type RangedOption[T Underlying, B Bounds[T], N Sentinel[T], ID any] struct {
	v T
}

// SomeRanged constructs a present [RangedOption]. Panics if v lies outside
// B's interval or equals N's sentinel.
func SomeRanged[ID any, B Bounds[T], N Sentinel[T], T Underlying](v T) RangedOption[T, B, N, ID] {
	checkRange[T, B](v)
	checkPresent[T, N](v)
	return RangedOption[T, B, N, ID]{v}
}

// NoneRanged constructs an absent [RangedOption]. The sentinel is stored
// as-is, without an interval check. All four type arguments must be
// supplied.
func NoneRanged[ID any, B Bounds[T], N Sentinel[T], T Underlying]() RangedOption[T, B, N, ID] {
	return RangedOption[T, B, N, ID]{NullOf[T, N]()}
}

// Get returns the stored value and whether one is present. A present value
// is re-validated against B's interval before being returned, mirroring
// [Ranged.Get]; the sentinel is never range-checked.
func (o RangedOption[T, B, N, ID]) Get() (T, bool) {
	if o.v == NullOf[T, N]() {
		var zero T
		return zero, false
	}
	checkRange[T, B](o.v)
	return o.v, true
}

// IsSome reports whether a value is present.
func (o RangedOption[T, B, N, ID]) IsSome() bool { return o.v != NullOf[T, N]() }

// IsNone reports whether the option is absent.
func (o RangedOption[T, B, N, ID]) IsNone() bool { return o.v == NullOf[T, N]() }

// Set replaces the stored value with a present one, under the same checks
// as [SomeRanged]. Use [RangedOption.Clear] to make the option absent.
func (o *RangedOption[T, B, N, ID]) Set(v T) {
	checkRange[T, B](v)
	checkPresent[T, N](v)
	o.v = v
}

// Clear makes the option absent, storing the sentinel without an interval
// check.
func (o *RangedOption[T, B, N, ID]) Clear() { o.v = NullOf[T, N]() }

// String implements [fmt.Stringer]. Absent options print as "<none>".
func (o RangedOption[T, B, N, ID]) String() string {
	if o.IsNone() {
		return "<none>"
	}
	return fmt.Sprintf("%d", o.v)
}
