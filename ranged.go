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

// Ranged is a distinct integer constrained to the half-open interval
// [low, high) declared by the marker type B. Construction, overwrite and
// read all enforce the interval; a value outside it panics with
// [ErrViolation].
//
// The zero value is only usable when B's interval contains zero.
type Ranged[T Underlying, B Bounds[T], ID any] struct {
	v T
}

// NewRanged constructs a [Ranged] from a raw value. The identity and bounds
// markers are given explicitly; T is inferred from the argument:
//
//	p := instinct.NewRanged[opacity, percent](uint8(50))
//
// Panics if v lies outside B's interval.
func NewRanged[ID any, B Bounds[T], T Underlying](v T) Ranged[T, B, ID] {
	checkRange[T, B](v)
	return Ranged[T, B, ID]{v}
}

// Get returns the raw value, re-validating it against B's interval first.
// The re-check catches invariant breakage introduced by code paths that
// bypass the typed interface, such as unsafe writes or memory corruption; a
// stored out-of-interval value panics here rather than leaking out.
func (r Ranged[T, B, ID]) Get() T {
	checkRange[T, B](r.v)
	return r.v
}

// Set replaces the stored value in place. Panics if v lies outside B's
// interval.
func (r *Ranged[T, B, ID]) Set(v T) {
	checkRange[T, B](v)
	r.v = v
}

// String implements [fmt.Stringer]. It prints the stored representation
// without the read-side re-validation, so a corrupted value can still be
// rendered from a panic or debugger path.
func (r Ranged[T, B, ID]) String() string { return fmt.Sprintf("%d", r.v) }
