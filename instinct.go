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
	"golang.org/x/exp/constraints"

	"github.com/RetroDev256/instinct/internal/debug"
)

// Underlying is the set of integer types a distinct type may wrap.
type Underlying interface {
	constraints.Integer
}

// Bounds is the contract for a marker type declaring the half-open interval
// [low, high) of a ranged type's valid values. Implementations are expected
// to be empty structs returning constants:
//
//	type percent struct{}
//	func (percent) Bounds() (low, high uint8) { return 0, 100 }
//
// The marker is part of the type's identity: two ranged types whose markers
// differ are unrelated types even if the intervals they declare are equal.
type Bounds[T Underlying] interface {
	Bounds() (low, high T)
}

// Sentinel is the contract for a marker type declaring the one reserved
// representation an option type stores for absence. The sentinel is never a
// valid present value. Choose it outside the domain of meaningful values
// (for example, the maximum of T for a small index space).
type Sentinel[T Underlying] interface {
	Null() T
}

// Value is implemented by the distinct types in this package that always
// hold a value: [Int] and [Ranged]. It is the conversion source accepted by
// [Retag], [RetagRanged], [RetagSome] and [RetagSomeRanged].
//
// Option types do not implement Value, which is what makes an
// option-to-concrete conversion a compile error rather than a runtime one.
type Value[T Underlying] interface {
	Get() T
}

// OptionValue is implemented by [Option] and [RangedOption]. It is the
// conversion source accepted by [RetagOption] and [RetagRangedOption].
type OptionValue[T Underlying] interface {
	Get() (T, bool)
}

// Range returns the interval declared by the marker type B.
func Range[T Underlying, B Bounds[T]]() (low, high T) {
	var b B
	return b.Bounds()
}

// NullOf returns the sentinel declared by the marker type N.
func NullOf[T Underlying, N Sentinel[T]]() T {
	var n N
	return n.Null()
}

// checkRange is the shared guard for the ranged constructors: construct,
// overwrite and read all funnel through it.
func checkRange[T Underlying, B Bounds[T]](v T) {
	var b B
	low, high := b.Bounds()
	debug.Assert(low <= high, "malformed bounds marker %T: [%d, %d)", b, low, high)
	if v < low || v >= high {
		violate("value %d outside range [%d, %d)", v, low, high)
	}
}

// checkPresent rejects a present value equal to N's sentinel.
func checkPresent[T Underlying, N Sentinel[T]](v T) {
	if v == NullOf[T, N]() {
		violate("present value %d equals the null sentinel", v)
	}
}
