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

// Conversion between distinct types is always expressed as "take the
// source's raw representation and construct the target from it", so the
// target's constraints are the authority: retagging a value that breaks the
// target's interval, or equals the target's sentinel, panics exactly as the
// target's constructor would.
//
// Concrete sources ([Int], [Ranged]) convert through [Value]; option sources
// convert through [OptionValue], preserving absence. There is no conversion
// from an option source to a concrete target: [OptionValue] does not satisfy
// [Value], so the call does not compile.

// Retag reinterprets src's raw value as Int[T, ID].
func Retag[ID any, T Underlying](src Value[T]) Int[T, ID] {
	return New[ID](src.Get())
}

// RetagRanged reinterprets src's raw value as Ranged[T, B, ID], under B's
// interval check.
func RetagRanged[ID any, B Bounds[T], T Underlying](src Value[T]) Ranged[T, B, ID] {
	return NewRanged[ID, B](src.Get())
}

// RetagSome reinterprets src's raw value as a present Option[T, N, ID],
// under N's sentinel check.
func RetagSome[ID any, N Sentinel[T], T Underlying](src Value[T]) Option[T, N, ID] {
	return Some[ID, N](src.Get())
}

// RetagSomeRanged reinterprets src's raw value as a present
// RangedOption[T, B, N, ID], under both checks.
func RetagSomeRanged[ID any, B Bounds[T], N Sentinel[T], T Underlying](src Value[T]) RangedOption[T, B, N, ID] {
	return SomeRanged[ID, B, N](src.Get())
}

// RetagOption converts an option source to Option[T, N, ID]. An absent
// source yields an absent target carrying the target's own sentinel; a
// present source is re-constructed under N's sentinel check.
func RetagOption[ID any, N Sentinel[T], T Underlying](src OptionValue[T]) Option[T, N, ID] {
	if v, ok := src.Get(); ok {
		return Some[ID, N](v)
	}
	return None[ID, N, T]()
}

// RetagRangedOption converts an option source to
// RangedOption[T, B, N, ID], preserving absence and re-constructing present
// values under both of the target's checks.
func RetagRangedOption[ID any, B Bounds[T], N Sentinel[T], T Underlying](src OptionValue[T]) RangedOption[T, B, N, ID] {
	if v, ok := src.Get(); ok {
		return SomeRanged[ID, B, N](v)
	}
	return NoneRanged[ID, B, N, T]()
}
