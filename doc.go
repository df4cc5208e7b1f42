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

// Package instinct provides parametrized distinct integer types: compact
// wrappers that make semantically different integers incompatible at compile
// time, even when they share the same underlying representation. A node index
// and an edge index can both be a uint32 without ever being interchangeable.
//
// There are four constructors, all with identical size and layout to the
// integer they wrap:
//
//   - [Int]: a distinct integer with no further constraints.
//   - [Ranged]: a distinct integer constrained to a half-open interval
//     [low, high).
//   - [Option]: a distinct integer with one reserved sentinel representation
//     meaning "no value".
//   - [RangedOption]: the union of [Ranged] and [Option]; the sentinel may
//     legitimately lie outside the interval.
//
// Each constructor takes the underlying integer type, a marker type acting
// as a compile-time identity tag, and (where applicable) marker types
// declaring the interval and the sentinel. Instantiations with identical
// parameters are the identical type; any difference yields an unrelated type
// that requires an explicit conversion:
//
//	type node struct{}
//	type edge struct{}
//
//	type NodeID = instinct.Int[uint32, node]
//	type EdgeID = instinct.Int[uint32, edge]
//
//	n := instinct.New[node](uint32(42)) // a NodeID
//	e := instinct.New[edge](n.Get())    // explicit; n is not an EdgeID
//
// # Contract violations
//
// Constructing, overwriting, or reading a value outside its declared domain
// is a programming error, not recoverable input validation. Every such
// violation panics with an error wrapping [ErrViolation]; nothing in this
// package returns an error. Ranged types additionally re-validate on every
// read, so a value corrupted through an untyped code path cannot be read
// back silently.
//
// # Conversions
//
// Conversion is always "take the source's raw representation and construct
// the target from it", so the target's own constraints are the authority; see
// [Retag] and its siblings. Converting an option type to a non-option type is
// deliberately absent from the API: resolve the option to a concrete value
// first.
package instinct
