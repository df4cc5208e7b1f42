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

package instinct_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/RetroDev256/instinct"
)

// Identity tags shared by the tests.
type nodeTag struct{}
type edgeTag struct{}

// percent declares [0, 100) over uint32.
type percent struct{}

func (percent) Bounds() (low, high uint32) { return 0, 100 }

// window declares [10, 20) over int16.
type window struct{}

func (window) Bounds() (low, high int16) { return 10, 20 }

// nullMaxU32 reserves the all-ones representation, outside any small index
// space.
type nullMaxU32 struct{}

func (nullMaxU32) Null() uint32 { return math.MaxUint32 }

// nullZeroU32 reserves zero, for conversions between differing sentinels.
type nullZeroU32 struct{}

func (nullZeroU32) Null() uint32 { return 0 }

// nullNegOne reserves -1 over int16, outside window's interval.
type nullNegOne struct{}

func (nullNegOne) Null() int16 { return -1 }

// nullFifty reserves a value inside percent's interval, to pin the sentinel
// check down independently of the range check.
type nullFifty struct{}

func (nullFifty) Null() uint32 { return 50 }

// requireViolation asserts that f panics with an error wrapping
// instinct.ErrViolation.
func requireViolation(t *testing.T, f func()) {
	t.Helper()

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, _ = r.(error)
			}
		}()
		f()
	}()
	require.ErrorIs(t, err, instinct.ErrViolation, "expected a contract-violation panic")
}

func TestTypeIdentity(t *testing.T) {
	t.Parallel()

	// Instantiations with identical parameters are the identical type, so
	// values flow between them freely. The inverse laws are compile errors:
	// Int[uint32, nodeTag] does not assign to Int[uint32, edgeTag], nor to
	// Int[uint64, nodeTag], and a Ranged or Option with a different marker
	// is just as unrelated.
	type NodeID = instinct.Int[uint32, nodeTag]
	var id NodeID = instinct.New[nodeTag](uint32(5))
	require.Equal(t, uint32(5), id.Get())

	type Percent = instinct.Ranged[uint32, percent, nodeTag]
	var p Percent = instinct.NewRanged[nodeTag, percent](uint32(50))
	require.Equal(t, uint32(50), p.Get())

	type SparseID = instinct.Option[uint32, nullMaxU32, nodeTag]
	var s SparseID = instinct.Some[nodeTag, nullMaxU32](uint32(5))
	require.True(t, s.IsSome())
}

func TestZeroOverhead(t *testing.T) {
	t.Parallel()

	// Every wrapper is exactly the size of its underlying type.
	require.Equal(t, unsafe.Sizeof(uint32(0)),
		unsafe.Sizeof(instinct.New[nodeTag](uint32(0))))
	require.Equal(t, unsafe.Sizeof(int16(0)),
		unsafe.Sizeof(instinct.NewRanged[nodeTag, window](int16(10))))
	require.Equal(t, unsafe.Sizeof(uint32(0)),
		unsafe.Sizeof(instinct.None[nodeTag, nullMaxU32, uint32]()))
	require.Equal(t, unsafe.Sizeof(int16(0)),
		unsafe.Sizeof(instinct.NoneRanged[nodeTag, window, nullNegOne, int16]()))
}

func TestMarkerHelpers(t *testing.T) {
	t.Parallel()

	low, high := instinct.Range[uint32, percent]()
	require.Equal(t, uint32(0), low)
	require.Equal(t, uint32(100), high)

	low16, high16 := instinct.Range[int16, window]()
	require.Equal(t, int16(10), low16)
	require.Equal(t, int16(20), high16)

	require.Equal(t, uint32(math.MaxUint32), instinct.NullOf[uint32, nullMaxU32]())
	require.Equal(t, int16(-1), instinct.NullOf[int16, nullNegOne]())
}
