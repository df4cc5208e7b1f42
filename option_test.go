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

	"github.com/stretchr/testify/assert"

	"github.com/RetroDev256/instinct"
)

func TestOptionRoundTrip(t *testing.T) {
	t.Parallel()

	o := instinct.Some[nodeTag, nullMaxU32](uint32(5))
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, uint32(5), v)
	assert.True(t, o.IsSome())
	assert.False(t, o.IsNone())

	// Every representation except the sentinel is a valid present value.
	o = instinct.Some[nodeTag, nullMaxU32](uint32(math.MaxUint32 - 1))
	v, ok = o.Get()
	assert.True(t, ok)
	assert.Equal(t, uint32(math.MaxUint32-1), v)
}

func TestOptionNone(t *testing.T) {
	t.Parallel()

	o := instinct.None[nodeTag, nullMaxU32, uint32]()
	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.True(t, o.IsNone())
	assert.False(t, o.IsSome())
}

func TestOptionSentinelRejected(t *testing.T) {
	t.Parallel()

	requireViolation(t, func() { instinct.Some[nodeTag, nullMaxU32](uint32(math.MaxUint32)) })
	requireViolation(t, func() { instinct.Some[nodeTag, nullNegOne](int16(-1)) })
	requireViolation(t, func() { instinct.Some[nodeTag, nullZeroU32](uint32(0)) })
}

func TestOptionSetClear(t *testing.T) {
	t.Parallel()

	o := instinct.None[nodeTag, nullNegOne, int16]()
	o.Set(7)
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, int16(7), v)

	requireViolation(t, func() { o.Set(-1) })
	assert.True(t, o.IsSome(), "a rejected Set must not alter the value")

	o.Clear()
	assert.True(t, o.IsNone())

	o.Set(0)
	assert.True(t, o.IsSome())
}

func TestOptionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", instinct.Some[nodeTag, nullMaxU32](uint32(7)).String())
	assert.Equal(t, "<none>", instinct.None[nodeTag, nullMaxU32, uint32]().String())
}
