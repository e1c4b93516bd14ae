// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"

	"github.com/ndvis/ndvis/events"
)

func assertTransformEqualTol(t *testing.T, want, have Transform, tol float32) {
	t.Helper()
	tolassert.EqualTolSlice(t, want.Scale, have.Scale, tol)
	tolassert.EqualTolSlice(t, want.Translate, have.Translate, tol)
}

func TestEmptyChainIdentity(t *testing.T) {
	ch := NewChain(0)
	assert.Equal(t, DefaultDim, ch.Dim())
	assert.Equal(t, 0, ch.Len())

	comb := ch.Combined()
	assert.Equal(t, []float32{1, 1, 1, 1}, comb.Scale)
	assert.Equal(t, []float32{0, 0, 0, 0}, comb.Translate)

	ch2 := NewChain(2)
	assert.Equal(t, []float32{1, 1}, ch2.Combined().Scale)
	assert.Equal(t, []float32{0, 0}, ch2.Combined().Translate)
}

func TestChainCombined(t *testing.T) {
	a := New([]float32{2, 3}, []float32{1, -1})
	b := New([]float32{4, 5}, []float32{10, 20})
	ch := NewChain(2, a, b)

	comb := ch.Combined()
	assert.Equal(t, []float32{8, 15}, comb.Scale)
	assert.Equal(t, []float32{14, 15}, comb.Translate)
}

// Combined of the full chain must equal folding combined of chain[:n-1]
// with the last element, for every prefix length.
func TestChainCompositionIdentity(t *testing.T) {
	tfs := []Transform{
		New([]float32{2, 3, 1}, []float32{1, -1, 0}),
		New([]float32{1, 0.5, 4}, []float32{0, 7, -2}),
		Scaling(3, 3, 3),
		Translation(1, 2, 3),
	}
	prefix := NewChain(3)
	full := NewChain(3)
	for _, tf := range tfs {
		full.Append(tf)
	}
	comb := prefix.Combined()
	for _, tf := range tfs {
		comb = comb.Compose(tf)
	}
	assertTransformEqualTol(t, full.Combined(), comb, standardTol)
}

func TestChainInsertRemove(t *testing.T) {
	a := Scaling(2, 2)
	b := Translation(5, -5)
	ch := NewChain(2, a, b)
	before := ch.Combined()

	mid := New([]float32{3, 1}, []float32{0, 9})
	assert.NoError(t, ch.Insert(1, mid))
	assert.Equal(t, 3, ch.Len())
	got, err := ch.At(1)
	assert.NoError(t, err)
	assert.Equal(t, mid, got)

	// inserting then removing at the same index restores the combined
	// transform
	removed, err := ch.Remove(1)
	assert.NoError(t, err)
	assert.Equal(t, mid, removed)
	assertTransformEqualTol(t, before, ch.Combined(), standardTol)
}

func TestChainHigherDimElement(t *testing.T) {
	ch := NewChain(2)
	ch.Append(New([]float32{2, 3, 4}, []float32{1, -1, 5}))

	// the combined transform grows to the element's dimensionality;
	// Dim stays the construction-time floor
	assert.Equal(t, 2, ch.Dim())
	comb := ch.Combined()
	assert.Equal(t, 3, comb.Dim())
	assert.Equal(t, []float32{2, 3, 4}, comb.Scale)
	assert.Equal(t, []float32{1, -1, 5}, comb.Translate)
}

func TestChainIndexErrors(t *testing.T) {
	ch := NewChain(2, Scaling(2, 2))

	assert.ErrorIs(t, ch.Insert(-1, Identity(2)), ErrIndexOutOfRange)
	assert.ErrorIs(t, ch.Insert(2, Identity(2)), ErrIndexOutOfRange)
	assert.NoError(t, ch.Insert(1, Identity(2)))

	_, err := ch.Remove(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ch.Remove(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = ch.At(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestChainReorderUnsupported(t *testing.T) {
	ch := NewChain(2, Scaling(2, 2), Translation(1, 1))
	assert.ErrorIs(t, ch.Reorder(1, 0), ErrUnsupported)
	// chain unchanged
	assert.Equal(t, 2, ch.Len())
}

func TestChainEvents(t *testing.T) {
	ch := NewChain(2)
	var got []events.Event
	ch.Listeners.Add(events.Added, func(e events.Event) {
		// combined must already reflect the mutation when the
		// listener runs
		got = append(got, e)
		assert.Equal(t, []float32{2, 2}, ch.Combined().Scale)
	})
	ch.Listeners.Add(events.Removed, func(e events.Event) {
		got = append(got, e)
		assert.True(t, ch.Combined().IsIdentity())
	})

	tf := Scaling(2, 2)
	assert.NoError(t, ch.Insert(0, tf))
	_, err := ch.Remove(0)
	assert.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, events.Added, got[0].Type)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, tf, got[0].Item)
	assert.Equal(t, events.Removed, got[1].Type)
	assert.Equal(t, 0, got[1].Index)
	assert.Equal(t, tf, got[1].Item)
}

func TestChainFailedMutationNoEvent(t *testing.T) {
	ch := NewChain(2)
	calls := 0
	ch.Listeners.Add(events.Added, func(e events.Event) { calls++ })
	ch.Listeners.Add(events.Removed, func(e events.Event) { calls++ })

	assert.Error(t, ch.Insert(3, Identity(2)))
	_, err := ch.Remove(0)
	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}
