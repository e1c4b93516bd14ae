// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"

	"github.com/ndvis/ndvis/events"
)

// DefaultDim is the dimensionality used for a [Chain] created without an
// explicit one, matching the viewer's internal axis budget (x, y, z, t on
// the display side).
const DefaultDim = 4

// Chain is an ordered sequence of elementary [Transform]s owned by one
// layer. Transforms compose left to right: the transform at index 0 is
// applied first (outermost in application order). The combined transform
// is recomputed synchronously on every mutation, so a read after any
// mutation always observes the updated value, and registered listeners
// are notified before the mutating call returns.
//
// A Chain is not safe for concurrent use: it is owned by a single layer
// in a single-threaded event loop. If shared across goroutines, all
// access must be externally serialized, since recompute-on-mutation is
// not atomic across the derived fields.
type Chain struct {

	// Listeners is notified synchronously after every committed
	// mutation, with Added and Removed events.
	Listeners events.Listeners

	// dim is the dimensionality of the combined transform for an
	// empty chain; elements are broadcast to at least this.
	dim int

	transforms []Transform
	combined   Transform
}

// NewChain returns a new [Chain] of the given dimensionality, containing
// the given transforms in order. A dim of 0 or less selects [DefaultDim].
func NewChain(dim int, tfs ...Transform) *Chain {
	if dim <= 0 {
		dim = DefaultDim
	}
	ch := &Chain{dim: dim}
	for _, tf := range tfs {
		ch.transforms = append(ch.transforms, tf.Clone())
	}
	ch.recompute()
	return ch
}

// Dim returns the minimum dimensionality of this chain's combined
// transform, fixed at construction. An element with more axes grows
// the combined transform beyond it; Dim does not change.
func (ch *Chain) Dim() int {
	return ch.dim
}

// Len returns the number of transforms in this chain.
func (ch *Chain) Len() int {
	return len(ch.transforms)
}

// At returns a copy of the transform at the given index, or a wrapped
// [ErrIndexOutOfRange] if the index is outside [0, Len).
func (ch *Chain) At(i int) (Transform, error) {
	if i < 0 || i >= len(ch.transforms) {
		return Transform{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(ch.transforms))
	}
	return ch.transforms[i].Clone(), nil
}

// Insert inserts the given transform at the given index, which must be
// in [0, Len] or a wrapped [ErrIndexOutOfRange] is returned. On success
// the combined transform is recomputed and an Added event is sent to
// listeners before Insert returns.
func (ch *Chain) Insert(i int, tf Transform) error {
	if i < 0 || i > len(ch.transforms) {
		return fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(ch.transforms))
	}
	tf = tf.Clone()
	ch.transforms = append(ch.transforms, Transform{})
	copy(ch.transforms[i+1:], ch.transforms[i:])
	ch.transforms[i] = tf
	ch.recompute()
	ch.Listeners.Call(events.Event{Type: events.Added, Index: i, Item: tf.Clone()})
	return nil
}

// Append adds the given transform at the end of the chain (innermost in
// application order).
func (ch *Chain) Append(tf Transform) {
	ch.Insert(len(ch.transforms), tf) //nolint:errcheck // Len is always valid
}

// Remove removes and returns the transform at the given index, which
// must be in [0, Len) or a wrapped [ErrIndexOutOfRange] is returned. On
// success the combined transform is recomputed and a Removed event is
// sent to listeners before Remove returns.
func (ch *Chain) Remove(i int) (Transform, error) {
	if i < 0 || i >= len(ch.transforms) {
		return Transform{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(ch.transforms))
	}
	tf := ch.transforms[i]
	ch.transforms = append(ch.transforms[:i], ch.transforms[i+1:]...)
	ch.recompute()
	ch.Listeners.Call(events.Event{Type: events.Removed, Index: i, Item: tf.Clone()})
	return tf, nil
}

// Reorder rearranges the chain to the given permutation of its current
// indices. It is not supported and always returns [ErrUnsupported]:
// layers rebuild their chains instead of permuting them, and no
// well-defined use has appeared for an in-place permutation.
func (ch *Chain) Reorder(order ...int) error {
	return fmt.Errorf("%w: Chain.Reorder", ErrUnsupported)
}

// Combined returns a copy of the single transform equivalent to applying
// all transforms of this chain in order. For an empty chain it is the
// identity at the chain's dimensionality. The value is cached and kept
// current by every mutation, never recomputed lazily on read.
func (ch *Chain) Combined() Transform {
	return ch.combined.Clone()
}

// recompute folds the chain into the cached combined transform. It runs
// at the end of every mutation, before listeners are notified.
func (ch *Chain) recompute() {
	comb := Identity(ch.dim)
	for _, tf := range ch.transforms {
		comb = comb.Compose(tf)
	}
	ch.combined = comb
}
