// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the per-layer coordinate transforms of the
// ndvis viewer: elementary per-axis scale + translate affine transforms
// (no shear or rotation) and ordered chains of them, which map layer data
// coordinates into world / display coordinates.
//
// Axis order throughout is the data-native order, slowest-varying first
// (e.g., time, depth, row, column). A rendering adapter consuming these
// transforms must reverse the axis order to its own fastest-first
// convention at that boundary (see the render package).
package transform

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by transform operations.
var (
	// ErrIndexOutOfRange is returned for a chain or axis index outside
	// the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupported is returned for operations that are not supported
	// on a chain. It indicates a programming error, not a runtime
	// condition to recover from.
	ErrUnsupported = errors.New("unsupported operation")
)

// Transform is an elementary n-dimensional affine transform: a per-axis
// scale followed by a per-axis translation. It is a value type: the
// constructors copy their inputs, and methods return new transforms.
//
// A transform shorter than the space it is applied in is broadcast into
// the leading (slowest-varying) dimensions as the identity, so that, for
// example, a translation of [4, 18, 34] in 3D can be used as
// [0, 4, 18, 34] in 4D without modification.
type Transform struct {

	// Scale is the per-axis scale factor, in data-native axis order.
	Scale []float32

	// Translate is the per-axis offset, applied after scaling, in
	// data-native axis order. Always the same length as Scale.
	Translate []float32
}

// New returns a new [Transform] with the given scale and translation.
// The inputs are copied, and the shorter of the two is broadcast with
// leading identity entries (scale 1, translate 0) to the length of the
// longer, establishing the len(Scale) == len(Translate) invariant.
func New(scale, translate []float32) Transform {
	dim := max(len(scale), len(translate))
	return Transform{
		Scale:     broadcastScale(scale, dim),
		Translate: broadcastTranslate(translate, dim),
	}
}

// Identity returns the identity [Transform] of the given dimensionality:
// all scales 1, all translations 0.
func Identity(dim int) Transform {
	tf := Transform{
		Scale:     make([]float32, dim),
		Translate: make([]float32, dim),
	}
	for i := range tf.Scale {
		tf.Scale[i] = 1
	}
	return tf
}

// Scaling returns a pure scaling [Transform] with the given per-axis
// scale factors.
func Scaling(scale ...float32) Transform {
	return New(slices.Clone(scale), nil)
}

// Translation returns a pure translation [Transform] with the given
// per-axis offsets.
func Translation(translate ...float32) Transform {
	return New(nil, slices.Clone(translate))
}

// Dim returns the dimensionality of this transform.
func (tf Transform) Dim() int {
	return len(tf.Scale)
}

// Clone returns a copy of this transform with freshly allocated
// scale and translate slices.
func (tf Transform) Clone() Transform {
	return Transform{
		Scale:     slices.Clone(tf.Scale),
		Translate: slices.Clone(tf.Translate),
	}
}

// Broadcast returns this transform broadcast to the given
// dimensionality, with identity entries (scale 1, translate 0) in the
// added leading dimensions. A transform already at or above the given
// dimensionality is returned unchanged.
func (tf Transform) Broadcast(dim int) Transform {
	if tf.Dim() >= dim {
		return tf
	}
	return Transform{
		Scale:     broadcastScale(tf.Scale, dim),
		Translate: broadcastTranslate(tf.Translate, dim),
	}
}

// Compose returns the transform equivalent to applying this transform
// first and then the other: per axis, scale = s*o.s and
// translate = t*o.s + o.t (the translation lands in the other
// transform's coordinate frame, so it is scaled before the other's
// offset is added). The result has the dimensionality of the larger of
// the two, with the smaller broadcast into leading identity dimensions.
func (tf Transform) Compose(other Transform) Transform {
	dim := max(tf.Dim(), other.Dim())
	a := tf.Broadcast(dim)
	b := other.Broadcast(dim)
	nt := Transform{
		Scale:     make([]float32, dim),
		Translate: make([]float32, dim),
	}
	for i := range nt.Scale {
		nt.Scale[i] = a.Scale[i] * b.Scale[i]
		nt.Translate[i] = a.Translate[i]*b.Scale[i] + b.Translate[i]
	}
	return nt
}

// Inverse returns the transform that undoes this one: per axis,
// scale = 1/s and translate = -t/s. A zero scale axis yields IEEE
// infinities; it is the caller's responsibility to keep scales nonzero
// if the inverse is needed.
func (tf Transform) Inverse() Transform {
	nt := Transform{
		Scale:     make([]float32, tf.Dim()),
		Translate: make([]float32, tf.Dim()),
	}
	for i, s := range tf.Scale {
		nt.Scale[i] = 1 / s
		nt.Translate[i] = -tf.Translate[i] / s
	}
	return nt
}

// Slice returns this transform subset to the given axes, in the given
// order, e.g., the currently displayed dimensions of a layer. It returns
// a wrapped [ErrIndexOutOfRange] if any axis is outside [0, Dim).
func (tf Transform) Slice(axes []int) (Transform, error) {
	nt := Transform{
		Scale:     make([]float32, len(axes)),
		Translate: make([]float32, len(axes)),
	}
	for i, ax := range axes {
		if ax < 0 || ax >= tf.Dim() {
			return Transform{}, fmt.Errorf("%w: axis %d not in [0, %d)", ErrIndexOutOfRange, ax, tf.Dim())
		}
		nt.Scale[i] = tf.Scale[ax]
		nt.Translate[i] = tf.Translate[ax]
	}
	return nt, nil
}

// Apply applies this transform to one coordinate vector, returning a new
// vector of the same length: per axis, out = c*s + t. The transform is
// broadcast (or subset, for shorter coordinates, using its trailing
// fastest-varying axes) to the coordinate length.
func (tf Transform) Apply(coords []float32) []float32 {
	a := tf.Broadcast(len(coords))
	off := a.Dim() - len(coords)
	out := make([]float32, len(coords))
	for i, c := range coords {
		out[i] = c*a.Scale[off+i] + a.Translate[off+i]
	}
	return out
}

// IsIdentity returns whether this transform is exactly the identity
// on every axis.
func (tf Transform) IsIdentity() bool {
	for i := range tf.Scale {
		if tf.Scale[i] != 1 || tf.Translate[i] != 0 {
			return false
		}
	}
	return true
}

// String returns a compact string representation for debugging.
func (tf Transform) String() string {
	return fmt.Sprintf("scale%v translate%v", tf.Scale, tf.Translate)
}

func broadcastScale(scale []float32, dim int) []float32 {
	ns := make([]float32, dim)
	off := dim - len(scale)
	for i := range off {
		ns[i] = 1
	}
	copy(ns[off:], scale)
	return ns
}

func broadcastTranslate(translate []float32, dim int) []float32 {
	nt := make([]float32, dim)
	copy(nt[dim-len(translate):], translate)
	return nt
}
