// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

//go:generate core generate

// DepthAxis is the polarity of the displayed depth axis: whether it
// points towards or away from the viewer.
type DepthAxis int32 //enums:enum -trim-prefix Depth

const (
	// DepthTowards points the depth axis out of the canvas, towards
	// the viewer.
	DepthTowards DepthAxis = iota

	// DepthAway points the depth axis into the canvas, away from
	// the viewer.
	DepthAway
)

// VerticalAxis is the polarity of the displayed vertical axis on the
// canvas.
type VerticalAxis int32 //enums:enum -trim-prefix Vertical

const (
	// VerticalDown points the vertical axis down the canvas, matching
	// the usual screen convention of row indices growing downwards.
	VerticalDown VerticalAxis = iota

	// VerticalUp points the vertical axis up the canvas.
	VerticalUp
)

// HorizontalAxis is the polarity of the displayed horizontal axis on
// the canvas.
type HorizontalAxis int32 //enums:enum -trim-prefix Horizontal

const (
	// HorizontalRight points the horizontal axis to the right.
	HorizontalRight HorizontalAxis = iota

	// HorizontalLeft points the horizontal axis to the left.
	HorizontalLeft
)

// Handedness is whether an axis triple obeys the right-hand or the
// left-hand rule.
type Handedness int32 //enums:enum

const (
	RightHanded Handedness = iota
	LeftHanded
)

// Orientation is the polarity of the three displayed axes, in
// (depth, vertical, horizontal) order. Together the three choices
// determine the handedness of the displayed frame.
type Orientation struct {
	Depth      DepthAxis
	Vertical   VerticalAxis
	Horizontal HorizontalAxis
}

// DefaultOrientation is the standard orientation: depth towards the
// viewer, vertical down, horizontal right. It is right-handed by
// definition; the handedness of every other orientation is derived
// from its parity of deviations from this one.
var DefaultOrientation = Orientation{DepthTowards, VerticalDown, HorizontalRight}

// Handedness returns the handedness of this orientation: flipping any
// single axis from [DefaultOrientation] flips the handedness, so an odd
// number of deviations from the default means left-handed. It is
// computed from scratch on every call.
func (o Orientation) Handedness() Handedness {
	diffs := 0
	if o.Depth != DefaultOrientation.Depth {
		diffs++
	}
	if o.Vertical != DefaultOrientation.Vertical {
		diffs++
	}
	if o.Horizontal != DefaultOrientation.Horizontal {
		diffs++
	}
	if diffs%2 != 0 {
		return LeftHanded
	}
	return RightHanded
}
