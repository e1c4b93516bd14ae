// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render adapts the viewer core state for a rendering backend.
// The transform chain and the camera hold their state in data-native
// axis order (slowest-varying first); the rendering side wants the
// reversed, fastest-first order (x, y, z, ...). That reversal is a
// boundary concern of this package: the chain and the camera never see
// display ordering.
package render

import (
	"log/slog"
	"slices"

	"github.com/ndvis/ndvis/camera"
	"github.com/ndvis/ndvis/events"
	"github.com/ndvis/ndvis/math32"
	"github.com/ndvis/ndvis/transform"
)

// STTransform is a scale+translate transform in display axis order
// (fastest-varying first), the form a rendering backend consumes to
// place visual content.
type STTransform struct {

	// Scale is the per-axis scale factor, fastest-varying axis first.
	Scale []float32

	// Translate is the per-axis offset, fastest-varying axis first.
	Translate []float32
}

// STFromTransform converts a data-ordered [transform.Transform] into a
// display-ordered [STTransform] by reversing the axis order.
func STFromTransform(tf transform.Transform) STTransform {
	st := STTransform{
		Scale:     slices.Clone(tf.Scale),
		Translate: slices.Clone(tf.Translate),
	}
	slices.Reverse(st.Scale)
	slices.Reverse(st.Translate)
	return st
}

// Apply applies this transform to one display-ordered coordinate
// vector, which must have the transform's dimensionality.
func (st STTransform) Apply(coords []float32) []float32 {
	out := make([]float32, len(coords))
	for i, c := range coords {
		out[i] = c*st.Scale[i] + st.Translate[i]
	}
	return out
}

// MulVector3 applies this transform to a 3D point in display
// coordinates, using the first three axes (x, y, z). The transform must
// have at least three dimensions.
func (st STTransform) MulVector3(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(
		v.X*st.Scale[0]+st.Translate[0],
		v.Y*st.Scale[1]+st.Translate[1],
		v.Z*st.Scale[2]+st.Translate[2],
	)
}

// compose returns the transform equivalent to applying this transform
// first and then the other, with both at the same dimensionality.
func (st STTransform) compose(other STTransform) STTransform {
	nt := STTransform{
		Scale:     make([]float32, len(st.Scale)),
		Translate: make([]float32, len(st.Translate)),
	}
	for i := range nt.Scale {
		nt.Scale[i] = st.Scale[i] * other.Scale[i]
		nt.Translate[i] = st.Translate[i]*other.Scale[i] + other.Translate[i]
	}
	return nt
}

// ChainView is a display-ordered mirror of a [transform.Chain]. It
// subscribes to the chain's change events and keeps an up-to-date copy
// of each element plus the folded combined transform, so the renderer
// reads current values without recomputing or reordering anything at
// draw time. Call [ChainView.Release] when done to unsubscribe.
type ChainView struct {

	// Transforms mirrors the chain's elements in order, display-ordered.
	Transforms []STTransform

	// Combined is the folded combination of Transforms, equivalent to
	// the chain's combined transform with the axis order reversed.
	Combined STTransform

	chain       *transform.Chain
	addedID     int
	removedID   int
	reorderedID int
}

// NewChainView returns a new [ChainView] mirroring the given chain,
// subscribed to its change events.
func NewChainView(ch *transform.Chain) *ChainView {
	cv := &ChainView{chain: ch}
	cv.rebuild()
	cv.addedID = ch.Listeners.Add(events.Added, cv.added)
	cv.removedID = ch.Listeners.Add(events.Removed, cv.removed)
	cv.reorderedID = ch.Listeners.Add(events.Reordered, cv.reordered)
	return cv
}

// Release unsubscribes this view from its chain. The mirrored values
// remain readable but no longer update.
func (cv *ChainView) Release() {
	cv.chain.Listeners.Delete(events.Added, cv.addedID)
	cv.chain.Listeners.Delete(events.Removed, cv.removedID)
	cv.chain.Listeners.Delete(events.Reordered, cv.reorderedID)
}

func (cv *ChainView) added(e events.Event) {
	tf, ok := e.Item.(transform.Transform)
	if !ok {
		slog.Error("render.ChainView: added event with unexpected item", "item", e.Item)
		return
	}
	st := STFromTransform(tf)
	cv.Transforms = slices.Insert(cv.Transforms, e.Index, st)
	cv.recompute()
}

func (cv *ChainView) removed(e events.Event) {
	cv.Transforms = slices.Delete(cv.Transforms, e.Index, e.Index+1)
	cv.recompute()
}

func (cv *ChainView) reordered(e events.Event) {
	// the chain does not currently emit these; resync fully if it
	// ever starts to
	slog.Warn("render.ChainView: reordered event; rebuilding mirror")
	cv.rebuild()
}

// rebuild resyncs the full mirror from the chain.
func (cv *ChainView) rebuild() {
	cv.Transforms = cv.Transforms[:0]
	for i := range cv.chain.Len() {
		tf, err := cv.chain.At(i)
		if err != nil {
			slog.Error("render.ChainView: chain changed during rebuild", "err", err)
			break
		}
		cv.Transforms = append(cv.Transforms, STFromTransform(tf))
	}
	cv.recompute()
}

// recompute folds the mirrored transforms into Combined. The fold runs
// at the largest dimensionality present, the chain's own or any
// element's: the chain broadcasts its combined transform up to an
// element with more axes, and the mirror must grow the same way.
func (cv *ChainView) recompute() {
	dim := cv.chain.Dim()
	for _, st := range cv.Transforms {
		dim = max(dim, len(st.Scale))
	}
	comb := STFromTransform(transform.Identity(dim))
	for _, st := range cv.Transforms {
		comb = comb.compose(broadcast(st, dim))
	}
	cv.Combined = comb
}

// broadcast pads a display-ordered transform with trailing identity
// axes up to dim (the added slowest-varying axes are at the end in
// display order).
func broadcast(st STTransform, dim int) STTransform {
	if len(st.Scale) >= dim {
		return st
	}
	ns := STTransform{
		Scale:     make([]float32, dim),
		Translate: make([]float32, dim),
	}
	copy(ns.Scale, st.Scale)
	for i := len(st.Scale); i < dim; i++ {
		ns.Scale[i] = 1
	}
	copy(ns.Translate, st.Translate)
	return ns
}

// CameraState is a plain numeric snapshot of the camera for building a
// view/projection matrix: angles, zoom, perspective, center, and the
// direction vectors, with the vectors given in both scene and render
// (display) ordering.
type CameraState struct {
	Angles      math32.Vector3
	Zoom        float32
	Perspective float32
	Center      math32.Vector3

	// ViewDirection and UpDirection are in scene ordering.
	ViewDirection math32.Vector3
	UpDirection   math32.Vector3

	// RenderViewDirection and RenderUpDirection are in display
	// ordering with the depth component negated for the right-handed
	// render frame.
	RenderViewDirection math32.Vector3
	RenderUpDirection   math32.Vector3
}

// NewCameraState returns a snapshot of the given camera's numeric state.
func NewCameraState(cm *camera.Camera) CameraState {
	vd := cm.ViewDirection()
	ud := cm.UpDirection()
	return CameraState{
		Angles:              cm.Angles,
		Zoom:                cm.Zoom,
		Perspective:         cm.Perspective,
		Center:              cm.Center,
		ViewDirection:       vd,
		UpDirection:         ud,
		RenderViewDirection: displayOrder(vd),
		RenderUpDirection:   displayOrder(ud),
	}
}

// displayOrder converts a scene-ordered direction vector to display
// ordering, negating the depth component.
func displayOrder(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(v.Z, v.Y, -v.X)
}
