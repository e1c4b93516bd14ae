// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera implements the camera of the ndvis viewer: center,
// zoom, perspective and 3D orientation of the view onto the currently
// displayed dimensions of an n-dimensional dataset.
//
// Orientation is held as Euler angles in degrees, composed in the
// extrinsic y-z-x sequence of [math32.Matrix3.SetFromEulerYZX]. Euler
// angles are an intrinsically degenerate representation: different
// angle triples can produce the same view, so orientation comparisons
// should go through the derived direction vectors, not raw angles.
//
// Direction vectors are in 3D scene coordinates: the world coordinate
// system of the three currently displayed dimensions, in data-native
// slowest-first axis order (depth, row, column). The rendering side
// uses the reversed fastest-first order with a flipped depth axis for
// its right-handed frame; the conversion between the two is internal
// to this package and the render adapter.
package camera

import (
	"errors"
	"fmt"

	"github.com/ndvis/ndvis/events"
	"github.com/ndvis/ndvis/math32"
)

// Errors returned by camera operations.
var (
	// ErrParallelVectors is returned by [Camera.SetViewDirection] when
	// the view and up directions are parallel, leaving the camera roll
	// undetermined.
	ErrParallelVectors = errors.New("view direction and up direction are parallel")

	// ErrZeroVector is returned by [Camera.SetViewDirection] for a
	// zero-length view or up direction.
	ErrZeroVector = errors.New("direction vector has zero length")
)

// Field names used in FieldChanged events sent by the camera setters.
const (
	CenterField      = "center"
	ZoomField        = "zoom"
	AnglesField      = "angles"
	PerspectiveField = "perspective"
	MousePanField    = "mouse-pan"
	MouseZoomField   = "mouse-zoom"
	OrientationField = "orientation"
)

// Camera models the position and view of the viewer's camera. There is
// one camera per view, created at viewer construction and living as
// long as the viewer. Fields are exported for reading; mutations should
// go through the Set methods, which send FieldChanged events to
// registered listeners synchronously, before returning, and only when
// the value actually changed.
//
// A Camera is not safe for concurrent use; like the rest of the viewer
// state it lives in a single-threaded event loop, and any sharing
// across goroutines must be externally serialized.
type Camera struct {

	// Center is the center of rotation for the camera, in scene
	// coordinates. In 2D viewing only the last two components are used.
	Center math32.Vector3

	// Zoom is the scale factor from canvas pixels to world pixels.
	// It must be positive.
	Zoom float32

	// Angles holds the Euler angles of the camera in 3D viewing, in
	// degrees, in the extrinsic y-z-x sequence (X is the first
	// rotation, about the render y axis). Only used in 3D viewing.
	Angles math32.Vector3

	// Perspective is the field-of-view proxy of the camera in 3D
	// viewing; 0 is a fully orthographic projection.
	Perspective float32

	// MousePan is whether interactive panning with the mouse is enabled.
	MousePan bool

	// MouseZoom is whether interactive zooming with the mouse is enabled.
	MouseZoom bool

	// Orientation is the polarity of the three displayed axes. It
	// determines the handedness of the displayed frame.
	Orientation Orientation

	// Listeners is notified synchronously with FieldChanged events
	// after every committed field mutation.
	Listeners events.Listeners
}

// NewCamera returns a new [Camera] with default settings.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets the default camera parameters: unit zoom, orthographic
// projection, mouse interaction enabled, the default axis orientation,
// and angles (0, 0, 90), which view straight down the depth axis with
// the data plane upright on the canvas. No events are sent.
func (cm *Camera) Defaults() {
	cm.Center = math32.Vector3{}
	cm.Zoom = 1
	cm.Angles = math32.Vec3(0, 0, 90)
	cm.Perspective = 0
	cm.MousePan = true
	cm.MouseZoom = true
	cm.Orientation = DefaultOrientation
}

// SetCenter sets the center of rotation and notifies listeners.
func (cm *Camera) SetCenter(center math32.Vector3) {
	if cm.Center == center {
		return
	}
	old := cm.Center
	cm.Center = center
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: CenterField, Old: old, New: center})
}

// SetZoom sets the canvas-to-world zoom factor and notifies listeners.
// The factor must be positive; the camera stores whatever it is given,
// so callers validate before setting.
func (cm *Camera) SetZoom(zoom float32) {
	if cm.Zoom == zoom {
		return
	}
	old := cm.Zoom
	cm.Zoom = zoom
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: ZoomField, Old: old, New: zoom})
}

// SetAngles sets the Euler angles in degrees and notifies listeners.
func (cm *Camera) SetAngles(angles math32.Vector3) {
	if cm.Angles == angles {
		return
	}
	old := cm.Angles
	cm.Angles = angles
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: AnglesField, Old: old, New: angles})
}

// SetPerspective sets the field-of-view proxy and notifies listeners.
// The value must not be negative; the camera stores whatever it is
// given, so callers validate before setting.
func (cm *Camera) SetPerspective(perspective float32) {
	if cm.Perspective == perspective {
		return
	}
	old := cm.Perspective
	cm.Perspective = perspective
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: PerspectiveField, Old: old, New: perspective})
}

// SetMousePan sets whether interactive panning is enabled and notifies
// listeners.
func (cm *Camera) SetMousePan(on bool) {
	if cm.MousePan == on {
		return
	}
	cm.MousePan = on
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: MousePanField, Old: !on, New: on})
}

// SetMouseZoom sets whether interactive zooming is enabled and notifies
// listeners.
func (cm *Camera) SetMouseZoom(on bool) {
	if cm.MouseZoom == on {
		return
	}
	cm.MouseZoom = on
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: MouseZoomField, Old: !on, New: on})
}

// SetOrientation sets the polarity of the three displayed axes and
// notifies listeners.
func (cm *Camera) SetOrientation(o Orientation) {
	if cm.Orientation == o {
		return
	}
	old := cm.Orientation
	cm.Orientation = o
	cm.Listeners.Call(events.Event{Type: events.FieldChanged, Field: OrientationField, Old: old, New: o})
}

// Orientation2D returns the vertical and horizontal components of the
// orientation: the two that matter in 2D viewing.
func (cm *Camera) Orientation2D() (VerticalAxis, HorizontalAxis) {
	return cm.Orientation.Vertical, cm.Orientation.Horizontal
}

// SetOrientation2D sets the vertical and horizontal components of the
// orientation, preserving the depth component, and notifies listeners.
func (cm *Camera) SetOrientation2D(vertical VerticalAxis, horizontal HorizontalAxis) {
	cm.SetOrientation(Orientation{cm.Orientation.Depth, vertical, horizontal})
}

// Handedness returns the handedness of the current orientation,
// derived on every call (see [Orientation.Handedness]).
func (cm *Camera) Handedness() Handedness {
	return cm.Orientation.Handedness()
}

// ViewDirection returns the 3D view direction vector of the camera, in
// scene coordinates. It is a pure function of Angles. The first
// component carries a sign flip for the right-handed reference frame of
// the rendering side.
func (cm *Camera) ViewDirection() math32.Vector3 {
	ay := math32.DegToRad(cm.Angles.Y)
	az := math32.DegToRad(cm.Angles.Z)
	return math32.Vec3(
		-math32.Sin(az)*math32.Cos(ay),
		math32.Cos(az)*math32.Cos(ay),
		-math32.Sin(ay),
	)
}

// UpDirection returns the 3D direction vector pointing up on the
// canvas, in scene coordinates. It is a pure function of Angles: the
// third column of the Euler rotation matrix, converted from render to
// scene ordering.
func (cm *Camera) UpDirection() math32.Vector3 {
	m := math32.NewEulerYZX(cm.Angles.MulScalar(math32.DegToRadFactor))
	return renderToScene(m.Column(2))
}

// SetViewDirection sets the camera angles from direction vectors, the
// inverse of [Camera.ViewDirection] and [Camera.UpDirection]. Both
// vectors are in scene coordinates. The up direction is optional: it
// defaults to (0, -1, 0), or to (-1, 0, 0) when the view direction is
// parallel to the scene vertical axis, avoiding a degenerate frame. A
// provided up direction does not need to be orthogonal to the view
// direction; the final up direction is the orthogonalized projection
// aligned with it. It returns a wrapped [ErrZeroVector] for zero-length
// inputs, and a wrapped [ErrParallelVectors] when the view and up
// directions are parallel; in both cases the camera is unchanged.
func (cm *Camera) SetViewDirection(view math32.Vector3, up ...math32.Vector3) error {
	upDir := math32.Vec3(0, -1, 0)
	if len(up) > 0 {
		upDir = up[0]
	} else if view.X == 0 && view.Z == 0 {
		// view along the vertical axis: the default up would be
		// parallel to it
		upDir = math32.Vec3(-1, 0, 0)
	}

	viewVec := sceneToRender(view)
	if viewVec.IsNil() {
		return fmt.Errorf("%w: view %v", ErrZeroVector, view)
	}
	viewVec.SetNormal()

	upVec := sceneToRender(upDir)
	if upVec.IsNil() {
		return fmt.Errorf("%w: up %v", ErrZeroVector, upDir)
	}
	upVec.SetNormal()

	// the cross of view and (raw) up is the right axis of the frame;
	// if it vanishes the two are parallel and the roll is undetermined
	rightVec := viewVec.Cross(upVec)
	if rightVec.Length() < 1.0e-7 {
		return fmt.Errorf("%w: view %v up %v", ErrParallelVectors, view, upDir)
	}
	rightVec.SetNormal()

	// re-orthogonalized up, aligned with the requested one
	orthoUp := rightVec.Cross(viewVec).Normal()

	var m math32.Matrix3
	m.SetColumns(rightVec, viewVec, orthoUp)
	angles := m.EulerYZX()
	cm.SetAngles(angles.MulScalar(math32.RadToDegFactor))
	return nil
}

// NDViewDirection embeds the camera's 3D view direction into an
// ndim-dimensional zero vector at the axis positions given by
// dimsDisplayed, which must have exactly 3 entries, each in [0, ndim).
// Otherwise there is no well-defined nD view direction and nil is
// returned; that is a valid empty result, not an error.
func (cm *Camera) NDViewDirection(ndim int, dimsDisplayed []int) []float32 {
	return embedDirection(cm.ViewDirection(), ndim, dimsDisplayed)
}

// NDUpDirection embeds the camera's 3D up direction into an
// ndim-dimensional zero vector at the axis positions given by
// dimsDisplayed, under the same conditions as [Camera.NDViewDirection].
func (cm *Camera) NDUpDirection(ndim int, dimsDisplayed []int) []float32 {
	return embedDirection(cm.UpDirection(), ndim, dimsDisplayed)
}

func embedDirection(dir math32.Vector3, ndim int, dimsDisplayed []int) []float32 {
	if len(dimsDisplayed) != 3 {
		return nil
	}
	for _, d := range dimsDisplayed {
		if d < 0 || d >= ndim {
			return nil
		}
	}
	nd := make([]float32, ndim)
	nd[dimsDisplayed[0]] = dir.X
	nd[dimsDisplayed[1]] = dir.Y
	nd[dimsDisplayed[2]] = dir.Z
	return nd
}

// sceneToRender converts a direction vector from scene ordering
// (slowest-first: depth, row, column) to render ordering
// (fastest-first), negating the depth component for the right-handed
// render frame.
func sceneToRender(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(v.Z, v.Y, -v.X)
}

// renderToScene is the inverse of sceneToRender.
func renderToScene(v math32.Vector3) math32.Vector3 {
	return math32.Vec3(-v.Z, v.Y, v.X)
}
