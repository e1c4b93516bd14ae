// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"

	"github.com/ndvis/ndvis/camera"
	"github.com/ndvis/ndvis/math32"
	"github.com/ndvis/ndvis/transform"
)

const standardTol = float32(1.0e-6)

func TestSTFromTransform(t *testing.T) {
	// data order (t, z, y, x) becomes display order (x, y, z, t)
	tf := transform.New([]float32{1, 2, 3, 4}, []float32{10, 20, 30, 40})
	st := STFromTransform(tf)
	assert.Equal(t, []float32{4, 3, 2, 1}, st.Scale)
	assert.Equal(t, []float32{40, 30, 20, 10}, st.Translate)

	assert.Equal(t, []float32{44, 33, 22, 11}, st.Apply([]float32{1, 1, 1, 1}))

	v := st.MulVector3(math32.Vec3(1, 1, 1))
	assert.Equal(t, math32.Vec3(44, 33, 22), v)
}

func TestChainViewMirror(t *testing.T) {
	ch := transform.NewChain(2)
	cv := NewChainView(ch)
	assert.Empty(t, cv.Transforms)
	assert.Equal(t, []float32{1, 1}, cv.Combined.Scale)
	assert.Equal(t, []float32{0, 0}, cv.Combined.Translate)

	a := transform.New([]float32{2, 3}, []float32{1, -1})
	b := transform.New([]float32{4, 5}, []float32{10, 20})
	ch.Append(a)
	ch.Append(b)

	assert.Len(t, cv.Transforms, 2)
	assert.Equal(t, STFromTransform(a), cv.Transforms[0])
	assert.Equal(t, STFromTransform(b), cv.Transforms[1])

	// mirror's combined is the chain's combined with axes reversed
	want := STFromTransform(ch.Combined())
	tolassert.EqualTolSlice(t, want.Scale, cv.Combined.Scale, standardTol)
	tolassert.EqualTolSlice(t, want.Translate, cv.Combined.Translate, standardTol)

	_, err := ch.Remove(0)
	assert.NoError(t, err)
	assert.Len(t, cv.Transforms, 1)
	want = STFromTransform(ch.Combined())
	tolassert.EqualTolSlice(t, want.Scale, cv.Combined.Scale, standardTol)
	tolassert.EqualTolSlice(t, want.Translate, cv.Combined.Translate, standardTol)
}

func TestChainViewHigherDimElement(t *testing.T) {
	// an element with more axes than the chain's dim grows the chain's
	// combined transform; the mirror must grow with it
	ch := transform.NewChain(2)
	cv := NewChainView(ch)
	ch.Append(transform.New([]float32{2, 3, 4}, []float32{1, -1, 5}))

	want := STFromTransform(ch.Combined())
	assert.Equal(t, []float32{4, 3, 2}, want.Scale)
	assert.Equal(t, []float32{5, -1, 1}, want.Translate)
	tolassert.EqualTolSlice(t, want.Scale, cv.Combined.Scale, standardTol)
	tolassert.EqualTolSlice(t, want.Translate, cv.Combined.Translate, standardTol)

	// removing it shrinks the combined back to the chain's dim
	_, err := ch.Remove(0)
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, cv.Combined.Scale)
	assert.Equal(t, []float32{0, 0}, cv.Combined.Translate)
}

func TestChainViewInsertMiddle(t *testing.T) {
	ch := transform.NewChain(2, transform.Scaling(2, 2), transform.Translation(5, -5))
	cv := NewChainView(ch)
	assert.Len(t, cv.Transforms, 2)

	mid := transform.New([]float32{3, 1}, []float32{0, 9})
	assert.NoError(t, ch.Insert(1, mid))
	assert.Len(t, cv.Transforms, 3)
	assert.Equal(t, STFromTransform(mid), cv.Transforms[1])

	want := STFromTransform(ch.Combined())
	tolassert.EqualTolSlice(t, want.Scale, cv.Combined.Scale, standardTol)
	tolassert.EqualTolSlice(t, want.Translate, cv.Combined.Translate, standardTol)
}

func TestChainViewRelease(t *testing.T) {
	ch := transform.NewChain(2)
	cv := NewChainView(ch)
	cv.Release()

	ch.Append(transform.Scaling(2, 2))
	assert.Empty(t, cv.Transforms)
	assert.Equal(t, []float32{1, 1}, cv.Combined.Scale)
}

func TestNewCameraState(t *testing.T) {
	cm := camera.NewCamera()
	cm.SetZoom(3)
	cm.SetCenter(math32.Vec3(1, 2, 3))
	cm.SetPerspective(45)

	cs := NewCameraState(cm)
	assert.Equal(t, float32(3), cs.Zoom)
	assert.Equal(t, float32(45), cs.Perspective)
	assert.Equal(t, math32.Vec3(1, 2, 3), cs.Center)
	assert.Equal(t, cm.Angles, cs.Angles)
	assert.Equal(t, cm.ViewDirection(), cs.ViewDirection)
	assert.Equal(t, cm.UpDirection(), cs.UpDirection)

	// default view (-1,0,0) in scene order is (0,0,1) in render order
	tolassertVec(t, math32.Vec3(0, 0, 1), cs.RenderViewDirection)
	tolassertVec(t, math32.Vec3(0, -1, 0), cs.RenderUpDirection)
}

func tolassertVec(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, standardTol)
	tolassert.EqualTol(t, want.Y, have.Y, standardTol)
	tolassert.EqualTol(t, want.Z, have.Z, standardTol)
}
