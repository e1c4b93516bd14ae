// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndvis/ndvis/events"
)

func TestHandednessParity(t *testing.T) {
	assert.Equal(t, RightHanded, DefaultOrientation.Handedness())

	// flipping exactly one axis flips the handedness
	oneFlips := []Orientation{
		{DepthAway, VerticalDown, HorizontalRight},
		{DepthTowards, VerticalUp, HorizontalRight},
		{DepthTowards, VerticalDown, HorizontalLeft},
	}
	for _, o := range oneFlips {
		assert.Equal(t, LeftHanded, o.Handedness(), o)
	}

	// flipping two axes restores right-handedness
	twoFlips := []Orientation{
		{DepthAway, VerticalUp, HorizontalRight},
		{DepthAway, VerticalDown, HorizontalLeft},
		{DepthTowards, VerticalUp, HorizontalLeft},
	}
	for _, o := range twoFlips {
		assert.Equal(t, RightHanded, o.Handedness(), o)
	}

	// all three flipped is left-handed again
	all := Orientation{DepthAway, VerticalUp, HorizontalLeft}
	assert.Equal(t, LeftHanded, all.Handedness())
}

func TestOrientation2DRoundTrip(t *testing.T) {
	cm := NewCamera()
	cm.SetOrientation(Orientation{DepthAway, VerticalDown, HorizontalRight})

	cm.SetOrientation2D(VerticalUp, HorizontalLeft)
	v, h := cm.Orientation2D()
	assert.Equal(t, VerticalUp, v)
	assert.Equal(t, HorizontalLeft, h)
	// depth component is preserved
	assert.Equal(t, DepthAway, cm.Orientation.Depth)
}

func TestOrientationEvents(t *testing.T) {
	cm := NewCamera()
	var got []events.Event
	cm.Listeners.Add(events.FieldChanged, func(e events.Event) {
		got = append(got, e)
	})

	cm.SetOrientation2D(VerticalUp, HorizontalRight)
	assert.Len(t, got, 1)
	assert.Equal(t, OrientationField, got[0].Field)
	assert.Equal(t, DefaultOrientation, got[0].Old)
	assert.Equal(t, Orientation{DepthTowards, VerticalUp, HorizontalRight}, got[0].New)

	// setting the same orientation again is not a change
	cm.SetOrientation2D(VerticalUp, HorizontalRight)
	assert.Len(t, got, 1)
}

func TestOrientationStrings(t *testing.T) {
	assert.Equal(t, "towards", DepthTowards.String())
	assert.Equal(t, "away", DepthAway.String())
	assert.Equal(t, "down", VerticalDown.String())
	assert.Equal(t, "left", HorizontalLeft.String())
	assert.Equal(t, "right-handed", RightHanded.String())
	assert.Equal(t, "left-handed", LeftHanded.String())

	var v VerticalAxis
	assert.NoError(t, v.SetString("up"))
	assert.Equal(t, VerticalUp, v)
	assert.Error(t, v.SetString("sideways"))
}
