// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types is the type of a change notification, which also determines
// which listeners receive it.
type Types int64 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Added is sent after an item has been inserted into an ordered
	// container. Index and Item describe the insertion.
	Added

	// Removed is sent after an item has been removed from an ordered
	// container. Index and Item describe the removal.
	Removed

	// Reordered is sent after the items of an ordered container have
	// been rearranged without adding or removing any.
	Reordered

	// FieldChanged is sent after a field of an entity has been set to
	// a different value. Field names the field; Old and New carry the
	// values.
	FieldChanged
)
