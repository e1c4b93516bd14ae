// Copyright (c) 2025, The Ndvis Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides synchronous, push-based change notification
// for the mutable viewer entities (transform chains, the camera).
// Each entity owns a [Listeners] registry; after a committed mutation
// it calls all registered listener functions for the change type before
// returning to the caller, so an observer never sees partial state.
package events

// Event describes one committed change to an entity.
// Only the fields relevant to the [Types] value are set.
type Event struct {

	// Type is the type of change.
	Type Types

	// Index is the container position for Added and Removed events.
	Index int

	// Item is the inserted or removed element for Added and Removed events.
	Item any

	// Field is the name of the changed field for FieldChanged events.
	Field string

	// Old is the prior value for FieldChanged events.
	Old any

	// New is the current value for FieldChanged events.
	New any
}

// listener is one registered listener function with its subscription id.
type listener struct {
	id  int
	fun func(e Event)
}

// Listeners registers lists of listener functions to receive different
// change types. Listeners are closure methods with all context captured,
// registered on specific objects. The zero value is ready to use.
// Registration order is preserved: Call runs listeners in the order they
// were added, and every listener always runs (there is no handled /
// short-circuit mechanism, since observers here are independent mirrors
// of upstream state, not competing input handlers).
type Listeners struct {
	funcs  map[Types][]listener
	nextID int
}

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if ls.funcs != nil {
		return
	}
	ls.funcs = make(map[Types][]listener)
}

// Add adds a listener function for the given change type, and returns a
// subscription id that can be passed to [Listeners.Delete] to remove it.
func (ls *Listeners) Add(typ Types, fun func(e Event)) int {
	ls.Init()
	ls.nextID++
	id := ls.nextID
	ls.funcs[typ] = append(ls.funcs[typ], listener{id: id, fun: fun})
	return id
}

// Delete removes the listener with the given subscription id for the
// given change type, returning whether it was found.
func (ls *Listeners) Delete(typ Types, id int) bool {
	lfs := ls.funcs[typ]
	for i, lf := range lfs {
		if lf.id == id {
			ls.funcs[typ] = append(lfs[:i:i], lfs[i+1:]...)
			return true
		}
	}
	return false
}

// Call synchronously calls all listener functions registered for the
// event's type, in the order they were added.
func (ls *Listeners) Call(e Event) {
	lfs := ls.funcs[e.Type]
	for _, lf := range lfs {
		lf.fun(e)
	}
}

// Len returns the number of listeners registered for the given type.
func (ls *Listeners) Len(typ Types) int {
	return len(ls.funcs[typ])
}
