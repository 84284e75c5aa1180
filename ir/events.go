package ir

import "slices"

// NameChange carries the name of a node before and after a change. Set is
// false when the name was (or became) unset.
type NameChange struct {
	Old, New Name
}

// Name is an optional node name.
type Name struct {
	String string
	Set    bool
}

// NameOf returns a set Name holding s.
func NameOf(s string) Name {
	return Name{String: s, Set: true}
}

// GroupChangeFunc is called after the name (group) of n changed.
type GroupChangeFunc func(n *Node, c NameChange)

// ChildFunc is called after child was added at, or removed from, index i.
type ChildFunc func(i int, child *Node)

// listeners is an ordered set of callbacks, each removable through the
// function returned when it was registered.
type listeners[F any] struct {
	next int
	fs   []listener[F]
}

type listener[F any] struct {
	id int
	f  F
}

func (ls *listeners[F]) add(f F) func() {
	id := ls.next
	ls.next++
	ls.fs = append(ls.fs, listener[F]{id: id, f: f})
	return func() {
		ls.fs = slices.DeleteFunc(ls.fs, func(l listener[F]) bool { return l.id == id })
	}
}

// reset drops every listener. Ids keep increasing so stale unsubscribe
// functions match nothing.
func (ls *listeners[F]) reset() {
	ls.fs = nil
}

func (ls *listeners[F]) each(call func(F)) {
	for _, l := range ls.fs {
		call(l.f)
	}
}
