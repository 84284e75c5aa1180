// Package ir provides the node tree underlying the calendar object model.
//
// # Overview
//
// A calendar document (VCALENDAR, its components such as VEVENT or
// VTIMEZONE, and their properties) is represented as a tree of ir.Node
// values. Parsers build the tree top down; writers, validators and
// evaluators walk it with Parent and Children and attach derived state to
// nodes through their capability registry.
//
// # Node Structure
//
// A Node has
//
//   - an optional name, which is also its group (Group and SetGroup are the
//     same state as Name and SetName)
//   - a parent reference, nil for a root or an unattached node
//   - an ordered child collection, owned by the node
//   - a source position, informational only
//   - a capability registry (see package caps)
//
// # Parent and Children
//
// Each node owns its children through its Children collection. The parent
// reference is a plain back pointer; the tree is reclaimed as a whole once
// nothing outside refers to it.
//
// For every node P and every C in P.Children(), C.Parent() == P. The
// collection keeps this true after every Add, Insert, Remove and Clear.
// Adding a node that is already attached, to any collection, first removes
// it from where it is:
//
//	cal := ir.New("VCALENDAR")
//	ev := ir.New("VEVENT")
//	cal.Children().Add(ev)       // ev.Parent() == cal
//	other.Children().Add(ev)     // moved: cal no longer holds ev
//	other.Children().Remove(ev)  // ev.Parent() == nil
//
// Removing a node the collection does not hold returns an error wrapping
// ErrNotFound.
//
// SetParent writes the parent reference directly and is meant only for
// fixing up references after a copy. Callers using it are responsible for
// keeping the invariant above.
//
// # Names, Equality and Hashing
//
// Two nodes are Equal when their names are equal. Children, position and
// capabilities play no part. Hash derives from the name, or from the node
// identity when the name is unset. Keying a map by nodes under this
// equality collapses distinct nodes of the same name.
//
// Changing the name notifies listeners registered with OnGroupChanged,
// synchronously and in registration order. Setting the current name again
// notifies nobody.
//
// # Roots
//
// Which nodes are document roots is decided outside this package: a root
// carries a capability implementing RootMarker (MarkRoot installs one).
// Root walks from a node up through its ancestors and returns the nearest
// marked node; FindRoot does the same with an arbitrary predicate.
//
// # Copying
//
// CopyFrom copies name, parent reference and position, then replaces the
// children with clones of the source's children. The parent is shared, not
// cloned, and the clone is normally spliced into a tree afterwards.
//
// # Persistence
//
// Code restoring a node from a snapshot calls Reconstruct before filling in
// fields and Restored afterwards. See package snap.
//
// # Thread Safety
//
// Node structures are not thread-safe. Listeners run on the goroutine that
// made the change and must not change the name or the child collection
// that notified them. Moving a node between collections is two steps; code
// sharing a tree between goroutines must serialize access itself.
package ir
