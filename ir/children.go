package ir

import (
	"fmt"
	"iter"
	"slices"

	"github.com/signadot/ical-format/go-ical/debug"
)

// Children is the ordered collection of child nodes owned by a single node.
//
// Every mutation keeps the parent reference of the added or removed node in
// sync before it returns. A node already attached elsewhere is detached from
// its current collection before being added, so a node is never held by two
// collections.
//
// The collection must not be mutated while it is being iterated with All or
// Nodes, nor from inside an added or removed listener. Callers that need to
// mutate during a walk iterate over Snapshot instead.
type Children struct {
	owner   *Node
	nodes   []*Node
	added   listeners[ChildFunc]
	removed listeners[ChildFunc]
}

func newChildren(owner *Node) *Children {
	return &Children{owner: owner}
}

// Owner returns the node this collection belongs to.
func (c *Children) Owner() *Node {
	return c.owner
}

// Len returns the number of children.
func (c *Children) Len() int {
	return len(c.nodes)
}

// At returns the i'th child. It panics if i is out of range.
func (c *Children) At(i int) *Node {
	return c.nodes[i]
}

// Index returns the position of n in the collection by identity, or -1.
func (c *Children) Index(n *Node) int {
	for i, x := range c.nodes {
		if x == n {
			return i
		}
	}
	return -1
}

// Contains reports whether n, by identity, is a child.
func (c *Children) Contains(n *Node) bool {
	return c.Index(n) != -1
}

// All iterates the live collection in order.
func (c *Children) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i, n := range c.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Nodes iterates the live collection in order.
func (c *Children) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range c.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// ByName iterates the children whose name is name, in order.
func (c *Children) ByName(name string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, n := range c.nodes {
			if !n.name.Set || n.name.String != name {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the current children.
func (c *Children) Snapshot() []*Node {
	return slices.Clone(c.nodes)
}

// Add appends n. If n is attached to a collection, including this one, it
// is first removed from it.
func (c *Children) Add(n *Node) error {
	return c.insert(-1, n)
}

// Insert places n at index i, where i is interpreted after n has been
// detached from any collection it was in. Valid indices are 0 through Len.
func (c *Children) Insert(i int, n *Node) error {
	if i < 0 {
		return fmt.Errorf("%w: insert at %d", ErrIndex, i)
	}
	return c.insert(i, n)
}

func (c *Children) insert(i int, n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	for a := c.owner; a != nil; a = a.parent {
		if a == n {
			return fmt.Errorf("%w: adding %s under %s", ErrCycle, n, c.owner)
		}
	}
	if i != -1 {
		lim := len(c.nodes)
		if c.Contains(n) {
			lim--
		}
		if i > lim {
			return fmt.Errorf("%w: insert at %d of %d", ErrIndex, i, lim)
		}
	}
	if err := detach(n); err != nil {
		return err
	}
	if i == -1 {
		i = len(c.nodes)
	}
	c.nodes = slices.Insert(c.nodes, i, n)
	n.parent = c.owner
	n.holder = c
	if debug.Tree() {
		debug.Logf("ir: added %s at %d under %s\n", n, i, c.owner)
	}
	c.added.each(func(f ChildFunc) { f(i, n) })
	return nil
}

// detach removes n from the collection holding it, if any. The holder is
// tracked apart from the parent reference, which SetParent and CopyFrom may
// point elsewhere.
func detach(n *Node) error {
	if n.holder == nil {
		return nil
	}
	return n.holder.Remove(n)
}

// Remove removes n, compared by identity, and clears its parent.
func (c *Children) Remove(n *Node) error {
	i := c.Index(n)
	if i == -1 {
		return fmt.Errorf("%w: %s in %s", ErrNotFound, n, c.owner)
	}
	c.nodes = slices.Delete(c.nodes, i, i+1)
	n.parent = nil
	n.holder = nil
	if debug.Tree() {
		debug.Logf("ir: removed %s at %d from %s\n", n, i, c.owner)
	}
	c.removed.each(func(f ChildFunc) { f(i, n) })
	return nil
}

// Clear removes every child through Remove, front to back.
func (c *Children) Clear() {
	for len(c.nodes) > 0 {
		if err := c.Remove(c.nodes[0]); err != nil {
			panic(err)
		}
	}
}

// OnAdded registers f to be called after each addition. The returned
// function unregisters it.
func (c *Children) OnAdded(f ChildFunc) func() {
	return c.added.add(f)
}

// OnRemoved registers f to be called after each removal. The returned
// function unregisters it.
func (c *Children) OnRemoved(f ChildFunc) func() {
	return c.removed.add(f)
}
