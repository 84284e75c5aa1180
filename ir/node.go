package ir

import (
	"github.com/signadot/ical-format/go-ical/caps"
)

// Node is a vertex of a calendar object tree.
//
// The zero value is an unattached, unnamed node ready to use.
type Node struct {
	name     Name
	parent   *Node
	holder   *Children
	children *Children
	pos      Pos
	caps     *caps.Registry

	groupChanged listeners[GroupChangeFunc]
}

// New returns an unattached node named name.
func New(name string) *Node {
	n := &Node{}
	n.Reconstruct()
	n.name = NameOf(name)
	return n
}

// NewAt returns an unnamed node at the given source position.
func NewAt(line, col int) *Node {
	n := &Node{}
	n.Reconstruct()
	n.pos = Pos{Line: line, Column: col}
	return n
}

// NewNamedAt returns a node named name at the given source position.
func NewNamedAt(name string, line, col int) *Node {
	n := NewAt(line, col)
	n.name = NameOf(name)
	return n
}

// Name returns the name of n, or "" if it is unset.
func (n *Node) Name() string {
	return n.name.String
}

// HasName reports whether the name of n is set.
func (n *Node) HasName() bool {
	return n.name.Set
}

// NameValue returns the optional name of n.
func (n *Node) NameValue() Name {
	return n.name
}

// SetName sets the name of n. If the name changes, the group change
// listeners are called before SetName returns.
func (n *Node) SetName(name string) {
	n.setName(NameOf(name))
}

// ClearName unsets the name of n, notifying listeners if it was set.
func (n *Node) ClearName() {
	n.setName(Name{})
}

func (n *Node) setName(v Name) {
	if n.name == v {
		return
	}
	c := NameChange{Old: n.name, New: v}
	n.name = v
	n.groupChanged.each(func(f GroupChangeFunc) { f(n, c) })
}

// Group is the name of n under another name; it shares the same state.
func (n *Node) Group() string {
	return n.Name()
}

// SetGroup is SetName under its group alias.
func (n *Node) SetGroup(g string) {
	n.SetName(g)
}

// OnGroupChanged registers f to be called synchronously, in registration
// order, each time the name of n changes. The returned function unregisters
// it.
//
// f must not change the name of n.
func (n *Node) OnGroupChanged(f GroupChangeFunc) func() {
	return n.groupChanged.add(f)
}

// Parent returns the node holding n in its children, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetParent overwrites the parent reference of n without touching any
// child collection. It exists to fix up references after a structural copy;
// the caller is responsible for leaving n in the children of p, so that
// every child's parent is the node holding it.
func (n *Node) SetParent(p *Node) {
	n.parent = p
}

// Children returns the child collection of n.
func (n *Node) Children() *Children {
	if n.children == nil {
		n.children = newChildren(n)
	}
	return n.children
}

// Pos returns the source position n was built from.
func (n *Node) Pos() Pos {
	return n.pos
}

func (n *Node) SetPos(p Pos) {
	n.pos = p
}

// Caps returns the capability registry of n.
func (n *Node) Caps() *caps.Registry {
	if n.caps == nil {
		n.caps = caps.New()
	}
	return n.caps
}

// CopyFrom makes n a structural copy of o: the name (through SetName, so
// listeners fire), the parent reference and the position are copied, the
// children of n are cleared and a clone of each child of o is added.
//
// The parent is shared with o, not cloned; callers splicing n into a tree
// normally add it to a collection afterwards, which replaces it.
// Capabilities are not copied. o is not modified, and must not be a
// descendant of n.
func (n *Node) CopyFrom(o *Node) {
	if n == o || o == nil {
		return
	}
	src := o.Children().Snapshot()
	n.setName(o.name)
	n.parent = o.parent
	n.pos = o.pos
	cs := n.Children()
	cs.Clear()
	for _, c := range src {
		if err := cs.Add(c.Clone()); err != nil {
			panic(err)
		}
	}
}

// Clone returns a deep copy of n produced by CopyFrom.
func (n *Node) Clone() *Node {
	res := &Node{}
	res.Reconstruct()
	res.CopyFrom(n)
	return res
}

// Reconstruct resets n to an empty child collection, an empty capability
// registry and no listeners. Persistence code calls it on a node before
// populating the node's fields from a snapshot. Unsubscribe functions
// returned before the reset become no-ops.
func (n *Node) Reconstruct() {
	n.children = newChildren(n)
	n.caps = caps.New()
	n.groupChanged.reset()
}

// Restored is called by persistence code after the fields of n have been
// populated.
func (n *Node) Restored() {}

// Visit walks the tree rooted at n depth first, calling f before (isPost
// false) and after (isPost true) the children of each node. The children
// are visited only if the pre call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for c := range n.Children().Nodes() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	s := "<unnamed>"
	if n.name.Set {
		s = n.name.String
	}
	if !n.pos.IsZero() {
		s += "@" + n.pos.String()
	}
	return s
}
