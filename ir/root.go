package ir

import "github.com/signadot/ical-format/go-ical/caps"

// RootMarker is implemented by capabilities identifying a document root.
// A node is a root if its capability registry holds a RootMarker reporting
// true.
type RootMarker interface {
	IsRoot() bool
}

type rootMark struct{}

func (rootMark) IsRoot() bool { return true }

// MarkRoot marks n as a document root.
func MarkRoot(n *Node) {
	n.Caps().Set(rootMark{})
}

// UnmarkRoot removes the marker set by MarkRoot.
func UnmarkRoot(n *Node) {
	caps.RemoveOf[rootMark](n.Caps())
}

// IsRoot reports whether any RootMarker capability of n reports true.
func IsRoot(n *Node) bool {
	for _, t := range n.caps.Types() {
		v, _ := n.caps.LookupType(t)
		if m, ok := v.(RootMarker); ok && m.IsRoot() {
			return true
		}
	}
	return false
}

// FindRoot returns the first of n and its ancestors, nearest first, for
// which isRoot returns true, or nil.
func (n *Node) FindRoot(isRoot func(*Node) bool) *Node {
	for x := n; x != nil; x = x.parent {
		if isRoot(x) {
			return x
		}
	}
	return nil
}

// Root returns the nearest of n and its ancestors marked as a root, or nil.
func (n *Node) Root() *Node {
	return n.FindRoot(IsRoot)
}

// Top returns the outermost ancestor of n, which is n itself when it is
// unattached.
func (n *Node) Top() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}
