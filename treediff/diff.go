// Package treediff compares two node trees by the names of their children.
//
// Children are aligned in order by name, the same way an edit script aligns
// lines, and aligned pairs are compared recursively. Positions and
// capabilities are ignored.
package treediff

import (
	"fmt"
	"io"

	"github.com/signadot/ical-format/go-ical/debug"
	"github.com/signadot/ical-format/go-ical/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Delete Op = iota
	Insert
	Rename
)

func (o Op) String() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	case Rename:
		return "~"
	default:
		return "?"
	}
}

// Change is one difference. Path locates the node in the tree it exists
// in: the from tree for Delete and Rename, the to tree for Insert.
type Change struct {
	Op   Op
	Path string
	// Name is the node name, or for Rename the new name.
	Name string
}

func (c Change) String() string {
	if c.Op == Rename {
		return fmt.Sprintf("%s %s -> %s", c.Op, c.Path, c.Name)
	}
	return fmt.Sprintf("%s %s", c.Op, c.Path)
}

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	if !ir.Equal(from, to) {
		res = append(res, Change{Op: Rename, Path: from.Path(), Name: label(to)})
	}
	return diffChildren(res, from, to)
}

func diffChildren(res []Change, from, to *ir.Node) []Change {
	fromKids := from.Children().Snapshot()
	toKids := to.Children().Snapshot()
	m := map[string]rune{}
	fromRunes := mapNamesTo(m, fromKids)
	toRunes := mapNamesTo(m, toKids)
	dmp := diffpatch.New()
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("treediff: %s: %d ops\n", from.Path(), len(diffs))
	}
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				c := fromKids[fi]
				res = append(res, Change{Op: Delete, Path: c.Path(), Name: label(c)})
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = diffChildren(res, fromKids[fi], toKids[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				c := toKids[ti]
				res = append(res, Change{Op: Insert, Path: c.Path(), Name: label(c)})
				ti++
			}
		}
	}
	return res
}

func mapNamesTo(m map[string]rune, ns []*ir.Node) []rune {
	rs := make([]rune, len(ns))
	for i, n := range ns {
		k := key(n)
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

// key separates unset names from every set name, including "".
func key(n *ir.Node) string {
	if !n.HasName() {
		return "\x00"
	}
	return "=" + n.Name()
}

func label(n *ir.Node) string {
	if !n.HasName() {
		return "*"
	}
	return n.Name()
}

// Format writes one change per line.
func Format(w io.Writer, cs []Change) error {
	for _, c := range cs {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
