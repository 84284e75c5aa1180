// Package snap persists node trees as snapshots and restores them.
//
// A snapshot holds the name, position and root mark of each node and its
// children in order. Capabilities and listeners are derived, runtime-only
// state and are not persisted.
//
// Restoring follows the two-phase protocol of ir.Node: each node is
// Reconstructed, its fields and children are populated, and then Restored
// is called.
package snap

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/ical-format/go-ical/debug"
	"github.com/signadot/ical-format/go-ical/ir"

	"github.com/goccy/go-yaml"
)

var ErrBadSnapshot = errors.New("bad snapshot")

// Node is the persisted form of an ir.Node.
type Node struct {
	Name     *string `json:"name,omitempty" yaml:"name,omitempty"`
	Line     int     `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int     `json:"column,omitempty" yaml:"column,omitempty"`
	Root     bool    `json:"root,omitempty" yaml:"root,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Capture returns the snapshot of the tree rooted at n.
func Capture(n *ir.Node) *Node {
	res := &Node{
		Line:   n.Pos().Line,
		Column: n.Pos().Column,
		Root:   ir.IsRoot(n),
	}
	if n.HasName() {
		name := n.Name()
		res.Name = &name
	}
	for c := range n.Children().Nodes() {
		res.Children = append(res.Children, Capture(c))
	}
	return res
}

// Restore builds a detached tree from s.
func Restore(s *Node) (*ir.Node, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil node", ErrBadSnapshot)
	}
	n := &ir.Node{}
	n.Reconstruct()
	if s.Name != nil {
		n.SetName(*s.Name)
	}
	n.SetPos(ir.Pos{Line: s.Line, Column: s.Column})
	if s.Root {
		ir.MarkRoot(n)
	}
	for i, cs := range s.Children {
		c, err := Restore(cs)
		if err != nil {
			return nil, fmt.Errorf("child %d of %s: %w", i, n, err)
		}
		if err := n.Children().Add(c); err != nil {
			return nil, err
		}
	}
	n.Restored()
	if debug.Snap() {
		debug.Logf("snap: restored %s with %d children\n", n, n.Children().Len())
	}
	return n, nil
}

type options struct {
	format Format
	indent bool
}

type Option func(*options)

// WithFormat selects the encoding; the default is YAML.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// Indent requests indented JSON. YAML is always block formatted.
func Indent(v bool) Option {
	return func(o *options) { o.indent = v }
}

func mkOptions(opts []Option) *options {
	res := &options{}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Marshal encodes the snapshot of n.
func Marshal(n *ir.Node, opts ...Option) ([]byte, error) {
	o := mkOptions(opts)
	s := Capture(n)
	if !o.format.IsJSON() {
		return yaml.Marshal(s)
	}
	if o.indent {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}

// Unmarshal decodes a snapshot and restores it.
func Unmarshal(d []byte, opts ...Option) (*ir.Node, error) {
	o := mkOptions(opts)
	s := &Node{}
	var err error
	if o.format.IsJSON() {
		err = json.Unmarshal(d, s)
	} else {
		err = yaml.Unmarshal(d, s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	return Restore(s)
}
