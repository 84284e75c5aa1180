// Package outline writes a node tree as an indented, human readable
// outline, one node per line:
//
//	VCALENDAR (root) @1:1
//	  VEVENT @3:1 [validated]
//	    VALARM @7:1
//
// The outline is a diagnostic view of the object model, not a calendar
// serialization.
package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/ical-format/go-ical/ir"
)

type state struct {
	colors    *Colors
	positions bool
	caps      bool
	indent    string
	isComp    func(string) bool
}

type Option func(*state)

func WithColors(c *Colors) Option {
	return func(s *state) { s.colors = c }
}

// WithPositions includes "@line:col" for nodes with a position.
func WithPositions(v bool) Option {
	return func(s *state) { s.positions = v }
}

// WithCaps lists the string capability keys of each node.
func WithCaps(v bool) Option {
	return func(s *state) { s.caps = v }
}

func WithIndent(in string) Option {
	return func(s *state) { s.indent = in }
}

// WithComponents sets the predicate deciding which names are colored as
// components rather than properties.
func WithComponents(isComp func(string) bool) Option {
	return func(s *state) { s.isComp = isComp }
}

func Write(w io.Writer, n *ir.Node, opts ...Option) error {
	s := &state{
		colors:    &Colors{Default: colorDefault},
		positions: true,
		indent:    "  ",
		isComp:    func(string) bool { return false },
	}
	for _, opt := range opts {
		opt(s)
	}
	return n.Visit(func(x *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		_, err := io.WriteString(w, s.line(x, x.Depth()-n.Depth()))
		return true, err
	})
}

// String returns the outline of n with default options.
func String(n *ir.Node, opts ...Option) string {
	buf := &strings.Builder{}
	if err := Write(buf, n, opts...); err != nil {
		return fmt.Sprintf("[outline error: %v]", err)
	}
	return buf.String()
}

func (s *state) line(n *ir.Node, depth int) string {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(s.indent, depth))
	switch {
	case !n.HasName():
		buf.WriteString(s.colors.Color(UnnamedColor, "*"))
	case s.isComp(n.Name()):
		buf.WriteString(s.colors.Color(ComponentColor, n.Name()))
	default:
		buf.WriteString(s.colors.Color(PropertyColor, n.Name()))
	}
	if ir.IsRoot(n) {
		buf.WriteByte(' ')
		buf.WriteString(s.colors.Color(RootColor, "(root)"))
	}
	if s.positions && !n.Pos().IsZero() {
		buf.WriteByte(' ')
		buf.WriteString(s.colors.Color(PosColor, "@"+n.Pos().String()))
	}
	if s.caps {
		if keys := n.Caps().Names(); len(keys) > 0 {
			buf.WriteByte(' ')
			buf.WriteString(s.colors.Color(CapColor, "["+strings.Join(keys, " ")+"]"))
		}
	}
	buf.WriteByte('\n')
	return buf.String()
}
