// Package query selects nodes of a tree with boolean expr-lang expressions.
//
// An expression is evaluated once per node against these variables:
//
//	name      string  node name, "" if unset
//	named     bool    whether the name is set
//	line      int     source line
//	column    int     source column
//	depth     int     number of ancestors
//	path      string  diagnostic path, see ir.Node.Path
//	children  int     number of children
//	parent    string  parent name, "" if none
//	root      bool    whether the node carries a root marker
//
// and these functions:
//
//	hasCap(key)        a capability is stored under the string key
//	hasChild(name)     a direct child is named name
//	under(name)        some ancestor is named name
//
// For example
//
//	name == "VALARM" && under("VEVENT")
package query

import (
	"errors"
	"fmt"

	"github.com/signadot/ical-format/go-ical/debug"
	"github.com/signadot/ical-format/go-ical/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src     string
	program *vm.Program
}

// Compile type checks src, which must be a boolean expression.
func Compile(src string) (*Query, error) {
	program, err := expr.Compile(src, expr.Env(env(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if debug.Query() {
		debug.Logf("query: compiled %q\n", src)
	}
	return &Query{src: src, program: program}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q against n.
func (q *Query) Match(n *ir.Node) (bool, error) {
	res, err := vm.Run(q.program, env(n))
	if err != nil {
		return false, fmt.Errorf("%w: %q at %s: %w", ErrQuery, q.src, n.Path(), err)
	}
	b, _ := res.(bool)
	if debug.Query() {
		debug.Logf("query: %q at %s: %v\n", q.src, n.Path(), b)
	}
	return b, nil
}

// Select returns the nodes of the tree rooted at n matching q, in document
// order.
func (q *Query) Select(n *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := n.Visit(func(x *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Match(x)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, x)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// env returns the variables for n. A nil n gives the zero values used for
// type checking.
func env(n *ir.Node) map[string]any {
	if n == nil {
		n = &ir.Node{}
	}
	parent := ""
	if p := n.Parent(); p != nil {
		parent = p.Name()
	}
	return map[string]any{
		"name":     n.Name(),
		"named":    n.HasName(),
		"line":     n.Pos().Line,
		"column":   n.Pos().Column,
		"depth":    n.Depth(),
		"path":     n.Path(),
		"children": n.Children().Len(),
		"parent":   parent,
		"root":     ir.IsRoot(n),
		"hasCap": func(key string) bool {
			_, ok := n.Caps().Lookup(key)
			return ok
		},
		"hasChild": func(name string) bool {
			for range n.Children().ByName(name) {
				return true
			}
			return false
		},
		"under": func(name string) bool {
			for p := n.Parent(); p != nil; p = p.Parent() {
				if p.HasName() && p.Name() == name {
					return true
				}
			}
			return false
		},
	}
}
