package ir

import (
	"strconv"
	"strings"
)

// Path returns a diagnostic path from the outermost ancestor of n to n, such
// as "/VCALENDAR/VEVENT[1]/VALARM". A segment carries an index when its
// parent holds more than one child of the same name; unnamed nodes appear
// as "*".
func (n *Node) Path() string {
	var segs []string
	for x := n; x != nil; x = x.parent {
		segs = append(segs, x.segment())
	}
	buf := &strings.Builder{}
	for i := len(segs) - 1; i >= 0; i-- {
		buf.WriteByte('/')
		buf.WriteString(segs[i])
	}
	return buf.String()
}

func (n *Node) segment() string {
	s := "*"
	if n.name.Set {
		s = n.name.String
	}
	p := n.parent
	if p == nil || p.children == nil {
		return s
	}
	idx, count := -1, 0
	for _, c := range p.children.nodes {
		if c.name != n.name {
			continue
		}
		if c == n {
			idx = count
		}
		count++
	}
	if count < 2 || idx == -1 {
		return s
	}
	return s + "[" + strconv.Itoa(idx) + "]"
}
