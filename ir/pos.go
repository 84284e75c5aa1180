package ir

import "strconv"

// Pos is the diagnostic source position a node was built from. It never
// takes part in equality or hashing.
type Pos struct {
	Line   int
	Column int
}

// IsZero reports whether p is unknown.
func (p Pos) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}
