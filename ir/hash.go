package ir

import "hash/maphash"

var seed = maphash.MakeSeed()

// Equal reports whether a and b have the same name. Unset names are equal
// to each other and differ from every set name. Children, positions and
// capabilities are not compared.
//
// This is much shallower than structural equality: two different
// components both named VEVENT are Equal. Do not use Equal or Hash to key
// nodes in a set or map when distinct nodes must stay distinct.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.name == b.name
}

func (n *Node) Equal(o *Node) bool {
	return Equal(n, o)
}

// Hash returns a hash of the name of n, or of the identity of n when the
// name is unset. It panics if n is nil.
//
// Two unnamed nodes are Equal but hash differently unless they are the
// same node, so Hash is consistent with Equal only for named nodes.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	if n.name.Set {
		return maphash.String(seed, n.name.String)
	}
	return maphash.Comparable(seed, n)
}
