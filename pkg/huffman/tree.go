/*
Package huffman builds Huffman encoding trees from byte frequencies, flattens
them to a shape/leaves form, encodes and decodes bit sequences against them,
and reads and writes the self-describing compressed container.
*/
package huffman

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInsufficientSymbols = errors.New("huffman: input must contain at least two distinct symbols")
	ErrUnknownSymbol       = errors.New("huffman: symbol not present in encoding tree")
	ErrMalformedTree       = errors.New("huffman: malformed flattened tree")
	ErrTruncatedMessage    = errors.New("huffman: message ends inside a code")
)

/*** ---------- 데이터 구조 ---------- ***/

// Node is either a leaf holding Symbol, or an internal node with both Zero
// and One set. A node never has exactly one child.
type Node struct {
	Symbol    byte
	Zero, One *Node
}

func NewLeaf(sym byte) *Node { return &Node{Symbol: sym} }

// NewInternal panics if either child is nil.
func NewInternal(zero, one *Node) *Node {
	if zero == nil || one == nil {
		panic("huffman: internal node needs two children")
	}
	return &Node{Zero: zero, One: one}
}

func (n *Node) IsLeaf() bool { return n.Zero == nil && n.One == nil }

// Equal reports whether a and b have the same shape and the same symbols at
// the same leaves. Two nil trees are equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.Symbol == b.Symbol
	}
	return Equal(a.Zero, b.Zero) && Equal(a.One, b.One)
}

// Leaves counts leaf nodes.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return 1
	}
	return n.Zero.Leaves() + n.One.Leaves()
}

// Depth is the longest root-to-leaf path length in edges.
func (n *Node) Depth() int {
	if n == nil || n.IsLeaf() {
		return 0
	}
	return 1 + max(n.Zero.Depth(), n.One.Depth())
}

// String renders the tree as nested pairs, e.g. ('T' (('R' 'S') 'E')).
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteString("<nil>")
	case n.IsLeaf():
		fmt.Fprintf(sb, "%q", rune(n.Symbol))
	default:
		sb.WriteByte('(')
		n.Zero.write(sb)
		sb.WriteByte(' ')
		n.One.write(sb)
		sb.WriteByte(')')
	}
}
