package huffman

import (
	"fmt"

	"shrinkit_go/pkg/bits"
)

// Flatten walks the tree in pre-order, emitting 1 for an internal node and 0
// plus the symbol for a leaf. A nil tree flattens to empty sequences.
func Flatten(root *Node) (shape []bits.Bit, leaves []byte) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			shape = append(shape, bits.Zero)
			leaves = append(leaves, n.Symbol)
			return
		}
		shape = append(shape, bits.One)
		walk(n.Zero)
		walk(n.One)
	}
	walk(root)
	return shape, leaves
}

// Unflatten rebuilds the tree that Flatten produced. The input slices are
// read through cursors and left untouched. Empty input yields a nil tree.
func Unflatten(shape []bits.Bit, leaves []byte) (*Node, error) {
	if len(shape) == 0 {
		if len(leaves) != 0 {
			return nil, fmt.Errorf("%w: %d leaves without shape", ErrMalformedTree, len(leaves))
		}
		return nil, nil
	}
	u := unflattener{shape: shape, leaves: leaves}
	root, err := u.node()
	if err != nil {
		return nil, err
	}
	if u.si != len(shape) || u.li != len(leaves) {
		return nil, fmt.Errorf("%w: %d shape bits and %d leaves left over",
			ErrMalformedTree, len(shape)-u.si, len(leaves)-u.li)
	}
	return root, nil
}

type unflattener struct {
	shape  []bits.Bit
	leaves []byte
	si, li int
}

func (u *unflattener) node() (*Node, error) {
	if u.si >= len(u.shape) {
		return nil, fmt.Errorf("%w: shape ends at bit %d", ErrMalformedTree, u.si)
	}
	b := u.shape[u.si]
	u.si++
	if b == bits.Zero {
		if u.li >= len(u.leaves) {
			return nil, fmt.Errorf("%w: leaves exhausted after %d", ErrMalformedTree, u.li)
		}
		n := NewLeaf(u.leaves[u.li])
		u.li++
		return n, nil
	}
	zero, err := u.node()
	if err != nil {
		return nil, err
	}
	one, err := u.node()
	if err != nil {
		return nil, err
	}
	return NewInternal(zero, one), nil
}
