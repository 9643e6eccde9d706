package huffman

import (
	"fmt"

	"shrinkit_go/pkg/bits"
)

// CodeTable maps every leaf symbol to its root-to-leaf path.
func CodeTable(root *Node) map[byte][]bits.Bit {
	table := make(map[byte][]bits.Bit)
	var walk func(n *Node, path []bits.Bit)
	walk = func(n *Node, path []bits.Bit) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			table[n.Symbol] = append([]bits.Bit(nil), path...)
			return
		}
		walk(n.Zero, append(path, bits.Zero))
		walk(n.One, append(path, bits.One))
	}
	walk(root, make([]bits.Bit, 0, 16))
	return table
}

/*** ---------- 인코딩 ---------- ***/

// EncodeText concatenates the code of each symbol of text, in order.
func EncodeText(root *Node, text []byte) ([]bits.Bit, error) {
	table := CodeTable(root)
	out := make([]bits.Bit, 0, len(text)*4)
	for i, c := range text {
		code, ok := table[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, rune(c), i)
		}
		out = append(out, code...)
	}
	return out, nil
}

/*** ---------- 디코딩 ---------- ***/

// DecodeText walks the tree bit by bit. At a leaf it emits the symbol and
// restarts from the root on the same bit. When the bits run out a pending
// leaf is emitted and a partial path is dropped. A nil tree decodes to
// nothing.
func DecodeText(root *Node, message []bits.Bit) []byte {
	out, _ := decode(root, message)
	return out
}

// DecodeTextStrict is DecodeText that fails with ErrTruncatedMessage instead
// of dropping a partial trailing code.
func DecodeTextStrict(root *Node, message []bits.Bit) ([]byte, error) {
	out, dangling := decode(root, message)
	if dangling {
		return nil, fmt.Errorf("%w after %d symbols", ErrTruncatedMessage, len(out))
	}
	return out, nil
}

func decode(root *Node, message []bits.Bit) (out []byte, dangling bool) {
	if root == nil {
		return []byte{}, false
	}
	out = make([]byte, 0, len(message)/2+1)
	cur := root
	for i := 0; i < len(message); {
		switch {
		case message[i] == bits.Zero && cur.Zero != nil:
			cur = cur.Zero
			i++
		case message[i] == bits.One && cur.One != nil:
			cur = cur.One
			i++
		case cur == root:
			// 단일 리프 트리: 진행 불가, 비트 버림
			i++
		default:
			out = append(out, cur.Symbol)
			cur = root
		}
	}
	if cur.IsLeaf() {
		out = append(out, cur.Symbol)
		return out, false
	}
	return out, cur != root
}
