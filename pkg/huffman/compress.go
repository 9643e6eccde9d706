package huffman

import (
	"fmt"

	"shrinkit_go/pkg/bits"
)

// EncodedData is a compressed message: the flattened tree plus the message
// bits encoded against it.
type EncodedData struct {
	TreeShape   []bits.Bit
	TreeLeaves  []byte
	MessageBits []bits.Bit
}

// Validate checks that the tree has at least two distinct leaves and that
// the shape has exactly 2c-1 bits for c leaves.
func (d *EncodedData) Validate() error {
	if len(d.TreeLeaves) < 2 {
		return fmt.Errorf("%w: %d leaves", ErrInvalidSymbolCount, len(d.TreeLeaves))
	}
	if want := 2*len(d.TreeLeaves) - 1; len(d.TreeShape) != want {
		return fmt.Errorf("%w: %d shape bits for %d leaves, want %d",
			ErrMalformedTree, len(d.TreeShape), len(d.TreeLeaves), want)
	}
	var seen [256]bool
	for i, s := range d.TreeLeaves {
		if seen[s] {
			return fmt.Errorf("%w: leaf %q repeated at %d", ErrMalformedTree, s, i)
		}
		seen[s] = true
	}
	return nil
}

// String renders d as {treeShape:...,treeLeaves:...,messageBits:...}.
func (d *EncodedData) String() string {
	return fmt.Sprintf("{treeShape:%s,treeLeaves:%q,messageBits:%s}",
		bits.Format(d.TreeShape), d.TreeLeaves, bits.Format(d.MessageBits))
}

// Compress builds a tree for text, flattens it and encodes text against it.
func Compress(text []byte, opts ...Option) (*EncodedData, error) {
	text = applyOptions(opts).prepare(text)
	tree, err := buildPrepared(text)
	if err != nil {
		return nil, err
	}
	shape, leaves := Flatten(tree)
	msg, err := EncodeText(tree, text)
	if err != nil {
		return nil, err
	}
	return &EncodedData{TreeShape: shape, TreeLeaves: leaves, MessageBits: msg}, nil
}

// Decompress rebuilds the tree and decodes the message bits. data is not
// modified.
func Decompress(data *EncodedData) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	tree, err := Unflatten(data.TreeShape, data.TreeLeaves)
	if err != nil {
		return nil, err
	}
	return DecodeTextStrict(tree, data.MessageBits)
}

// CompressString applies the text policy: letters are uppercased first.
func CompressString(text string) (*EncodedData, error) {
	return Compress([]byte(text), WithCaseFold(true))
}

func DecompressString(data *EncodedData) (string, error) {
	out, err := Decompress(data)
	return string(out), err
}
