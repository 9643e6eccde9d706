package huffman

type options struct {
	foldCase bool
}

// Option configures BuildTree and Compress.
type Option func(*options)

// WithCaseFold uppercases ASCII letters before counting and encoding.
// Decompressing then yields the folded text, not the original.
func WithCaseFold(fold bool) Option {
	return func(o *options) { o.foldCase = fold }
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) prepare(text []byte) []byte {
	if !o.foldCase {
		return text
	}
	out := make([]byte, len(text))
	for i, c := range text {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

type freqEntry struct {
	c byte
	f uint64
}

// countOrdered counts symbol frequencies, keeping first-seen order.
func countOrdered(text []byte) []freqEntry {
	var index [256]int
	entries := make([]freqEntry, 0, 16)
	for _, c := range text {
		if i := index[c]; i > 0 {
			entries[i-1].f++
			continue
		}
		entries = append(entries, freqEntry{c: c, f: 1})
		index[c] = len(entries)
	}
	return entries
}

/*** ---------- 트리 구성 ---------- ***/

// BuildTree builds an optimal prefix-code tree for text. Leaves are seeded in
// first-seen order. The first entry dequeued becomes the zero branch and the
// second the one branch. Identical input always yields an identical tree.
func BuildTree(text []byte, opts ...Option) (*Node, error) {
	return buildPrepared(applyOptions(opts).prepare(text))
}

func buildPrepared(text []byte) (*Node, error) {
	entries := countOrdered(text)
	if len(entries) < 2 {
		return nil, ErrInsufficientSymbols
	}
	return makeTreeOrdered(entries), nil
}

func makeTreeOrdered(entries []freqEntry) *Node {
	h := &minHeap{}
	for _, e := range entries {
		h.push(NewLeaf(e.c), e.f)
	}
	for h.size() > 1 {
		a, _ := h.pop()
		b, _ := h.pop()
		h.push(NewInternal(a.node, b.node), a.weight+b.weight) // a=zero, b=one
	}
	root, _ := h.pop()
	return root.node
}
