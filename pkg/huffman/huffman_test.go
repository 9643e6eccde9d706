package huffman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrinkit_go/pkg/bits"
)

const randSeed = 0x5a025ca11825a5e7

// exampleTree is
//
//	    *
//	   / \
//	  T   *
//	     / \
//	    *   E
//	   / \
//	  R   S
func exampleTree() *Node {
	return NewInternal(
		NewLeaf('T'),
		NewInternal(NewInternal(NewLeaf('R'), NewLeaf('S')), NewLeaf('E')),
	)
}

func mustBits(t *testing.T, vs ...int) []bits.Bit {
	t.Helper()
	bs, err := bits.FromInts(vs...)
	require.NoError(t, err)
	return bs
}

func randomText(rng *rand.Rand, alphabet, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		// 편향된 분포로 깊은 트리도 만들어 봐요
		out[i] = byte(rng.Intn(1 + rng.Intn(alphabet)))
	}
	return out
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(exampleTree(), nil))
	assert.True(t, Equal(exampleTree(), exampleTree()))

	simple := NewInternal(NewLeaf('A'), NewLeaf('B'))
	swapped := NewInternal(NewLeaf('B'), NewLeaf('A'))
	assert.False(t, Equal(simple, swapped))
	assert.False(t, Equal(exampleTree(), simple))
	assert.False(t, Equal(exampleTree(), exampleTree().One))
	assert.False(t, Equal(NewLeaf('A'), simple))
}

func TestNodeHelpers(t *testing.T) {
	tree := exampleTree()
	assert.Equal(t, 4, tree.Leaves())
	assert.Equal(t, 3, tree.Depth())
	assert.Equal(t, `('T' (('R' 'S') 'E'))`, tree.String())
	assert.Panics(t, func() { NewInternal(NewLeaf('A'), nil) })
}

func TestBuildTreeExample(t *testing.T) {
	tree, err := BuildTree([]byte("STREETTEST"))
	require.NoError(t, err)
	assert.True(t, Equal(exampleTree(), tree), "got %v", tree)
}

func TestBuildTreeInsufficientSymbols(t *testing.T) {
	for _, in := range []string{"", "A", "AAAAAA"} {
		_, err := BuildTree([]byte(in))
		assert.ErrorIs(t, err, ErrInsufficientSymbols, "input %q", in)
	}
	// 대소문자 접기 후 한 글자만 남는 경우
	_, err := BuildTree([]byte("aA"), WithCaseFold(true))
	assert.ErrorIs(t, err, ErrInsufficientSymbols)
}

func TestBuildTreeDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < 20; i++ {
		text := randomText(rng, 256, 500)
		a, err := BuildTree(text)
		require.NoError(t, err)
		b, err := BuildTree(text)
		require.NoError(t, err)
		assert.True(t, Equal(a, b))
	}
}

func TestBuildTreeCaseFold(t *testing.T) {
	folded, err := BuildTree([]byte("streettest"), WithCaseFold(true))
	require.NoError(t, err)
	assert.True(t, Equal(exampleTree(), folded))

	plain, err := BuildTree([]byte("streettest"))
	require.NoError(t, err)
	assert.False(t, Equal(exampleTree(), plain))
}

func TestBuildTreeSkewed(t *testing.T) {
	// 빈도가 1,1,2,4,8,... 이면 트리가 사슬 모양이 돼요
	var text []byte
	for i := 0; i < 12; i++ {
		for j := 0; j < 1<<i; j++ {
			text = append(text, byte('a'+i))
		}
	}
	text = append(text, 'z')
	tree, err := BuildTree(text)
	require.NoError(t, err)
	assert.Equal(t, 13, tree.Leaves())
	assert.Equal(t, 12, tree.Depth())
}

func TestMinHeapOrder(t *testing.T) {
	h := &minHeap{}
	h.push(NewLeaf('a'), 3)
	h.push(NewLeaf('b'), 1)
	h.push(NewLeaf('c'), 3)
	h.push(NewInternal(NewLeaf('x'), NewLeaf('y')), 3)
	h.push(NewLeaf('d'), 2)

	var got []string
	for h.size() > 0 {
		e, ok := h.pop()
		require.True(t, ok)
		got = append(got, e.node.String())
	}
	assert.Equal(t, []string{`'b'`, `'d'`, `('x' 'y')`, `'a'`, `'c'`}, got)

	_, ok := h.pop()
	assert.False(t, ok)
}

func TestFlattenExample(t *testing.T) {
	shape, leaves := Flatten(exampleTree())
	assert.Equal(t, mustBits(t, 1, 0, 1, 1, 0, 0, 0), shape)
	assert.Equal(t, []byte("TRSE"), leaves)
}

func TestFlattenEmpty(t *testing.T) {
	shape, leaves := Flatten(nil)
	assert.Empty(t, shape)
	assert.Empty(t, leaves)
}

func TestUnflattenExample(t *testing.T) {
	shape := mustBits(t, 1, 0, 1, 1, 0, 0, 0)
	leaves := []byte("TRSE")
	tree, err := Unflatten(shape, leaves)
	require.NoError(t, err)
	assert.True(t, Equal(exampleTree(), tree))
	// 입력은 그대로
	assert.Equal(t, mustBits(t, 1, 0, 1, 1, 0, 0, 0), shape)
	assert.Equal(t, []byte("TRSE"), leaves)
}

func TestUnflattenEmpty(t *testing.T) {
	tree, err := Unflatten(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestUnflattenMalformed(t *testing.T) {
	cases := []struct {
		name   string
		shape  []int
		leaves string
	}{
		{"shape ends early", []int{1, 0}, "T"},
		{"leaves exhausted", []int{1, 0, 0}, "T"},
		{"extra shape", []int{1, 0, 0, 0}, "TR"},
		{"extra leaves", []int{1, 0, 0}, "TRS"},
		{"leaves without shape", nil, "T"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unflatten(mustBits(t, tc.shape...), []byte(tc.leaves))
			assert.ErrorIs(t, err, ErrMalformedTree)
		})
	}
}

func TestFlattenUnflattenInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(randSeed))
	for i := 0; i < 50; i++ {
		tree, err := BuildTree(randomText(rng, 256, 1+rng.Intn(2000)))
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientSymbols)
			continue
		}
		shape, leaves := Flatten(tree)
		assert.Len(t, shape, 2*len(leaves)-1)
		assert.Equal(t, tree.Leaves(), len(leaves))

		back, err := Unflatten(shape, leaves)
		require.NoError(t, err)
		assert.True(t, Equal(tree, back))
	}
}
