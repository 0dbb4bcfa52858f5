package llrb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/tangotree/llrb"
)

func buildTestTree(t *testing.T, keys ...int) *llrb.Node {
	t.Helper()
	root := llrb.Nil()
	for _, k := range keys {
		root = llrb.Insert(root, k)
	}
	require.NoError(t, llrb.Check(root))
	return root
}

func keysInOrder(root *llrb.Node, out *[]int) {
	if llrb.IsDummy(root) {
		return
	}
	keysInOrder(root.Left, out)
	*out = append(*out, root.Key)
	keysInOrder(root.Right, out)
}

func TestSplitAtKey(t *testing.T) {
	root := buildTestTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	lo, x, hi, err := llrb.Split(root, 5)
	require.NoError(t, err)
	require.Equal(t, 5, x.Key)
	require.NoError(t, llrb.Check(lo))
	require.NoError(t, llrb.Check(hi))

	var loKeys, hiKeys []int
	keysInOrder(lo, &loKeys)
	keysInOrder(hi, &hiKeys)
	assert.Equal(t, []int{1, 2, 3, 4}, loKeys)
	assert.Equal(t, []int{6, 7, 8, 9}, hiKeys)
}

func TestSplitMissingKey(t *testing.T) {
	root := buildTestTree(t, 1, 2, 3)
	_, _, _, err := llrb.Split(root, 42)
	assert.ErrorIs(t, err, llrb.ErrKeyNotFound)
}

func TestJoinRoundTrip(t *testing.T) {
	root := buildTestTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	lo, x, hi, err := llrb.Split(root, 5)
	require.NoError(t, err)

	joined := llrb.Join(lo, x, hi)
	require.NoError(t, llrb.Check(joined))

	var keys []int
	keysInOrder(joined, &keys)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
}

func TestJoinWithEmptySide(t *testing.T) {
	hi := buildTestTree(t, 2, 3, 4)
	x := &llrb.Node{Key: 1, Left: llrb.Nil(), Right: llrb.Nil(), Color: llrb.Black, Type: llrb.Regular}

	joined := llrb.Join(llrb.Nil(), x, hi)
	require.NoError(t, llrb.Check(joined))

	var keys []int
	keysInOrder(joined, &keys)
	assert.Equal(t, []int{1, 2, 3, 4}, keys)
}

func TestExtractMinMax(t *testing.T) {
	root := buildTestTree(t, 1, 2, 3, 4, 5)

	min, rest, boundary, err := llrb.ExtractMin(root)
	require.NoError(t, err)
	assert.Equal(t, 1, min.Key)
	assert.True(t, llrb.IsDummy(boundary))
	require.NoError(t, llrb.Check(rest))

	rest, max, boundary, err := llrb.ExtractMax(rest)
	require.NoError(t, err)
	assert.Equal(t, 5, max.Key)
	assert.True(t, llrb.IsDummy(boundary))
	require.NoError(t, llrb.Check(rest))

	var keys []int
	keysInOrder(rest, &keys)
	assert.Equal(t, []int{2, 3, 4}, keys)
}

func TestExtractMinEmpty(t *testing.T) {
	_, _, _, err := llrb.ExtractMin(llrb.Nil())
	assert.ErrorIs(t, err, llrb.ErrEmptyTree)
}

// TestExtractMinPreservesExternalBoundary reproduces a minimum node whose
// own left child is a real EXTERNAL subtree (a nested auxiliary hanging at
// the boundary), not the sentinel, and asserts ExtractMin surfaces it
// through boundary instead of discarding it.
func TestExtractMinPreservesExternalBoundary(t *testing.T) {
	extChild := &llrb.Node{Key: 1, Left: llrb.Nil(), Right: llrb.Nil(), Color: llrb.Black, Type: llrb.External}
	llrb.Recompute(extChild)
	m := &llrb.Node{Key: 2, Left: extChild, Right: llrb.Nil(), Color: llrb.Black, Type: llrb.Regular}
	llrb.Recompute(m)

	min, rest, boundary, err := llrb.ExtractMin(m)
	require.NoError(t, err)
	assert.Equal(t, 2, min.Key)
	assert.True(t, llrb.IsDummy(rest))
	require.False(t, llrb.IsDummy(boundary))
	assert.Equal(t, 1, boundary.Key)
}

// TestExtractMaxPreservesExternalBoundary is the mirror of
// TestExtractMinPreservesExternalBoundary, on the right side.
func TestExtractMaxPreservesExternalBoundary(t *testing.T) {
	extChild := &llrb.Node{Key: 2, Left: llrb.Nil(), Right: llrb.Nil(), Color: llrb.Black, Type: llrb.External}
	llrb.Recompute(extChild)
	m := &llrb.Node{Key: 1, Left: llrb.Nil(), Right: extChild, Color: llrb.Black, Type: llrb.Regular}
	llrb.Recompute(m)

	rest, max, boundary, err := llrb.ExtractMax(m)
	require.NoError(t, err)
	assert.Equal(t, 1, max.Key)
	assert.True(t, llrb.IsDummy(rest))
	require.False(t, llrb.IsDummy(boundary))
	assert.Equal(t, 2, boundary.Key)
}
