package llrb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/tangotree/llrb"
)

func TestInsertAndContains(t *testing.T) {
	var root *llrb.Node = llrb.Nil()
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	for _, k := range keys {
		root = llrb.Insert(root, k)
	}
	require.NoError(t, llrb.Check(root))

	for _, k := range keys {
		assert.True(t, llrb.Contains(root, k), "expected key %d to be present", k)
	}
	assert.False(t, llrb.Contains(root, 42))
}

func TestInsertRejectsDuplicate(t *testing.T) {
	root := llrb.Insert(llrb.Nil(), 1)
	assert.Panics(t, func() {
		llrb.Insert(root, 1)
	})
}

func TestSearchReturnsParent(t *testing.T) {
	root := llrb.Nil()
	for _, k := range []int{5, 3, 8} {
		root = llrb.Insert(root, k)
	}
	node, parent := llrb.Search(root, 3)
	require.False(t, llrb.IsDummy(node))
	assert.Equal(t, 3, node.Key)
	assert.Equal(t, 5, parent.Key)

	node, _ = llrb.Search(root, 100)
	assert.True(t, llrb.IsDummy(node))
}

func TestMinMax(t *testing.T) {
	root := llrb.Nil()
	for _, k := range []int{5, 3, 8, 1, 9} {
		root = llrb.Insert(root, k)
	}
	min, err := llrb.Min(root)
	require.NoError(t, err)
	assert.Equal(t, 1, min.Key)

	max, err := llrb.Max(root)
	require.NoError(t, err)
	assert.Equal(t, 9, max.Key)

	_, err = llrb.Min(llrb.Nil())
	assert.ErrorIs(t, err, llrb.ErrEmptyTree)
}

func TestRemoveMinMax(t *testing.T) {
	root := llrb.Nil()
	for _, k := range []int{5, 3, 8, 1, 9, 4, 7} {
		root = llrb.Insert(root, k)
	}

	root, err := llrb.RemoveMin(root)
	require.NoError(t, err)
	require.NoError(t, llrb.Check(root))
	assert.False(t, llrb.Contains(root, 1))

	root, err = llrb.RemoveMax(root)
	require.NoError(t, err)
	require.NoError(t, llrb.Check(root))
	assert.False(t, llrb.Contains(root, 9))
}

func TestRemove(t *testing.T) {
	root := llrb.Nil()
	keys := []int{5, 3, 8, 1, 4, 7, 9, 2, 6}
	for _, k := range keys {
		root = llrb.Insert(root, k)
	}

	for _, k := range keys {
		root = llrb.Remove(root, k)
		require.NoError(t, llrb.Check(root))
		assert.False(t, llrb.Contains(root, k))
	}
	assert.True(t, llrb.IsDummy(root))
}

func TestTreeWrapper(t *testing.T) {
	tr := llrb.New()
	for _, k := range []int{10, 20, 5, 15} {
		tr.Insert(k)
	}
	assert.Equal(t, 4, tr.Len())
	assert.True(t, tr.Contains(15))
	require.NoError(t, tr.Check())

	tr.Remove(20)
	assert.False(t, tr.Contains(20))
	assert.Equal(t, 3, tr.Len())
}
