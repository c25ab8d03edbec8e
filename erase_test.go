package rbtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseEndIsNoop(t *testing.T) {
	tree := newIntSet(t)
	insertAll(t, tree, 1, 2)
	assert.True(t, tree.Erase(tree.End()).IsEnd())
	assert.Equal(t, 2, tree.Len())
	assert.True(t, tree.Erase(tree.Last()).IsEnd(), "erasing the maximum returns End")
	assert.Equal(t, []int{1}, inorder(tree))
}

func TestEraseRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := newIntSet(t)
	for k := range 20 {
		insertAll(t, tree, k)
	}
	last := tree.EraseRange(tree.Find(5), tree.Find(15))
	assert.Equal(t, 15, last.Value())
	require.NoError(t, tree.Check())
	assert.Equal(t, 10, tree.Len())
	assert.True(t, tree.EraseRange(tree.Begin(), tree.End()).IsEnd())
	assert.True(t, tree.IsEmpty())
	require.NoError(t, tree.Check())
}

func TestEraseKey(t *testing.T) {
	tree := newIntSet(t)
	for _, k := range []int{4, 2, 4, 8, 4} {
		_, err := tree.InsertEqual(k)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, tree.EraseKey(4))
	assert.Equal(t, 0, tree.EraseKey(4))
	assert.Equal(t, []int{2, 8}, inorder(tree))
	require.NoError(t, tree.Check())
}

func TestClearAndReuse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := newIntSet(t)
	insertAll(t, tree, 3, 1, 4, 1, 5, 9, 2, 6)
	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.Begin().Equal(tree.End()))
	require.NoError(t, tree.Check())
	insertAll(t, tree, 7)
	assert.Equal(t, []int{7}, inorder(tree))
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	tree := newIntSet(t)
	for k := range 33 {
		insertAll(t, tree, k*3)
	}
	c, err := tree.Clone()
	require.NoError(t, err)
	require.NoError(t, c.Check())
	assert.Equal(t, inorder(tree), inorder(c))
	assert.Equal(t, tree.Height(), c.Height())
	c.EraseKey(0)
	insertAll(t, c, 1)
	assert.True(t, tree.Contains(0))
	assert.False(t, tree.Contains(1))
	require.NoError(t, tree.Check())

	empty, err := newIntSet(t).Clone()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	require.NoError(t, empty.Check())
}

func TestSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rbtree")
	defer teardown()
	//
	a, b := newIntSet(t), newIntSet(t)
	insertAll(t, a, 1, 2, 3)
	two := a.Find(2)
	a.Swap(b)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, []int{1, 2, 3}, inorder(b))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
	assert.True(t, two.Equal(b.Find(2)), "iterators follow their values")
	assert.True(t, b.Last().Next().Equal(b.End()))

	insertAll(t, a, 10, 20)
	a.Swap(b)
	assert.Equal(t, []int{1, 2, 3}, inorder(a))
	assert.Equal(t, []int{10, 20}, inorder(b))
	require.NoError(t, a.Check())
	require.NoError(t, b.Check())
	a.Swap(a)
	require.NoError(t, a.Check())
}

func TestEraseUnlinkedNodePanics(t *testing.T) {
	tree := newIntSet(t)
	insertAll(t, tree, 1, 2, 3)
	stray := Iterator[int, int]{node: &Node[int]{value: 2}, keyOf: Identity[int]()}
	assert.PanicsWithValue(t, "rbtree: erase of unlinked node", func() {
		tree.Erase(stray)
	})
	require.NoError(t, tree.Check())
	assert.Equal(t, 3, tree.Len())
}
