package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecrementHeaderYieldsMaximum(t *testing.T) {
	tree := newIntSet(t)
	assert.Same(t, &tree.header, decrement(&tree.header), "empty tree")
	insertAll(t, tree, 5, 1, 9)
	assert.Same(t, tree.header.right, decrement(&tree.header))
	assert.Equal(t, 9, decrement(&tree.header).value)
}

func TestIncrementMaximumYieldsHeader(t *testing.T) {
	tree := newIntSet(t)
	insertAll(t, tree, 5, 1, 9, 7)
	assert.Same(t, &tree.header, increment(tree.header.right))
	assert.Same(t, &tree.header, decrement(tree.header.left), "minimum decrements to the header")
}

func TestTraversalSingleNode(t *testing.T) {
	tree := newIntSet(t)
	insertAll(t, tree, 42)
	root := tree.root()
	assert.Same(t, root, tree.header.left)
	assert.Same(t, root, tree.header.right)
	assert.Same(t, &tree.header, increment(root))
	assert.Same(t, root, decrement(&tree.header))
}

func TestRotationsKeepHeaderRoot(t *testing.T) {
	tree := newIntSet(t)
	insertAll(t, tree, 2, 1, 3)
	old := tree.root()
	rotateLeft(old, &tree.header)
	assert.Equal(t, 3, tree.root().value)
	assert.Same(t, &tree.header, tree.root().parent)
	rotateRight(tree.root(), &tree.header)
	assert.Same(t, old, tree.root())
	assert.Equal(t, []int{1, 2, 3}, inorder(tree))
}
