package rbtree

import "github.com/npillmayer/rbtree/iterator"

// Iterator is a bidirectional position within a tree. Iterators have value
// semantics: Next and Prev return a new iterator.
//
// Two iterators are equal if they denote the same node. The zero value is not
// a valid position of any tree.
type Iterator[K, V any] struct {
	node  *Node[V]
	keyOf func(V) K
}

// Next returns an iterator to the in-order successor. It is illegal to call
// Next on an end iterator.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	it.node = increment(it.node)
	return it
}

// Prev returns an iterator to the in-order predecessor. The predecessor of
// the end iterator is the maximum of the tree.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	it.node = decrement(it.node)
	return it
}

// Equal reports whether it and other denote the same node.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// IsEnd reports whether it is positioned past the last element.
func (it Iterator[K, V]) IsEnd() bool {
	return it.node == nil || it.node.header
}

// Value returns the value at the iterator's position. It is illegal to call
// Value on an end iterator.
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// Ref returns a pointer to the value at the iterator's position. Clients may
// modify the value through it as long as its key does not change.
func (it Iterator[K, V]) Ref() *V {
	return &it.node.value
}

// Key returns the key of the value at the iterator's position.
func (it Iterator[K, V]) Key() K {
	return it.keyOf(it.node.value)
}

// Category returns iterator.BidirectionalCategory.
func (it Iterator[K, V]) Category() iterator.Category {
	return iterator.BidirectionalCategory
}
