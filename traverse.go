package rbtree

// increment returns the in-order successor of x. The successor of the
// maximum is the header. Incrementing the header is illegal.
func increment[V any](x *Node[V]) *Node[V] {
	if x.right != nil {
		return minimum(x.right)
	}
	y := x.parent
	for !y.header && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// decrement returns the in-order predecessor of x. The predecessor of the
// header is the maximum, which is the header itself for an empty tree.
// The predecessor of the minimum is the header.
func decrement[V any](x *Node[V]) *Node[V] {
	if x.header {
		return x.right
	}
	if x.left != nil {
		return maximum(x.left)
	}
	y := x.parent
	for !y.header && x == y.left {
		x = y
		y = y.parent
	}
	return y
}
