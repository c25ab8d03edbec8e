package rbtree

// Color is the color of a tree node.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is the unit of storage of a tree. Nodes are created and linked by the
// tree; allocators only supply and reclaim the storage.
//
// Child links are owned by the tree, parent links are back-references used
// for traversal and rebalancing only.
type Node[V any] struct {
	color  Color
	header bool // true for the sentinel of a tree, never for payload nodes
	parent *Node[V]
	left   *Node[V]
	right  *Node[V]
	value  V
}

// Value returns the payload of the node.
func (n *Node[V]) Value() V {
	return n.value
}

// Color returns the color of the node.
func (n *Node[V]) Color() Color {
	return n.color
}

// minimum follows left links from x.
func minimum[V any](x *Node[V]) *Node[V] {
	for x.left != nil {
		x = x.left
	}
	return x
}

// maximum follows right links from x.
func maximum[V any](x *Node[V]) *Node[V] {
	for x.right != nil {
		x = x.right
	}
	return x
}

func isBlack[V any](x *Node[V]) bool {
	return x == nil || x.color == Black
}
