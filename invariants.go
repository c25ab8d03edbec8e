package rbtree

import "fmt"

// Check validates the structure of the tree. It returns an error wrapping
// ErrInvariant for the first violation found:
//
//   - the header is flagged and, for an empty tree, its caches point to itself
//   - the root is black and linked back to the header
//   - no red node has a red child
//   - every path from a node to its leaves has the same number of black nodes
//   - every child links back to its parent
//   - in-order traversal never finds a key less than its predecessor's
//   - the node count and the leftmost/rightmost caches are accurate
//
// Check is meant for tests and debugging. It runs in O(n).
func (t *Tree[K, V]) Check() error {
	if err := t.check(); err != nil {
		tracer().Errorf("rbtree: %v", err)
		return err
	}
	return nil
}

func (t *Tree[K, V]) check() error {
	h := &t.header
	if !h.header {
		return invariantError("header flag is not set")
	}
	root := h.parent
	if root == nil {
		if t.count != 0 {
			return invariantError("empty tree has count %d", t.count)
		}
		if h.left != h || h.right != h {
			return invariantError("empty tree caches do not point to header")
		}
		return nil
	}
	if root.parent != h {
		return invariantError("root is not linked to header")
	}
	if root.color != Black {
		return invariantError("root is red")
	}
	n, _, err := t.checkNode(root)
	if err != nil {
		return err
	}
	if n != t.count {
		return invariantError("tree has %d nodes, count is %d", n, t.count)
	}
	if h.left != minimum(root) {
		return invariantError("leftmost cache is stale")
	}
	if h.right != maximum(root) {
		return invariantError("rightmost cache is stale")
	}
	steps := 0
	for x := h.left; x != h; x = increment(x) {
		if y := increment(x); y != h && t.cfg.Less(t.key(y), t.key(x)) {
			return invariantError("key %v ordered after %v", t.key(y), t.key(x))
		}
		if steps++; steps > t.count {
			return invariantError("in-order traversal does not terminate")
		}
	}
	return nil
}

// checkNode validates the subtree at x and returns its node count and black
// height.
func (t *Tree[K, V]) checkNode(x *Node[V]) (int, int, error) {
	if x == nil {
		return 0, 1, nil
	}
	if x.header {
		return 0, 0, invariantError("header reachable as a child")
	}
	if x.left != nil && x.left.parent != x || x.right != nil && x.right.parent != x {
		return 0, 0, invariantError("broken parent link below %v", t.key(x))
	}
	if x.color == Red && (!isBlack(x.left) || !isBlack(x.right)) {
		return 0, 0, invariantError("red node %v has a red child", t.key(x))
	}
	ln, lh, err := t.checkNode(x.left)
	if err != nil {
		return 0, 0, err
	}
	rn, rh, err := t.checkNode(x.right)
	if err != nil {
		return 0, 0, err
	}
	if lh != rh {
		return 0, 0, invariantError("black heights %d and %d differ below %v", lh, rh, t.key(x))
	}
	if x.color == Black {
		lh++
	}
	return ln + rn + 1, lh, nil
}

func invariantError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)
}
