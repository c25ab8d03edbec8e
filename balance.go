package rbtree

// rotateLeft makes x the left child of its right child.
func rotateLeft[V any](x, header *Node[V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x == header.parent:
		header.parent = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight makes x the right child of its left child.
func rotateRight[V any](x, header *Node[V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x == header.parent:
		header.parent = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertAndRebalance links x as a child of p and restores the red-black
// invariants. If p is the header, the tree is empty and x becomes the root.
func insertAndRebalance[V any](insertLeft bool, x, p, header *Node[V]) {
	x.parent = p
	x.left = nil
	x.right = nil
	x.color = Red
	x.header = false

	if insertLeft || p == header {
		p.left = x // also sets leftmost if p is the header
		if p == header {
			header.parent = x
			header.right = x
		} else if p == header.left {
			header.left = x
		}
	} else {
		p.right = x
		if p == header.right {
			header.right = x
		}
	}

	for x != header.parent && x.parent.color == Red {
		xpp := x.parent.parent
		if x.parent == xpp.left {
			y := xpp.right
			if y != nil && y.color == Red {
				x.parent.color = Black
				y.color = Black
				xpp.color = Red
				x = xpp
				continue
			}
			if x == x.parent.right {
				x = x.parent
				rotateLeft(x, header)
			}
			x.parent.color = Black
			xpp.color = Red
			rotateRight(xpp, header)
		} else {
			y := xpp.left
			if y != nil && y.color == Red {
				x.parent.color = Black
				y.color = Black
				xpp.color = Red
				x = xpp
				continue
			}
			if x == x.parent.left {
				x = x.parent
				rotateRight(x, header)
			}
			x.parent.color = Black
			xpp.color = Red
			rotateLeft(xpp, header)
		}
	}
	header.parent.color = Black
}

// eraseAndRebalance unlinks z from the tree and restores the red-black
// invariants. It returns the node which has been detached, which is always z.
//
// If z has two children, its successor y is relinked into z's position and
// takes over z's color. y keeps its payload, so iterators to y stay valid.
func eraseAndRebalance[V any](z, header *Node[V]) *Node[V] {
	y := z
	var x, xParent *Node[V]
	switch {
	case y.left == nil:
		x = y.right // may be nil
	case y.right == nil:
		x = y.left
	default:
		y = minimum(y.right)
		x = y.right // may be nil
	}

	if y != z {
		z.left.parent = y
		y.left = z.left
		if y != z.right {
			xParent = y.parent
			if x != nil {
				x.parent = y.parent
			}
			y.parent.left = x // y is a left child
			y.right = z.right
			z.right.parent = y
		} else {
			xParent = y
		}
		switch {
		case header.parent == z:
			header.parent = y
		case z.parent.left == z:
			z.parent.left = y
		default:
			z.parent.right = y
		}
		y.parent = z.parent
		y.color, z.color = z.color, y.color
		y = z // y is the node to be detached
	} else {
		xParent = y.parent
		if x != nil {
			x.parent = y.parent
		}
		switch {
		case header.parent == z:
			header.parent = x
		case z.parent.left == z:
			z.parent.left = x
		default:
			z.parent.right = x
		}
		if header.left == z {
			if z.right == nil { // z.left is nil as well
				header.left = z.parent
			} else {
				header.left = minimum(x)
			}
		}
		if header.right == z {
			if z.left == nil { // z.right is nil as well
				header.right = z.parent
			} else {
				header.right = maximum(x)
			}
		}
	}

	if y.color == Red {
		return y
	}
	redSiblings := 0
	for x != header.parent && isBlack(x) {
		if x == xParent.left {
			w := xParent.right
			if w.color == Red {
				redSiblings++
				w.color = Black
				xParent.color = Red
				rotateLeft(xParent, header)
				w = xParent.right
			}
			if isBlack(w.left) && isBlack(w.right) {
				w.color = Red
				x = xParent
				xParent = xParent.parent
				continue
			}
			if isBlack(w.right) {
				w.left.color = Black
				w.color = Red
				rotateRight(w, header)
				w = xParent.right
			}
			w.color = xParent.color
			xParent.color = Black
			if w.right != nil {
				w.right.color = Black
			}
			rotateLeft(xParent, header)
			break
		}
		w := xParent.left
		if w.color == Red {
			redSiblings++
			w.color = Black
			xParent.color = Red
			rotateRight(xParent, header)
			w = xParent.left
		}
		if isBlack(w.right) && isBlack(w.left) {
			w.color = Red
			x = xParent
			xParent = xParent.parent
			continue
		}
		if isBlack(w.left) {
			w.right.color = Black
			w.color = Red
			rotateLeft(w, header)
			w = xParent.left
		}
		w.color = xParent.color
		xParent.color = Black
		if w.left != nil {
			w.left.color = Black
		}
		rotateRight(xParent, header)
		break
	}
	if x != nil {
		x.color = Black
	}
	if redSiblings > 0 {
		tracer().Debugf("erase: rotated at %d red siblings", redSiblings)
	}
	return y
}
