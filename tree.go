package rbtree

import (
	"cmp"
	"iter"

	"github.com/npillmayer/rbtree/iterator"
)

// Tree is an ordered container of values of type V, ordered by keys of type K.
//
// A tree owns all of its nodes. It must be created by New and must not be
// copied after creation, as nodes link back to the tree's header.
type Tree[K, V any] struct {
	cfg    Config[K, V]
	header Node[V]
	count  int
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg.normalized()}
	t.reset()
	return t, nil
}

// NewOrdered creates an empty tree ordering keys by their natural order.
func NewOrdered[K cmp.Ordered, V any](keyOf func(V) K) (*Tree[K, V], error) {
	return New(Config[K, V]{
		Less:  NaturalLess[K],
		KeyOf: keyOf,
	})
}

func (t *Tree[K, V]) reset() {
	t.header.header = true
	t.header.parent = nil
	t.header.left = &t.header
	t.header.right = &t.header
	t.count = 0
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

func (t *Tree[K, V]) root() *Node[V] {
	return t.header.parent
}

func (t *Tree[K, V]) key(n *Node[V]) K {
	return t.cfg.KeyOf(n.value)
}

func (t *Tree[K, V]) iterAt(n *Node[V]) Iterator[K, V] {
	return Iterator[K, V]{node: n, keyOf: t.cfg.KeyOf}
}

// Len returns the number of values in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no values.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.count == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty.
func (t *Tree[K, V]) Height() int {
	return height(t.root())
}

func height[V any](x *Node[V]) int {
	if x == nil {
		return 0
	}
	return 1 + max(height(x.left), height(x.right))
}

// Begin returns an iterator to the minimum. For an empty tree, Begin equals End.
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return t.iterAt(t.header.left)
}

// End returns the past-the-end iterator.
func (t *Tree[K, V]) End() Iterator[K, V] {
	return t.iterAt(&t.header)
}

// Last returns an iterator to the maximum. For an empty tree, Last equals End.
func (t *Tree[K, V]) Last() Iterator[K, V] {
	return t.iterAt(t.header.right)
}

// All returns an in-order sequence of all values.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for x := t.header.left; x != &t.header; x = increment(x) {
			if !yield(x.value) {
				return
			}
		}
	}
}

// Backward returns a reverse in-order sequence of all values.
func (t *Tree[K, V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for x := t.header.right; x != &t.header; x = decrement(x) {
			if !yield(x.value) {
				return
			}
		}
	}
}

// --- Lookup ----------------------------------------------------------------

func (t *Tree[K, V]) lowerBound(x, y *Node[V], k K) *Node[V] {
	for x != nil {
		if !t.cfg.Less(t.key(x), k) {
			y = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return y
}

func (t *Tree[K, V]) upperBound(x, y *Node[V], k K) *Node[V] {
	for x != nil {
		if t.cfg.Less(k, t.key(x)) {
			y = x
			x = x.left
		} else {
			x = x.right
		}
	}
	return y
}

// LowerBound returns an iterator to the first value whose key is not less
// than k, or End.
func (t *Tree[K, V]) LowerBound(k K) Iterator[K, V] {
	return t.iterAt(t.lowerBound(t.root(), &t.header, k))
}

// UpperBound returns an iterator to the first value whose key is greater
// than k, or End.
func (t *Tree[K, V]) UpperBound(k K) Iterator[K, V] {
	return t.iterAt(t.upperBound(t.root(), &t.header, k))
}

// EqualRange returns the range [first, last) of values with keys equivalent
// to k. The range is empty if no such value exists.
func (t *Tree[K, V]) EqualRange(k K) (first, last Iterator[K, V]) {
	x, y := t.root(), &t.header
	for x != nil {
		switch {
		case t.cfg.Less(t.key(x), k):
			x = x.right
		case t.cfg.Less(k, t.key(x)):
			y = x
			x = x.left
		default:
			xu, yu := x.right, y
			y = x
			x = x.left
			return t.iterAt(t.lowerBound(x, y, k)), t.iterAt(t.upperBound(xu, yu, k))
		}
	}
	return t.iterAt(y), t.iterAt(y)
}

// Find returns an iterator to a value with key equivalent to k, or End.
// For multi-key trees, the first of the equivalent values is found.
func (t *Tree[K, V]) Find(k K) Iterator[K, V] {
	j := t.lowerBound(t.root(), &t.header, k)
	if j == &t.header || t.cfg.Less(k, t.key(j)) {
		return t.End()
	}
	return t.iterAt(j)
}

// Contains reports whether a value with key equivalent to k exists.
func (t *Tree[K, V]) Contains(k K) bool {
	return !t.Find(k).IsEnd()
}

// Count returns the number of values with keys equivalent to k.
func (t *Tree[K, V]) Count(k K) int {
	first, last := t.EqualRange(k)
	return iterator.Distance(first, last)
}

// --- Insertion -------------------------------------------------------------

// link constructs a node for v and splices it in as a child of p. All key
// comparisons must have happened before link is called. If node storage
// cannot be allocated, the tree is left unchanged.
func (t *Tree[K, V]) link(p *Node[V], insertLeft bool, v V) (*Node[V], error) {
	z, err := t.cfg.Allocator.Allocate()
	if err != nil {
		return nil, err
	}
	z.value = v
	insertAndRebalance(insertLeft, z, p, &t.header)
	t.count++
	return z, nil
}

// insertNew inserts v below p, left of p if forced or if v orders before p.
func (t *Tree[K, V]) insertNew(p *Node[V], forceLeft bool, v V) (Iterator[K, V], bool, error) {
	insertLeft := forceLeft || p == &t.header || t.cfg.Less(t.cfg.KeyOf(v), t.key(p))
	z, err := t.link(p, insertLeft, v)
	if err != nil {
		return t.End(), false, err
	}
	return t.iterAt(z), true, nil
}

// insertUniquePos finds the parent for a new node with key k. If a node with
// an equivalent key exists, it is returned as dup instead.
func (t *Tree[K, V]) insertUniquePos(k K) (parent, dup *Node[V]) {
	x, y := t.root(), &t.header
	goLeft := true
	for x != nil {
		y = x
		goLeft = t.cfg.Less(k, t.key(x))
		if goLeft {
			x = x.left
		} else {
			x = x.right
		}
	}
	j := y
	if goLeft {
		if j == t.header.left {
			return y, nil
		}
		j = decrement(j)
	}
	if t.cfg.Less(t.key(j), k) {
		return y, nil
	}
	return nil, j
}

// InsertUnique inserts v if no value with an equivalent key exists. It returns
// an iterator to the inserted value, or to the value which prevented the
// insertion, together with a flag telling if v has been inserted.
//
// Allocation failures are returned as errors, leaving the tree unchanged.
func (t *Tree[K, V]) InsertUnique(v V) (Iterator[K, V], bool, error) {
	parent, dup := t.insertUniquePos(t.cfg.KeyOf(v))
	if dup != nil {
		return t.iterAt(dup), false, nil
	}
	return t.insertNew(parent, false, v)
}

// InsertEqual inserts v unconditionally. Values with equivalent keys are
// kept in insertion order, v is placed after all of them.
func (t *Tree[K, V]) InsertEqual(v V) (Iterator[K, V], error) {
	k := t.cfg.KeyOf(v)
	x, y := t.root(), &t.header
	for x != nil {
		y = x
		if t.cfg.Less(k, t.key(x)) {
			x = x.left
		} else {
			x = x.right
		}
	}
	it, _, err := t.insertNew(y, false, v)
	return it, err
}

// insertEqualLower inserts v before all values with equivalent keys.
func (t *Tree[K, V]) insertEqualLower(v V) (Iterator[K, V], error) {
	k := t.cfg.KeyOf(v)
	x, y := t.root(), &t.header
	for x != nil {
		y = x
		if !t.cfg.Less(t.key(x), k) {
			x = x.left
		} else {
			x = x.right
		}
	}
	insertLeft := y == &t.header || !t.cfg.Less(t.key(y), k)
	z, err := t.link(y, insertLeft, v)
	if err != nil {
		return t.End(), err
	}
	return t.iterAt(z), nil
}

// InsertUniqueHint inserts v like InsertUnique, using hint as a suggestion
// where v will end up. If v is inserted immediately before or after hint,
// insertion takes amortized constant time.
func (t *Tree[K, V]) InsertUniqueHint(hint Iterator[K, V], v V) (Iterator[K, V], bool, error) {
	k := t.cfg.KeyOf(v)
	less := t.cfg.Less
	pos := hint.node
	switch {
	case pos == nil || pos.header:
		if t.count > 0 && less(t.key(t.header.right), k) {
			return t.insertNew(t.header.right, false, v)
		}
	case less(k, t.key(pos)):
		if pos == t.header.left {
			return t.insertNew(pos, true, v)
		}
		if before := decrement(pos); less(t.key(before), k) {
			if before.right == nil {
				return t.insertNew(before, false, v)
			}
			return t.insertNew(pos, true, v)
		}
	case less(t.key(pos), k):
		if pos == t.header.right {
			return t.insertNew(pos, false, v)
		}
		if after := increment(pos); less(k, t.key(after)) {
			if pos.right == nil {
				return t.insertNew(pos, false, v)
			}
			return t.insertNew(after, true, v)
		}
	default:
		return t.iterAt(pos), false, nil
	}
	return t.InsertUnique(v)
}

// InsertEqualHint inserts v like InsertEqual, using hint as a suggestion
// where v will end up. If v is inserted immediately before or after hint,
// insertion takes amortized constant time.
func (t *Tree[K, V]) InsertEqualHint(hint Iterator[K, V], v V) (Iterator[K, V], error) {
	k := t.cfg.KeyOf(v)
	less := t.cfg.Less
	pos := hint.node
	var p *Node[V]
	var insertLeft bool
	switch {
	case pos == nil || pos.header:
		if t.count > 0 && !less(k, t.key(t.header.right)) {
			p = t.header.right
		} else {
			return t.InsertEqual(v)
		}
	case !less(t.key(pos), k): // k orders before or with pos
		if pos == t.header.left {
			p, insertLeft = pos, true
		} else if before := decrement(pos); !less(k, t.key(before)) {
			if before.right == nil {
				p = before
			} else {
				p, insertLeft = pos, true
			}
		}
	default:
		if pos == t.header.right {
			p = pos
		} else if after := increment(pos); !less(t.key(after), k) {
			if pos.right == nil {
				p = pos
			} else {
				p, insertLeft = after, true
			}
		}
	}
	if p == nil {
		return t.insertEqualLower(v)
	}
	z, err := t.link(p, insertLeft, v)
	if err != nil {
		return t.End(), err
	}
	return t.iterAt(z), nil
}

// InsertUniqueRange inserts the values of [first, last) into t with
// unique-key semantics. It returns the number of values inserted. Insertion
// stops at the first allocation failure.
func InsertUniqueRange[K, V any, I iterator.Readable[I, V]](t *Tree[K, V], first, last I) (int, error) {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		_, inserted, err := t.InsertUniqueHint(t.End(), first.Value())
		if err != nil {
			return n, err
		}
		if inserted {
			n++
		}
	}
	return n, nil
}

// InsertEqualRange inserts all values of [first, last) into t with
// multi-key semantics. It returns the number of values inserted. Insertion
// stops at the first allocation failure.
func InsertEqualRange[K, V any, I iterator.Readable[I, V]](t *Tree[K, V], first, last I) (int, error) {
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		if _, err := t.InsertEqualHint(t.End(), first.Value()); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// --- Removal ---------------------------------------------------------------

// release destroys an unlinked node in place and hands its storage back to
// the allocator.
func (t *Tree[K, V]) release(n *Node[V]) {
	n.parent, n.left, n.right = nil, nil, nil
	t.cfg.Allocator.Release(n)
}

// Erase removes the value at it and returns an iterator to its successor.
// Erasing End is a no-op returning End. it must belong to t.
//
// Only iterators to the erased value are invalidated.
func (t *Tree[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	z := it.node
	if z == nil || z.header {
		return t.End()
	}
	assertThat(z.parent != nil, "rbtree: erase of unlinked node")
	next := increment(z)
	y := eraseAndRebalance(z, &t.header)
	t.release(y)
	t.count--
	return t.iterAt(next)
}

// EraseRange removes the values of [first, last) and returns last.
func (t *Tree[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	if first.node == t.header.left && last.node == &t.header {
		t.Clear()
		return t.End()
	}
	for !first.Equal(last) {
		first = t.Erase(first)
	}
	return last
}

// EraseKey removes all values with keys equivalent to k and returns the
// number of values removed.
func (t *Tree[K, V]) EraseKey(k K) int {
	first, last := t.EqualRange(k)
	n := iterator.Distance(first, last)
	t.EraseRange(first, last)
	return n
}

// Clear removes all values.
func (t *Tree[K, V]) Clear() {
	n := t.count
	t.eraseSubtree(t.root())
	t.reset()
	tracer().Debugf("rbtree: cleared %d nodes", n)
}

// eraseSubtree releases x and all of its descendants without rebalancing.
func (t *Tree[K, V]) eraseSubtree(x *Node[V]) {
	for x != nil {
		t.eraseSubtree(x.right)
		y := x.left
		t.release(x)
		x = y
	}
}

// --- Whole-tree operations -------------------------------------------------

// Clone returns a structural copy of the tree, sharing configuration and
// allocator. Node colors are copied, so the clone is balanced exactly like t.
//
// If node storage is exhausted, no clone is created and all storage acquired
// for it is released.
func (t *Tree[K, V]) Clone() (*Tree[K, V], error) {
	c := &Tree[K, V]{cfg: t.cfg}
	c.reset()
	if t.root() == nil {
		return c, nil
	}
	root, err := c.copySubtree(t.root(), &c.header)
	if err != nil {
		return nil, err
	}
	c.header.parent = root
	c.header.left = minimum(root)
	c.header.right = maximum(root)
	c.count = t.count
	tracer().Debugf("rbtree: cloned tree of %d nodes", c.count)
	return c, nil
}

func (t *Tree[K, V]) cloneNode(x *Node[V]) (*Node[V], error) {
	n, err := t.cfg.Allocator.Allocate()
	if err != nil {
		return nil, err
	}
	n.value = x.value
	n.color = x.color
	n.header = false
	n.left, n.right = nil, nil
	return n, nil
}

// copySubtree copies the subtree at x, attaching the copy to parent p.
// Recursion follows right links only, left spines are copied iteratively.
func (t *Tree[K, V]) copySubtree(x, p *Node[V]) (*Node[V], error) {
	top, err := t.cloneNode(x)
	if err != nil {
		return nil, err
	}
	top.parent = p
	if x.right != nil {
		if top.right, err = t.copySubtree(x.right, top); err != nil {
			t.eraseSubtree(top)
			return nil, err
		}
	}
	p = top
	for x = x.left; x != nil; x = x.left {
		y, err := t.cloneNode(x)
		if err != nil {
			t.eraseSubtree(top)
			return nil, err
		}
		p.left = y
		y.parent = p
		if x.right != nil {
			if y.right, err = t.copySubtree(x.right, y); err != nil {
				t.eraseSubtree(top)
				return nil, err
			}
		}
		p = y
	}
	return top, nil
}

// Swap exchanges the contents and configuration of t and other in constant
// time. Iterators to values stay valid and now belong to the other tree;
// End iterators are invalidated.
func (t *Tree[K, V]) Swap(other *Tree[K, V]) {
	if t == other {
		return
	}
	root, leftmost, rightmost, count := t.header.parent, t.header.left, t.header.right, t.count
	t.adopt(other.header.parent, other.header.left, other.header.right, other.count)
	other.adopt(root, leftmost, rightmost, count)
	t.cfg, other.cfg = other.cfg, t.cfg
	tracer().Debugf("rbtree: swapped trees of %d and %d nodes", t.count, other.count)
}

func (t *Tree[K, V]) adopt(root, leftmost, rightmost *Node[V], count int) {
	if root == nil {
		t.reset()
		return
	}
	t.header.parent = root
	root.parent = &t.header
	t.header.left = leftmost
	t.header.right = rightmost
	t.count = count
}
