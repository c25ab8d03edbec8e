package rbtree

import (
	"fmt"
	"sync"

	"github.com/npillmayer/rbtree/typeclass"
)

// Allocator supplies and reclaims node storage for a tree.
//
// Allocate returns storage for one node. The tree constructs the node in
// place, overwriting links, color and payload. Release is called after the
// tree has unlinked a node; the storage must not be handed out again before
// Release returned it.
type Allocator[V any] interface {
	Allocate() (*Node[V], error)
	Release(*Node[V])
}

// HeapAllocator allocates every node from the Go heap and leaves reclamation
// to the garbage collector.
type HeapAllocator[V any] struct{}

func (HeapAllocator[V]) Allocate() (*Node[V], error) {
	return new(Node[V]), nil
}

func (HeapAllocator[V]) Release(*Node[V]) {}

// --- Pooling ---------------------------------------------------------------

// PoolAllocator recycles released nodes through a sync.Pool. All pool
// allocators for the same payload type share one pool.
type PoolAllocator[V any] struct {
	pool *sync.Pool
	// arithmetic payloads hold no references and need not be cleared
	// before storage goes back to the pool
	arithmetic bool
}

var nodePools sync.Map

func getNodePool[V any]() *sync.Pool {
	var nilNode *Node[V]
	p, ok := nodePools.Load(nilNode)
	if !ok {
		p, _ = nodePools.LoadOrStore(nilNode, &sync.Pool{
			New: func() interface{} {
				return new(Node[V])
			},
		})
	}
	return p.(*sync.Pool)
}

// NewPoolAllocator returns an allocator recycling node storage.
func NewPoolAllocator[V any]() *PoolAllocator[V] {
	return &PoolAllocator[V]{
		pool:       getNodePool[V](),
		arithmetic: typeclass.IsArithmetic[V](),
	}
}

func (pa *PoolAllocator[V]) Allocate() (*Node[V], error) {
	return pa.pool.Get().(*Node[V]), nil
}

func (pa *PoolAllocator[V]) Release(n *Node[V]) {
	n.parent, n.left, n.right = nil, nil, nil
	if !pa.arithmetic {
		var zero V
		n.value = zero
	}
	pa.pool.Put(n)
}

// --- Bounded allocation ----------------------------------------------------

// BoundedAllocator limits the number of live nodes handed out by another
// allocator. When the limit is reached, Allocate fails with
// ErrResourceExhausted.
//
// A bounded allocator may be shared between trees, e.g., between a tree and
// its clones, and then limits their combined size.
type BoundedAllocator[V any] struct {
	inner Allocator[V]
	limit int
	live  int
}

// NewBoundedAllocator wraps inner, allowing at most limit live nodes. If
// inner is nil, nodes are allocated from the heap.
func NewBoundedAllocator[V any](inner Allocator[V], limit int) *BoundedAllocator[V] {
	if inner == nil {
		inner = HeapAllocator[V]{}
	}
	return &BoundedAllocator[V]{inner: inner, limit: limit}
}

func (ba *BoundedAllocator[V]) Allocate() (*Node[V], error) {
	if ba.live >= ba.limit {
		return nil, fmt.Errorf("%w: limit of %d nodes reached", ErrResourceExhausted, ba.limit)
	}
	n, err := ba.inner.Allocate()
	if err != nil {
		return nil, err
	}
	ba.live++
	return n, nil
}

func (ba *BoundedAllocator[V]) Release(n *Node[V]) {
	ba.live--
	ba.inner.Release(n)
}

// Live returns the number of nodes currently handed out.
func (ba *BoundedAllocator[V]) Live() int {
	return ba.live
}
