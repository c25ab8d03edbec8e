package rbtree

import (
	"cmp"
	"fmt"
)

// Config configures a red-black tree.
type Config[K, V any] struct {
	// Less is the strict weak ordering of keys. It is the only means by
	// which the tree compares keys.
	Less func(a, b K) bool
	// KeyOf extracts the ordering key from a stored value.
	KeyOf func(v V) K
	// Allocator supplies and reclaims node storage. Defaults to HeapAllocator.
	Allocator Allocator[V]
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	if cfg.Allocator == nil {
		cfg.Allocator = HeapAllocator[V]{}
	}
	return cfg
}

func (cfg Config[K, V]) validate() error {
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.KeyOf == nil {
		return fmt.Errorf("%w: key function is required", ErrInvalidConfig)
	}
	return nil
}

// Pair is the value type of map-like trees.
type Pair[K, M any] struct {
	Key   K
	Value M
}

// Identity returns a key function for set-like trees, where a value is its
// own key.
func Identity[K any]() func(K) K {
	return func(k K) K { return k }
}

// Select1st returns a key function for map-like trees storing pairs.
func Select1st[K, M any]() func(Pair[K, M]) K {
	return func(p Pair[K, M]) K { return p.Key }
}

// LessFromCompare adapts a three-way comparison function (as used by
// package slices and cmp) to a strict weak ordering.
func LessFromCompare[K any](compare func(a, b K) int) func(a, b K) bool {
	return func(a, b K) bool { return compare(a, b) < 0 }
}

// NaturalLess is the natural ordering of an ordered key type.
func NaturalLess[K cmp.Ordered](a, b K) bool {
	return cmp.Less(a, b)
}
