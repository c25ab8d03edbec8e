package rbtree

// TreeError is an error type for the rbtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("rbtree: invalid configuration")

// ErrResourceExhausted is returned when an allocator cannot supply storage
// for a new node. The tree is left unchanged.
const ErrResourceExhausted = TreeError("rbtree: node storage exhausted")

// ErrInvariant is flagged by Check whenever a structural tree invariant does
// not hold.
const ErrInvariant = TreeError("rbtree: invariant violated")
