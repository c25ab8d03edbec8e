package iterator

import (
	"errors"
	"fmt"
)

// ErrNegativeAdvance signals an attempt to move a forward-only iterator backwards.
var ErrNegativeAdvance = errors.New("iterator: negative advance on forward-only iterator")

// Distance returns the number of steps from first to last. last must be
// reachable from first.
//
// Random access iterators answer in constant time, all others are stepped.
func Distance[I Forward[I]](first, last I) int {
	if CategoryOf(first) == RandomAccessCategory {
		if ra, ok := any(last).(RandomAccess[I]); ok {
			return ra.Diff(first)
		}
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns the iterator n positions away from it. A negative n steps
// backwards, which requires a bidirectional iterator.
func Advance[I Forward[I]](it I, n int) (I, error) {
	switch CategoryOf(it) {
	case RandomAccessCategory:
		if ra, ok := any(it).(RandomAccess[I]); ok {
			return ra.Offset(n), nil
		}
	case BidirectionalCategory:
		if bi, ok := any(it).(Bidirectional[I]); ok && n < 0 {
			for ; n < 0; n++ {
				it = bi.Prev()
				bi = any(it).(Bidirectional[I])
			}
			return it, nil
		}
	}
	if n < 0 {
		return it, fmt.Errorf("%w: n=%d", ErrNegativeAdvance, n)
	}
	for ; n > 0; n-- {
		it = it.Next()
	}
	return it, nil
}
