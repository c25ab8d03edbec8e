package iterator

import "fmt"

// Category tags an iterator with its traversal capability. Categories are
// ordered: every category supports the operations of the categories below it.
type Category int

const (
	// InputCategory iterators may be traversed once, forward only.
	InputCategory Category = iota
	// ForwardCategory iterators may be traversed repeatedly, forward only.
	ForwardCategory
	// BidirectionalCategory iterators may step forward and backward.
	BidirectionalCategory
	// RandomAccessCategory iterators may jump by arbitrary offsets in constant time.
	RandomAccessCategory
)

func (c Category) String() string {
	switch c {
	case InputCategory:
		return "input"
	case ForwardCategory:
		return "forward"
	case BidirectionalCategory:
		return "bidirectional"
	case RandomAccessCategory:
		return "random-access"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Forward is an iterator which may be stepped forward and compared for
// position equality.
type Forward[I any] interface {
	Next() I
	Equal(I) bool
}

// Bidirectional is a Forward iterator which may step backward.
type Bidirectional[I any] interface {
	Forward[I]
	Prev() I
}

// RandomAccess is a Bidirectional iterator which may jump by n positions and
// compute the signed distance to another iterator in constant time.
type RandomAccess[I any] interface {
	Bidirectional[I]
	Offset(n int) I
	Diff(other I) int
}

// Readable is a Forward iterator dereferencing to values of type V.
type Readable[I, V any] interface {
	Forward[I]
	Value() V
}

// Tagged iterators state their category explicitly. An explicit tag takes
// precedence over the category derived from the iterator's method set.
type Tagged interface {
	Category() Category
}

// CategoryOf returns the category of an iterator.
func CategoryOf[I Forward[I]](it I) Category {
	if tagged, ok := any(it).(Tagged); ok {
		return tagged.Category()
	}
	switch any(it).(type) {
	case RandomAccess[I]:
		return RandomAccessCategory
	case Bidirectional[I]:
		return BidirectionalCategory
	}
	return ForwardCategory
}
