package iterator

// Slice is a random access iterator over a Go slice. Two slice iterators are
// equal if they point to the same index; comparing iterators of different
// slices is meaningless.
type Slice[V any] struct {
	s []V
	i int
}

// Begin returns an iterator to the first element of s.
func Begin[V any](s []V) Slice[V] {
	return Slice[V]{s: s}
}

// End returns an iterator one past the last element of s.
func End[V any](s []V) Slice[V] {
	return Slice[V]{s: s, i: len(s)}
}

func (it Slice[V]) Next() Slice[V] {
	it.i++
	return it
}

func (it Slice[V]) Prev() Slice[V] {
	it.i--
	return it
}

func (it Slice[V]) Offset(n int) Slice[V] {
	it.i += n
	return it
}

func (it Slice[V]) Diff(other Slice[V]) int {
	return it.i - other.i
}

func (it Slice[V]) Equal(other Slice[V]) bool {
	return it.i == other.i
}

// Value returns the element at the iterator's position. It is illegal to call
// Value on an end iterator.
func (it Slice[V]) Value() V {
	return it.s[it.i]
}

// Category returns RandomAccessCategory.
func (it Slice[V]) Category() Category {
	return RandomAccessCategory
}
