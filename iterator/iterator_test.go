package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cell is a singly linked list cell; listIter is a forward-only iterator.
type cell struct {
	v    int
	next *cell
}

type listIter struct{ c *cell }

func (it listIter) Next() listIter        { return listIter{it.c.next} }
func (it listIter) Equal(o listIter) bool { return it.c == o.c }
func (it listIter) Value() int            { return it.c.v }
func (it listIter) Category() Category    { return ForwardCategory }

func makeList(vs ...int) (first, last listIter) {
	var head *cell
	for i := len(vs) - 1; i >= 0; i-- {
		head = &cell{v: vs[i], next: head}
	}
	return listIter{head}, listIter{}
}

// countingIter is an untagged bidirectional iterator over an index range.
type countingIter struct {
	pos   int
	steps *int
}

func (it countingIter) Next() countingIter {
	*it.steps++
	return countingIter{it.pos + 1, it.steps}
}
func (it countingIter) Prev() countingIter {
	*it.steps++
	return countingIter{it.pos - 1, it.steps}
}
func (it countingIter) Equal(o countingIter) bool { return it.pos == o.pos }

func TestCategoryOf(t *testing.T) {
	first, _ := makeList(1, 2)
	assert.Equal(t, ForwardCategory, CategoryOf(first))
	steps := 0
	assert.Equal(t, BidirectionalCategory, CategoryOf(countingIter{steps: &steps}))
	assert.Equal(t, RandomAccessCategory, CategoryOf(Begin([]int{1})))
	assert.Equal(t, "bidirectional", BidirectionalCategory.String())
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestDistanceForward(t *testing.T) {
	first, last := makeList(5, 6, 7, 8)
	assert.Equal(t, 4, Distance(first, last))
	assert.Equal(t, 0, Distance(last, last))
}

func TestDistanceRandomAccessIsConstant(t *testing.T) {
	s := make([]string, 1000)
	assert.Equal(t, 1000, Distance(Begin(s), End(s)))
	assert.Equal(t, 0, Distance(End(s), End(s)))
}

func TestDistanceBidirectionalSteps(t *testing.T) {
	steps := 0
	first := countingIter{pos: 3, steps: &steps}
	last := countingIter{pos: 10, steps: &steps}
	assert.Equal(t, 7, Distance(first, last))
	assert.Equal(t, 7, steps)
}

func TestAdvance(t *testing.T) {
	s := []int{10, 20, 30, 40}
	it, err := Advance(Begin(s), 3)
	require.NoError(t, err)
	assert.Equal(t, 40, it.Value())
	it, err = Advance(it, -2)
	require.NoError(t, err)
	assert.Equal(t, 20, it.Value())

	steps := 0
	bi, err := Advance(countingIter{pos: 0, steps: &steps}, -4)
	require.NoError(t, err)
	assert.Equal(t, -4, bi.pos)
	assert.Equal(t, 4, steps)

	first, _ := makeList(1, 2, 3)
	fw, err := Advance(first, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, fw.Value())
	_, err = Advance(fw, -1)
	assert.ErrorIs(t, err, ErrNegativeAdvance)
}

func TestSliceIterator(t *testing.T) {
	s := []int{1, 2, 3}
	var got []int
	for it := Begin(s); !it.Equal(End(s)); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, s, got)
	last := End(s).Prev()
	assert.Equal(t, 3, last.Value())
	assert.Equal(t, -3, Begin(s).Diff(End(s)))
}
