package slicefn_test

import (
	"cmp"
	"testing"

	"github.com/on-the-ground/dash/slicefn"

	"github.com/stretchr/testify/assert"
)

func TestLast(t *testing.T) {
	v, ok := slicefn.Last([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = slicefn.Last([]int{})
	assert.False(t, ok)
	_, ok = slicefn.Last[string](nil)
	assert.False(t, ok)
}

func TestIncludes(t *testing.T) {
	assert.True(t, slicefn.Includes([]string{"a", "b"}, "b"))
	assert.False(t, slicefn.Includes([]string{"a", "b"}, "c"))
	assert.False(t, slicefn.Includes[int](nil, 1))
}

func TestWithout(t *testing.T) {
	assert.Equal(t, []int{1, 3}, slicefn.Without([]int{1, 2, 3, 2}, 2))
	assert.Equal(t, []int{3}, slicefn.Without([]int{1, 2, 3}, 1, 2))
	assert.Empty(t, slicefn.Without[int](nil, 1))
}

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, slicefn.Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Nil(t, slicefn.Chunk([]int{1}, 0))
	assert.Nil(t, slicefn.Chunk([]int{1}, -1))
	assert.Nil(t, slicefn.Chunk[int](nil, 2))
}

func TestChunkRoundTrip(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7}
	for size := 1; size <= len(s)+1; size++ {
		chunks := slicefn.Chunk(s, size)
		assert.Equal(t, s, slicefn.Flatten(chunks))
		for i, c := range chunks[:len(chunks)-1] {
			assert.Len(t, c, size, "chunk %d", i)
		}
	}
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slicefn.Unique([]int{1, 2, 1, 3, 2}))
	assert.Empty(t, slicefn.Unique[int](nil))
}

func TestUniqueIdempotent(t *testing.T) {
	s := []string{"a", "b", "a", "c", "c", "b"}
	once := slicefn.Unique(s)
	assert.Equal(t, once, slicefn.Unique(once))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, slicefn.Flatten([][]int{{1}, nil, {2, 3}}))
	assert.Empty(t, slicefn.Flatten[int](nil))
}

func TestSortedIndex(t *testing.T) {
	s := []int{10, 20, 30}
	assert.Equal(t, 0, slicefn.SortedIndex(s, 5, cmp.Compare))
	assert.Equal(t, 1, slicefn.SortedIndex(s, 20, cmp.Compare))
	assert.Equal(t, 3, slicefn.SortedIndex(s, 40, cmp.Compare))
}

func TestSortedInsert(t *testing.T) {
	s := []int{}
	for _, v := range []int{30, 10, 20, 20, 5} {
		s = slicefn.SortedInsert(s, v, cmp.Compare)
	}
	assert.Equal(t, []int{5, 10, 20, 20, 30}, s)
}
