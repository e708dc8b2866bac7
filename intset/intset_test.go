package intset_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/hupe1980/denseset/intset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	s := intset.New()
	assert.True(t, s.Empty())

	assert.True(t, s.Insert(7))
	assert.True(t, s.Insert(1))
	assert.False(t, s.Insert(7))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(2))
}

func TestDelete(t *testing.T) {
	s := intset.Of(1, 2, 3)

	assert.True(t, s.Delete(2))
	assert.False(t, s.Delete(2))
	assert.Equal(t, []uint32{1, 3}, s.Slice())
}

func TestInsertRange(t *testing.T) {
	s := intset.New()
	s.InsertRange(10, 15)
	assert.Equal(t, []uint32{10, 11, 12, 13, 14}, s.Slice())

	s.InsertRange(20, 20) // empty interval is a no-op
	assert.Equal(t, 5, s.Len())
}

func TestMinMaxRank(t *testing.T) {
	s := intset.Of(5, 100, 7)

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, uint32(5), lo)

	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, uint32(100), hi)

	assert.Equal(t, 2, s.Rank(7))
	assert.Equal(t, 0, s.Rank(4))

	empty := intset.New()
	_, ok = empty.Min()
	assert.False(t, ok)
	_, ok = empty.Max()
	assert.False(t, ok)
}

func TestValuesAscending(t *testing.T) {
	s := intset.Of(9, 1, 5, 3)

	var got []uint32
	for k := range s.Values() {
		got = append(got, k)
	}
	assert.Equal(t, []uint32{1, 3, 5, 9}, got)
	assert.True(t, slices.IsSorted(got))
}

func TestValuesEarlyStop(t *testing.T) {
	s := intset.Of(1, 2, 3, 4)

	var got []uint32
	for k := range s.Values() {
		got = append(got, k)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, got)
}

func TestCloneIsIndependent(t *testing.T) {
	s := intset.Of(1, 2)
	c := s.Clone()

	c.Insert(3)
	assert.False(t, s.Contains(3))
	assert.True(t, c.Contains(3))
}

func TestEqual(t *testing.T) {
	assert.True(t, intset.Of(1, 2, 3).Equal(intset.Of(3, 2, 1)))
	assert.False(t, intset.Of(1, 2).Equal(intset.Of(1, 2, 3)))
	assert.True(t, intset.New().Equal(intset.New()))
}

func TestSetAlgebra(t *testing.T) {
	t.Run("union", func(t *testing.T) {
		s := intset.Of(1, 2)
		s.Union(intset.Of(2, 3))
		assert.Equal(t, []uint32{1, 2, 3}, s.Slice())
	})

	t.Run("intersect", func(t *testing.T) {
		s := intset.Of(1, 2, 3)
		s.Intersect(intset.Of(2, 3, 4))
		assert.Equal(t, []uint32{2, 3}, s.Slice())
	})

	t.Run("difference", func(t *testing.T) {
		s := intset.Of(1, 2, 3)
		s.Difference(intset.Of(2))
		assert.Equal(t, []uint32{1, 3}, s.Slice())
	})

	t.Run("intersects", func(t *testing.T) {
		assert.True(t, intset.Of(1, 2).Intersects(intset.Of(2, 3)))
		assert.False(t, intset.Of(1).Intersects(intset.Of(2)))
	})
}

func TestClear(t *testing.T) {
	s := intset.Of(1, 2, 3)
	s.Clear()
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
}

func TestWriteToLeavesReceiverUntouched(t *testing.T) {
	s := intset.New()
	s.InsertRange(0, 10000) // run-compressible, so optimization would shrink it

	size := s.SizeInBytes()

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	assert.Equal(t, size, s.SizeInBytes())
	assert.Equal(t, 10000, s.Len())
}

func TestSerializationRoundTrip(t *testing.T) {
	src := intset.Of(1, 1000, 100000, 1<<30)
	src.InsertRange(500, 600)

	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	require.NoError(t, err)

	got := intset.New()
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	assert.True(t, src.Equal(got))
}
