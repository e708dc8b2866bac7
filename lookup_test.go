package denseset_test

import (
	"testing"

	"github.com/hupe1980/denseset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	s := denseset.Of(1, 3, 5, 7, 9)

	t.Run("lower bound", func(t *testing.T) {
		assert.Equal(t, 0, s.LowerBound(0))
		assert.Equal(t, 2, s.LowerBound(4))
		assert.Equal(t, 2, s.LowerBound(5))
		assert.Equal(t, s.Len(), s.LowerBound(10))
	})

	t.Run("upper bound", func(t *testing.T) {
		assert.Equal(t, 0, s.UpperBound(0))
		assert.Equal(t, 3, s.UpperBound(5))
		assert.Equal(t, s.Len(), s.UpperBound(9))
	})

	t.Run("equal range present", func(t *testing.T) {
		lo, hi := s.EqualRange(5)
		assert.Equal(t, 2, lo)
		assert.Equal(t, 3, hi)
		assert.Equal(t, 5, s.At(lo))
		assert.Equal(t, 7, s.At(hi))
	})

	t.Run("equal range absent", func(t *testing.T) {
		neg := denseset.Of(2, 4, 6, 7, -9)
		require.Equal(t, []int{-9, 2, 4, 6, 7}, neg.Slice())

		lo, hi := neg.EqualRange(11)
		assert.Equal(t, lo, hi)
		assert.Equal(t, neg.Len(), lo)

		lo, hi = neg.EqualRange(5)
		assert.Equal(t, lo, hi)
		assert.Equal(t, neg.LowerBound(5), lo)
	})

	t.Run("find", func(t *testing.T) {
		pos, ok := s.Find(7)
		require.True(t, ok)
		assert.Equal(t, 7, s.At(pos))

		pos, ok = s.Find(4)
		assert.False(t, ok)
		assert.Equal(t, s.Len(), pos)
	})

	t.Run("contains and count", func(t *testing.T) {
		assert.True(t, s.Contains(9))
		assert.False(t, s.Contains(8))
		assert.Equal(t, 1, s.Count(9))
		assert.Equal(t, 0, s.Count(8))
	})

	t.Run("find coheres with lower bound", func(t *testing.T) {
		for key := -1; key <= 10; key++ {
			pos, ok := s.Find(key)
			lb := s.LowerBound(key)
			if ok {
				assert.Equal(t, lb, pos, "key %d", key)
				assert.Equal(t, key, s.At(lb), "key %d", key)
			} else {
				assert.True(t, lb == s.Len() || s.At(lb) != key, "key %d", key)
			}
		}
	})

	t.Run("empty set", func(t *testing.T) {
		e := denseset.New[int]()
		assert.Equal(t, 0, e.LowerBound(1))
		assert.Equal(t, 0, e.UpperBound(1))
		assert.False(t, e.Contains(1))
	})
}
