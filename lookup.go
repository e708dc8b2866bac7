package denseset

// LowerBound returns the first position whose element does not order before
// key, or Len() if there is none. O(log n).
func (s *Set[T]) LowerBound(key T) int {
	return s.lowerBoundIn(0, len(s.buf), key)
}

// UpperBound returns the first position whose element orders after key, or
// Len() if there is none. O(log n).
func (s *Set[T]) UpperBound(key T) int {
	return s.upperBoundIn(0, len(s.buf), key)
}

// EqualRange returns the half-open position range [lo, hi) of elements
// equivalent to key. Because the set holds no duplicates the range spans at
// most one element; when key is absent lo == hi == LowerBound(key).
func (s *Set[T]) EqualRange(key T) (lo, hi int) {
	lo = s.LowerBound(key)
	hi = lo
	if hi < len(s.buf) && s.compare(key, s.buf[hi]) == 0 {
		hi++
	}
	return lo, hi
}

// Find returns the position of the element equivalent to key. ok is false
// when key is absent, in which case the position is Len().
func (s *Set[T]) Find(key T) (pos int, ok bool) {
	pos = s.LowerBound(key)
	if pos < len(s.buf) && s.compare(key, s.buf[pos]) == 0 {
		return pos, true
	}
	return len(s.buf), false
}

// Contains reports whether key is in the set.
func (s *Set[T]) Contains(key T) bool {
	_, ok := s.Find(key)
	return ok
}

// Count returns 1 if key is in the set and 0 otherwise.
func (s *Set[T]) Count(key T) int {
	if s.Contains(key) {
		return 1
	}
	return 0
}

// lowerBoundIn binary-searches [lo, hi) for the first position whose element
// does not order before key.
func (s *Set[T]) lowerBoundIn(lo, hi int, key T) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.compare(s.buf[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBoundIn binary-searches [lo, hi) for the first position whose element
// orders after key.
func (s *Set[T]) upperBoundIn(lo, hi int, key T) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.compare(key, s.buf[mid]) < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
