package denseset

import "iter"

// Insert adds value to the set if no equivalent element is present. It
// returns the element's position and whether an insertion happened; when the
// value was already present, the position is the existing element's and the
// set is untouched.
func (s *Set[T]) Insert(value T) (pos int, inserted bool) {
	pos = s.LowerBound(value)
	if pos < len(s.buf) && s.compare(value, s.buf[pos]) == 0 {
		return pos, false
	}
	s.spliceAt(pos, value)
	return pos, true
}

// InsertHint inserts like Insert but uses hint, a caller-supplied position
// near where value likely belongs, to narrow the binary search. A perfect
// hint makes appends O(1) amortized; a wrong hint only costs the search that
// Insert would have done anyway. The final sequence and the return values are
// identical to Insert for every hint, including out-of-range hints, which are
// clamped to [0, Len()].
func (s *Set[T]) InsertHint(hint int, value T) (pos int, inserted bool) {
	if len(s.buf) == 0 {
		s.spliceAt(0, value)
		return 0, true
	}

	if hint < 0 {
		hint = 0
	} else if hint > len(s.buf) {
		hint = len(s.buf)
	}

	if hint == len(s.buf) {
		// Fast append when the hint is the end and value belongs there.
		if s.compare(s.buf[len(s.buf)-1], value) < 0 {
			s.spliceAt(len(s.buf), value)
			return len(s.buf) - 1, true
		}
		return s.Insert(value)
	}

	if s.compare(value, s.buf[hint]) < 0 {
		pos = s.lowerBoundIn(0, hint, value)
	} else {
		pos = s.lowerBoundIn(hint, len(s.buf), value)
	}

	if pos < len(s.buf) && s.compare(value, s.buf[pos]) == 0 {
		return pos, false
	}
	s.spliceAt(pos, value)
	return pos, true
}

// InsertSlice inserts every value, silently skipping duplicates within the
// input and values already present. Capacity is reserved once for the worst
// case.
func (s *Set[T]) InsertSlice(values ...T) {
	if len(values) == 0 {
		return
	}
	s.grow(len(s.buf) + len(values))
	for _, v := range values {
		s.Insert(v)
	}
}

// InsertSeq inserts every value produced by seq, silently skipping
// duplicates.
func (s *Set[T]) InsertSeq(seq iter.Seq[T]) {
	for v := range seq {
		s.Insert(v)
	}
}

// Delete removes the element equivalent to key. It returns false without
// touching the set when key is absent.
func (s *Set[T]) Delete(key T) bool {
	pos := s.LowerBound(key)
	if pos == len(s.buf) || s.compare(key, s.buf[pos]) != 0 {
		return false
	}
	s.removeRange(pos, pos+1)
	return true
}

// DeleteAt removes the element at position pos. The element that followed it
// now lives at the same position. Panics if pos is out of range.
func (s *Set[T]) DeleteAt(pos int) {
	_ = s.buf[pos]
	s.removeRange(pos, pos+1)
}

// DeleteRange removes the half-open position range [lo, hi). The element that
// followed the range now lives at position lo. Panics if the range is not
// valid for the set.
func (s *Set[T]) DeleteRange(lo, hi int) {
	_ = s.buf[lo:hi]
	s.removeRange(lo, hi)
}

// Clear removes all elements. The comparator, allocator and buffer capacity
// are retained.
func (s *Set[T]) Clear() {
	var zero T
	for i := range s.buf {
		s.buf[i] = zero
	}
	s.buf = s.buf[:0]
}

// spliceAt opens a slot at pos and writes value into it, growing the buffer
// when it is full.
func (s *Set[T]) spliceAt(pos int, value T) {
	if len(s.buf) == cap(s.buf) {
		s.grow(len(s.buf) + 1)
	}
	s.buf = s.buf[:len(s.buf)+1]
	copy(s.buf[pos+1:], s.buf[pos:])
	s.buf[pos] = value
}

// removeRange closes the gap [lo, hi) and zeroes the vacated tail so the
// garbage collector can reclaim referenced values.
func (s *Set[T]) removeRange(lo, hi int) {
	n := copy(s.buf[lo:], s.buf[hi:])
	var zero T
	for i := lo + n; i < len(s.buf); i++ {
		s.buf[i] = zero
	}
	s.buf = s.buf[:len(s.buf)-(hi-lo)]
}
