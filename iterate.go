package denseset

import "iter"

// At returns the element at position pos in ascending order.
// Panics if pos is out of range.
func (s *Set[T]) At(pos int) T {
	return s.buf[pos]
}

// Slice returns the elements in ascending order as a fresh slice.
func (s *Set[T]) Slice() []T {
	out := make([]T, len(s.buf))
	copy(out, s.buf)
	return out
}

// AppendTo appends the elements in ascending order to dst and returns the
// extended slice.
func (s *Set[T]) AppendTo(dst []T) []T {
	return append(dst, s.buf...)
}

// All iterates position/element pairs in ascending order. The set must not be
// mutated during iteration.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.buf {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates elements in ascending order. The set must not be mutated
// during iteration.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.buf {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward iterates position/element pairs in descending order. The set must
// not be mutated during iteration.
func (s *Set[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(s.buf) - 1; i >= 0; i-- {
			if !yield(i, s.buf[i]) {
				return
			}
		}
	}
}

// Min returns the smallest element. ok is false when the set is empty.
func (s *Set[T]) Min() (v T, ok bool) {
	if len(s.buf) == 0 {
		return v, false
	}
	return s.buf[0], true
}

// Max returns the largest element. ok is false when the set is empty.
func (s *Set[T]) Max() (v T, ok bool) {
	if len(s.buf) == 0 {
		return v, false
	}
	return s.buf[len(s.buf)-1], true
}
