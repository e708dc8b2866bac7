package denseset

import (
	"cmp"
	"iter"
)

// Set is an ordered set stored contiguously in one sorted, duplicate-free
// buffer. The zero value is not usable; construct sets with New, NewFunc, Of,
// FromSlice, FromSliceFunc, Collect or CollectFunc.
//
// The buffer is owned exclusively by the Set: it is only ever mutated through
// the Set's own methods and only released through the Set's allocator.
type Set[T any] struct {
	buf     []T
	compare CompareFunc[T]
	alloc   Allocator[T]
}

// New creates an empty set ordered by the natural ordering of T.
func New[T cmp.Ordered](optFns ...func(*Options[T])) *Set[T] {
	return NewFunc(cmp.Compare[T], optFns...)
}

// NewFunc creates an empty set ordered by compare.
func NewFunc[T any](compare CompareFunc[T], optFns ...func(*Options[T])) *Set[T] {
	opts := applyOptions(optFns)

	alloc := opts.Allocator
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}

	s := &Set[T]{
		compare: compare,
		alloc:   alloc,
	}
	if opts.Capacity > 0 {
		s.buf = alloc.Make(0, opts.Capacity)
	}

	return s
}

// Of creates a set from the given values, deduplicating as it goes.
func Of[T cmp.Ordered](values ...T) *Set[T] {
	return FromSlice(values)
}

// FromSlice creates a set from a slice, using the natural ordering of T.
// The input may be unsorted and contain duplicates.
func FromSlice[T cmp.Ordered](values []T, optFns ...func(*Options[T])) *Set[T] {
	return FromSliceFunc(cmp.Compare[T], values, optFns...)
}

// FromSliceFunc creates a set from a slice using compare.
// The input may be unsorted and contain duplicates.
func FromSliceFunc[T any](compare CompareFunc[T], values []T, optFns ...func(*Options[T])) *Set[T] {
	s := NewFunc(compare, optFns...)
	s.InsertSlice(values...)
	return s
}

// Collect creates a set from a sequence, using the natural ordering of T.
func Collect[T cmp.Ordered](seq iter.Seq[T], optFns ...func(*Options[T])) *Set[T] {
	return CollectFunc(cmp.Compare[T], seq, optFns...)
}

// CollectFunc creates a set from a sequence using compare.
func CollectFunc[T any](compare CompareFunc[T], seq iter.Seq[T], optFns ...func(*Options[T])) *Set[T] {
	s := NewFunc(compare, optFns...)
	s.InsertSeq(seq)
	return s
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return len(s.buf) }

// Empty reports whether the set has no elements.
func (s *Set[T]) Empty() bool { return len(s.buf) == 0 }

// Cap returns the current buffer capacity.
func (s *Set[T]) Cap() int { return cap(s.buf) }

// MaxLen returns the largest element count the set's allocator can address.
func (s *Set[T]) MaxLen() int { return s.alloc.MaxLen() }

// KeyComp returns the comparator the set orders by. It is nil for a moved-from
// set.
func (s *Set[T]) KeyComp() CompareFunc[T] { return s.compare }

// ValueComp returns the comparator the set orders by. For a set the key is the
// value, so this is identical to KeyComp.
func (s *Set[T]) ValueComp() CompareFunc[T] { return s.compare }

// GetAllocator returns the set's allocator.
func (s *Set[T]) GetAllocator() Allocator[T] { return s.alloc }

// Clone returns a copy of the set: same elements, same comparator.
// WithAllocator substitutes a different allocator for the copy.
func (s *Set[T]) Clone(optFns ...func(*Options[T])) *Set[T] {
	opts := applyOptions(optFns)

	alloc := opts.Allocator
	if alloc == nil {
		alloc = s.alloc
	}

	dst := &Set[T]{
		compare: s.compare,
		alloc:   alloc,
	}
	if len(s.buf) > 0 || opts.Capacity > 0 {
		dst.buf = alloc.Make(len(s.buf), max(len(s.buf), opts.Capacity))
		copy(dst.buf, s.buf)
	}

	return dst
}

// Move transfers ownership of the buffer to a new set in O(1) and leaves the
// receiver empty with a nil comparator and the default allocator. Positions
// and Slice views obtained from the receiver remain valid for the new set.
//
// With WithAllocator, the buffer is transferred directly when the target
// allocator equals the source's; otherwise the elements are copied through
// the target allocator and the source buffer is released.
func (s *Set[T]) Move(optFns ...func(*Options[T])) *Set[T] {
	opts := applyOptions(optFns)

	dst := &Set[T]{compare: s.compare}

	if opts.Allocator != nil && !allocatorsEqual[T](opts.Allocator, s.alloc) {
		dst.alloc = opts.Allocator
		if len(s.buf) > 0 {
			dst.buf = dst.alloc.Make(len(s.buf), len(s.buf))
			copy(dst.buf, s.buf)
		}
		s.alloc.Release(s.buf)
	} else {
		dst.alloc = s.alloc
		dst.buf = s.buf
	}

	s.buf = nil
	s.compare = nil
	s.alloc = HeapAllocator[T]{}

	return dst
}

// Swap exchanges the buffers, comparators and allocators of the two sets in
// O(1). It never fails.
func (s *Set[T]) Swap(other *Set[T]) {
	s.buf, other.buf = other.buf, s.buf
	s.compare, other.compare = other.compare, s.compare
	s.alloc, other.alloc = other.alloc, s.alloc
}

// Equal reports whether both sets hold element-wise equivalent sequences under
// the receiver's comparator. Comparator and allocator identity are irrelevant.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if len(s.buf) != len(other.buf) {
		return false
	}
	for i := range s.buf {
		if s.compare(s.buf[i], other.buf[i]) != 0 {
			return false
		}
	}
	return true
}

// Compare orders the two sets lexicographically under the receiver's
// comparator, following the slices.Compare convention: the result is 0 when
// the sequences are equivalent, otherwise the sign of the first mismatch,
// with a shorter prefix ordering first.
func (s *Set[T]) Compare(other *Set[T]) int {
	for i, v := range s.buf {
		if i >= len(other.buf) {
			return +1
		}
		if c := s.compare(v, other.buf[i]); c != 0 {
			return c
		}
	}
	if len(s.buf) < len(other.buf) {
		return -1
	}
	return 0
}

// grow ensures capacity for at least minCap elements, expanding geometrically
// through the allocator.
func (s *Set[T]) grow(minCap int) {
	if cap(s.buf) >= minCap {
		return
	}

	newCap := max(2*cap(s.buf), minCap, 8)
	if maxLen := s.alloc.MaxLen(); newCap > maxLen {
		newCap = max(minCap, maxLen)
	}

	next := s.alloc.Make(len(s.buf), newCap)
	copy(next, s.buf)
	s.alloc.Release(s.buf)
	s.buf = next
}
