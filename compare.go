package denseset

import "cmp"

// CompareFunc is a three-way comparator over T. It must implement a strict
// weak ordering: negative if a orders before b, zero if neither orders before
// the other, positive if a orders after b.
//
// Violating strict weak ordering silently breaks the sorted-unique invariant;
// it is a precondition, not a checked error. CheckInvariant exists as an
// opt-in debug assertion.
type CompareFunc[T any] func(a, b T) int

// Ordered returns the natural comparator for an ordered type.
// It is the comparator installed by New, Of, FromSlice and Collect.
func Ordered[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator that orders the opposite way of compare.
func Reverse[T any](compare CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int { return compare(b, a) }
}
