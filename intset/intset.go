package intset

import (
	"io"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a compressed, duplicate-free set of uint32 keys.
// It wraps the official roaring implementation.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{
		rb: roaring.New(),
	}
}

// Of creates a set containing the given keys.
func Of(keys ...uint32) *Set {
	s := New()
	s.rb.AddMany(keys)
	return s
}

// Insert adds a key to the set. It returns true if the key was absent.
func (s *Set) Insert(key uint32) bool {
	return s.rb.CheckedAdd(key)
}

// InsertSlice adds all given keys to the set.
func (s *Set) InsertSlice(keys ...uint32) {
	s.rb.AddMany(keys)
}

// InsertRange adds every key in the half-open interval [lo, hi).
func (s *Set) InsertRange(lo, hi uint32) {
	if lo >= hi {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi))
}

// Delete removes a key from the set. It returns true if the key was present.
func (s *Set) Delete(key uint32) bool {
	return s.rb.CheckedRemove(key)
}

// Contains checks if a key is in the set.
func (s *Set) Contains(key uint32) bool {
	return s.rb.Contains(key)
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Empty returns true if the set contains no keys.
func (s *Set) Empty() bool {
	return s.rb.IsEmpty()
}

// Clear removes all keys from the set.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Min returns the smallest key. The second result is false if the set is
// empty.
func (s *Set) Min() (uint32, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Minimum(), true
}

// Max returns the largest key. The second result is false if the set is
// empty.
func (s *Set) Max() (uint32, bool) {
	if s.rb.IsEmpty() {
		return 0, false
	}
	return s.rb.Maximum(), true
}

// Rank returns the number of keys less than or equal to key.
func (s *Set) Rank(key uint32) int {
	return int(s.rb.Rank(key))
}

// Values returns an iterator over the keys in ascending order.
func (s *Set) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Slice returns the keys in ascending order.
func (s *Set) Slice() []uint32 {
	return s.rb.ToArray()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{
		rb: s.rb.Clone(),
	}
}

// Equal reports whether both sets contain exactly the same keys.
func (s *Set) Equal(other *Set) bool {
	return s.rb.Equals(other.rb)
}

// Union adds every key of other to the set.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}

// Intersect removes every key not present in other.
func (s *Set) Intersect(other *Set) {
	s.rb.And(other.rb)
}

// Difference removes every key present in other.
func (s *Set) Difference(other *Set) {
	s.rb.AndNot(other.rb)
}

// Intersects reports whether the sets share at least one key.
func (s *Set) Intersects(other *Set) bool {
	return s.rb.Intersects(other.rb)
}

// SizeInBytes returns the in-memory size of the set in bytes.
func (s *Set) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// WriteTo serializes the set in the portable Roaring format. The written
// form is run-optimized; the receiver is left untouched.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	rb := s.rb.Clone()
	rb.RunOptimize()
	return rb.WriteTo(w)
}

// ReadFrom deserializes a set written by WriteTo, replacing the current
// contents.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	return s.rb.ReadFrom(r)
}
