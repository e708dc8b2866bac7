package denseset

import (
	"math"
	"sync"
	"unsafe"
)

// Allocator controls how a Set obtains and releases its backing buffer.
//
// Allocators must be safe for use by every Set they are shared with, under the
// same external-synchronization rules as the sets themselves.
type Allocator[T any] interface {
	// Make returns a buffer with the given length and at least the given
	// capacity.
	Make(length, capacity int) []T

	// Release returns a buffer that is no longer referenced by any Set.
	Release(buf []T)

	// MaxLen returns the largest element count this allocator can address.
	MaxLen() int

	// Equal reports whether other is compatible with this allocator, i.e.
	// buffers made by one may be released by the other. It decides whether
	// Move and Clone can transfer a buffer or must copy through the target
	// allocator.
	Equal(other Allocator[T]) bool
}

// Compile-time checks to ensure the built-in allocators satisfy Allocator.
var (
	_ Allocator[int] = HeapAllocator[int]{}
	_ Allocator[int] = (*PoolAllocator[int])(nil)
)

// HeapAllocator is the default allocator, backed by the Go runtime heap.
// All HeapAllocator values are equal to each other.
type HeapAllocator[T any] struct{}

// Make returns a heap-allocated buffer.
func (HeapAllocator[T]) Make(length, capacity int) []T {
	return make([]T, length, capacity)
}

// Release is a no-op; the garbage collector reclaims the buffer.
func (HeapAllocator[T]) Release(buf []T) {}

// MaxLen returns the addressable element count for T.
func (HeapAllocator[T]) MaxLen() int {
	return maxElems[T]()
}

// Equal reports whether other is also a HeapAllocator.
func (HeapAllocator[T]) Equal(other Allocator[T]) bool {
	_, ok := other.(HeapAllocator[T])
	return ok
}

// PoolAllocator recycles released buffers through a sync.Pool. It is useful
// for workloads that churn many short-lived sets of similar size.
//
// Two PoolAllocators are equal only if they are the same instance; buffers
// must not migrate between pools.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

// NewPoolAllocator creates a pool-backed allocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{}
}

// Make reuses a pooled buffer when one with sufficient capacity is available.
func (p *PoolAllocator[T]) Make(length, capacity int) []T {
	if v := p.pool.Get(); v != nil {
		if buf, ok := v.([]T); ok && cap(buf) >= capacity {
			return buf[:length]
		}
	}
	return make([]T, length, capacity)
}

// Release zeroes the buffer and returns it to the pool.
func (p *PoolAllocator[T]) Release(buf []T) {
	if cap(buf) == 0 {
		return
	}
	var zero T
	buf = buf[:cap(buf)]
	for i := range buf {
		buf[i] = zero
	}
	p.pool.Put(buf[:0]) //nolint:staticcheck // slice header allocation is acceptable here
}

// MaxLen returns the addressable element count for T.
func (p *PoolAllocator[T]) MaxLen() int {
	return maxElems[T]()
}

// Equal reports whether other is the same PoolAllocator instance.
func (p *PoolAllocator[T]) Equal(other Allocator[T]) bool {
	o, ok := other.(*PoolAllocator[T])
	return ok && o == p
}

func maxElems[T any]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}

func allocatorsEqual[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
