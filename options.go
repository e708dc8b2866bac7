package denseset

// Options contains configuration options for a Set.
type Options[T any] struct {
	// Allocator provides the backing buffer. Defaults to HeapAllocator.
	Allocator Allocator[T]

	// Capacity pre-sizes the buffer for the expected element count.
	Capacity int
}

// WithAllocator sets the buffer allocator.
func WithAllocator[T any](alloc Allocator[T]) func(*Options[T]) {
	return func(o *Options[T]) {
		o.Allocator = alloc
	}
}

// WithCapacity pre-sizes the buffer for n elements.
func WithCapacity[T any](n int) func(*Options[T]) {
	return func(o *Options[T]) {
		o.Capacity = n
	}
}

func applyOptions[T any](optFns []func(*Options[T])) Options[T] {
	var opts Options[T]
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
