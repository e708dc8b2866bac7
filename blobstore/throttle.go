package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and limits the byte rate of Put and Get,
// keeping snapshot traffic from starving latency-sensitive work that shares
// the link or disk.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a throttled wrapper around inner.
// bytesPerSec bounds the sustained transfer rate; burst is the bucket size
// and defaults to bytesPerSec when <= 0.
func NewThrottledStore(inner BlobStore, bytesPerSec float64, burst int) *ThrottledStore {
	if burst <= 0 {
		burst = int(bytesPerSec)
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), burst),
	}
}

func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	// Larger-than-burst payloads are fed through the limiter in chunks.
	for n > 0 {
		chunk := min(n, s.limiter.Burst())
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Put throttles the payload, then delegates to the inner store.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Get delegates to the inner store, then charges the payload to the limiter.
func (s *ThrottledStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Delete delegates to the inner store; deletes are not throttled.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List delegates to the inner store; listings are not throttled.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Compile-time check to ensure ThrottledStore satisfies BlobStore.
var _ BlobStore = (*ThrottledStore)(nil)
