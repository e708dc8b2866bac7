package blobstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/denseset/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUnderTest exercises the BlobStore contract shared by all backends.
func storeUnderTest(t *testing.T, store blobstore.BlobStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent blob", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "sets/a.snap", []byte("alpha")))

		data, err := store.Get(ctx, "sets/a.snap")
		require.NoError(t, err)
		assert.Equal(t, []byte("alpha"), data)
	})

	t.Run("put replaces", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "sets/a.snap", []byte("beta")))

		data, err := store.Get(ctx, "sets/a.snap")
		require.NoError(t, err)
		assert.Equal(t, []byte("beta"), data)
	})

	t.Run("list by prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "sets/b.snap", []byte("b")))
		require.NoError(t, store.Put(ctx, "other/c.snap", []byte("c")))

		names, err := store.List(ctx, "sets/")
		require.NoError(t, err)
		assert.Equal(t, []string{"sets/a.snap", "sets/b.snap"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "sets/a.snap"))

		_, err := store.Get(ctx, "sets/a.snap")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)

		// Absent delete is a no-op.
		assert.NoError(t, store.Delete(ctx, "sets/a.snap"))
	})
}

func TestMemoryStore(t *testing.T) {
	storeUnderTest(t, blobstore.NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	payload := []byte("original")
	require.NoError(t, store.Put(ctx, "a", payload))
	payload[0] = 'X'

	data, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), data)

	data[0] = 'Y'
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), again)
}

func TestLocalStore(t *testing.T) {
	storeUnderTest(t, blobstore.NewLocalStore(t.TempDir()))
}

func TestLocalStoreListEmptyRoot(t *testing.T) {
	store := blobstore.NewLocalStore(filepath.Join(t.TempDir(), "never-created"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestThrottledStore(t *testing.T) {
	// A generous limit keeps the contract test fast while still exercising
	// the limiter path.
	storeUnderTest(t, blobstore.NewThrottledStore(blobstore.NewMemoryStore(), 1<<30, 1<<20))
}

func TestThrottledStoreHonorsContext(t *testing.T) {
	store := blobstore.NewThrottledStore(blobstore.NewMemoryStore(), 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Put(ctx, "a", []byte("too much for a dead context"))
	assert.Error(t, err)
}
