package persistence

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/hupe1980/denseset"
	"github.com/hupe1980/denseset/blobstore"
	"golang.org/x/sync/errgroup"
)

// ErrSetNotFound is returned when no committed snapshot exists for a name.
var ErrSetNotFound = errors.New("set not found")

const (
	currentPointer = "CURRENT"
	snapshotSuffix = ".snap"
)

// Manager stores named, versioned snapshots in a BlobStore.
//
// Each set name owns a directory-like prefix: snapshot payloads live at
// "<name>/<version>.snap" and a "<name>/CURRENT" pointer names the committed
// snapshot. Writes upload the payload first and flip the pointer last, so a
// reader always loads a complete snapshot. Combined with a compare-and-swap
// pointer store (see blobstore/s3.CatalogStore) this is safe for concurrent
// writers too.
type Manager struct {
	store  blobstore.BlobStore
	logger *slog.Logger
}

// ManagerOptions contains configuration options for a Manager.
type ManagerOptions struct {
	// Logger receives structured progress events. Defaults to a no-op logger.
	Logger *slog.Logger
}

// WithLogger sets the logger for snapshot operations.
func WithLogger(logger *slog.Logger) func(*ManagerOptions) {
	return func(o *ManagerOptions) {
		o.Logger = logger
	}
}

// NewManager creates a Manager over the given store.
func NewManager(store blobstore.BlobStore, optFns ...func(*ManagerOptions)) *Manager {
	opts := ManagerOptions{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Manager{store: store, logger: opts.Logger}
}

// SaveSet writes a new snapshot version of the set and commits it as CURRENT.
func SaveSet[T any](ctx context.Context, m *Manager, name string, s *denseset.Set[T], optFns ...func(*Options)) error {
	latest, err := m.latestVersion(ctx, name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Save(&buf, s, optFns...); err != nil {
		return fmt.Errorf("failed to encode snapshot %q: %w", name, err)
	}

	blob := fmt.Sprintf("%s/%016d%s", name, latest+1, snapshotSuffix)
	if err := m.store.Put(ctx, blob, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to upload snapshot %q: %w", blob, err)
	}

	if err := m.store.Put(ctx, path.Join(name, currentPointer), []byte(blob)); err != nil {
		return fmt.Errorf("failed to commit snapshot %q: %w", blob, err)
	}

	m.logger.DebugContext(ctx, "snapshot committed",
		slog.String("name", name),
		slog.Uint64("version", latest+1),
		slog.Int("elements", s.Len()),
		slog.Int("bytes", buf.Len()),
	)
	return nil
}

// SaveSets writes snapshots for several sets concurrently. Either all sets
// are attempted or, on the first error, remaining uploads are canceled and
// the error is returned.
func SaveSets[T any](ctx context.Context, m *Manager, sets map[string]*denseset.Set[T], optFns ...func(*Options)) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, s := range sets {
		g.Go(func() error {
			return SaveSet(ctx, m, name, s, optFns...)
		})
	}
	return g.Wait()
}

// LoadSet loads the CURRENT snapshot of a set with an ordered element type.
func LoadSet[T cmp.Ordered](ctx context.Context, m *Manager, name string, optFns ...func(*denseset.Options[T])) (*denseset.Set[T], error) {
	return LoadSetFunc(ctx, m, name, cmp.Compare[T], optFns...)
}

// LoadSetFunc loads the CURRENT snapshot of a set and rebuilds it under
// compare.
func LoadSetFunc[T any](ctx context.Context, m *Manager, name string, compare denseset.CompareFunc[T], optFns ...func(*denseset.Options[T])) (*denseset.Set[T], error) {
	target, err := m.store.Get(ctx, path.Join(name, currentPointer))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
		}
		return nil, err
	}

	data, err := m.store.Get(ctx, string(target))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot %q: %w", target, err)
	}

	s, err := LoadFunc(bytes.NewReader(data), compare, optFns...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %q: %w", target, err)
	}
	return s, nil
}

// Versions returns the snapshot blob names of a set, oldest first.
func (m *Manager) Versions(ctx context.Context, name string) ([]string, error) {
	names, err := m.store.List(ctx, name+"/")
	if err != nil {
		return nil, err
	}

	versions := names[:0]
	for _, n := range names {
		if strings.HasSuffix(n, snapshotSuffix) {
			versions = append(versions, n)
		}
	}
	return versions, nil
}

// Remove deletes every snapshot version of a set and its CURRENT pointer.
func (m *Manager) Remove(ctx context.Context, name string) error {
	versions, err := m.Versions(ctx, name)
	if err != nil {
		return err
	}
	for _, v := range versions {
		if err := m.store.Delete(ctx, v); err != nil {
			return err
		}
	}
	if err := m.store.Delete(ctx, path.Join(name, currentPointer)); err != nil {
		return err
	}

	m.logger.DebugContext(ctx, "snapshots removed",
		slog.String("name", name),
		slog.Int("versions", len(versions)),
	)
	return nil
}

func (m *Manager) latestVersion(ctx context.Context, name string) (uint64, error) {
	versions, err := m.Versions(ctx, name)
	if err != nil {
		return 0, err
	}

	var latest uint64
	for _, v := range versions {
		base := strings.TrimSuffix(path.Base(v), snapshotSuffix)
		n, err := strconv.ParseUint(base, 10, 64)
		if err != nil {
			continue // foreign blob under the set prefix
		}
		if n > latest {
			latest = n
		}
	}
	return latest, nil
}
