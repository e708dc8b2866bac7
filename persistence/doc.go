// Package persistence writes and reads denseset snapshots.
//
// A snapshot is a self-describing binary blob: a fixed header records the
// format version, the element codec by name and the compression scheme, so
// any snapshot can be opened without out-of-band knowledge. The element
// payload is a stream of length-prefixed codec-encoded records, optionally
// compressed with zstd or lz4 and protected by a CRC32 checksum.
//
// Save/Load work against any io.Writer/io.Reader. Manager layers versioned,
// named snapshots with a CURRENT pointer on top of a blobstore.BlobStore.
package persistence
