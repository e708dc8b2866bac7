package persistence

import "errors"

const (
	// MagicNumber identifies denseset snapshot blobs (ASCII: "DSET").
	MagicNumber = 0x44534554
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000

	// maxCodecNameLen bounds the codec-name field so a corrupt header cannot
	// trigger a huge read.
	maxCodecNameLen = 64
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrUnknownCompression = errors.New("unknown compression")
	ErrTruncatedSnapshot  = errors.New("truncated snapshot")
)

// Compression selects the payload compression scheme. The value is recorded
// in the snapshot header, so existing snapshots always decompress with the
// scheme they were written with.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = iota
	// CompressionZstd compresses with klauspost/compress zstd. The default.
	CompressionZstd
	// CompressionLZ4 compresses with pierrec/lz4, trading ratio for speed.
	CompressionLZ4
)

// snapshotHeader is the fixed-size header at the start of every snapshot.
// The codec name follows immediately after, then the payload, then a CRC32.
type snapshotHeader struct {
	Magic       uint32 // 0x44534554 ("DSET")
	Version     uint32 // Snapshot format version
	Compression uint8  // Compression scheme of the payload
	CodecLen    uint8  // Length of the codec name that follows the header
	Padding     [2]byte
	Count       uint64 // Number of element records in the payload
	PayloadLen  uint64 // Compressed payload length in bytes
}
