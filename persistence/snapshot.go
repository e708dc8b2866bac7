package persistence

import (
	"bufio"
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/denseset"
	"github.com/hupe1980/denseset/codec"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Options contains configuration options for writing snapshots.
// Loading needs no options: snapshots are self-describing.
type Options struct {
	// Codec encodes the elements. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression scheme.
	Compression Compression
}

// DefaultOptions contains the default configuration options for snapshots.
var DefaultOptions = Options{
	Codec:       codec.Default,
	Compression: CompressionZstd,
}

// WithCodec sets the element codec recorded in the snapshot header.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithCompression sets the payload compression scheme.
func WithCompression(compression Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = compression
	}
}

// Save writes the set to w as a self-describing snapshot: header, codec
// name, compressed element payload, CRC32 trailer. Elements are written in
// ascending order, which lets Load rebuild the buffer with O(1) hinted
// appends.
func Save[T any](w io.Writer, s *denseset.Set[T], optFns ...func(*Options)) error {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	name := opts.Codec.Name()
	if len(name) == 0 || len(name) > maxCodecNameLen {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload, err := encodePayload(s, opts.Codec, opts.Compression)
	if err != nil {
		return err
	}

	header := snapshotHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(opts.Compression),
		CodecLen:    uint8(len(name)),
		Count:       uint64(s.Len()),
		PayloadLen:  uint64(len(payload)),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, name); err != nil {
		return err
	}

	cw := NewChecksumWriter(w)
	if _, err := cw.Write(payload); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, cw.Sum())
}

// Load reads a snapshot of an ordered element type written by Save.
func Load[T cmp.Ordered](r io.Reader, optFns ...func(*denseset.Options[T])) (*denseset.Set[T], error) {
	return LoadFunc(r, cmp.Compare[T], optFns...)
}

// LoadFunc reads a snapshot written by Save and rebuilds the set under
// compare. The comparator must induce the same ordering the set was saved
// with for the rebuild to be O(n); any strict weak ordering still yields a
// correct set.
func LoadFunc[T any](r io.Reader, compare denseset.CompareFunc[T], optFns ...func(*denseset.Options[T])) (*denseset.Set[T], error) {
	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}

	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}
	if header.CodecLen == 0 || int(header.CodecLen) > maxCodecNameLen {
		return nil, fmt.Errorf("%w: codec name length %d", ErrUnknownCodec, header.CodecLen)
	}

	name := make([]byte, header.CodecLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, err
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	cr := NewChecksumReader(io.LimitReader(r, int64(header.PayloadLen)))
	payload, err := io.ReadAll(cr)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) != header.PayloadLen {
		return nil, ErrTruncatedSnapshot
	}

	var sum uint32
	if err := binary.Read(r, binary.LittleEndian, &sum); err != nil {
		return nil, err
	}
	if err := cr.Verify(sum); err != nil {
		return nil, err
	}

	raw, err := decompress(payload, Compression(header.Compression))
	if err != nil {
		return nil, err
	}

	// Caller options come last so an explicit WithCapacity wins.
	capacity := int(header.Count)
	setOpts := append([]func(*denseset.Options[T]){denseset.WithCapacity[T](capacity)}, optFns...)
	s := denseset.NewFunc(compare, setOpts...)

	records := bufio.NewReader(bytes.NewReader(raw))
	for i := uint64(0); i < header.Count; i++ {
		size, err := binary.ReadUvarint(records)
		if err != nil {
			return nil, ErrTruncatedSnapshot
		}
		if size > uint64(len(raw)) {
			return nil, ErrTruncatedSnapshot
		}

		buf := make([]byte, size)
		if _, err := io.ReadFull(records, buf); err != nil {
			return nil, ErrTruncatedSnapshot
		}

		var v T
		if err := c.Unmarshal(buf, &v); err != nil {
			return nil, fmt.Errorf("failed to decode element %d: %w", i, err)
		}

		// Ascending input makes the end hint exact.
		s.InsertHint(s.Len(), v)
	}

	return s, nil
}

func encodePayload[T any](s *denseset.Set[T], c codec.Codec, compression Compression) ([]byte, error) {
	var buf bytes.Buffer

	var (
		dst    io.Writer
		finish func() error
	)
	switch compression {
	case CompressionNone:
		dst = &buf
		finish = func() error { return nil }
	case CompressionZstd:
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, err
		}
		dst = enc
		finish = enc.Close
	case CompressionLZ4:
		lw := lz4.NewWriter(&buf)
		dst = lw
		finish = lw.Close
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}

	var sizeBuf [binary.MaxVarintLen64]byte
	for v := range s.Values() {
		data, err := c.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode element: %w", err)
		}

		n := binary.PutUvarint(sizeBuf[:], uint64(len(data)))
		if _, err := dst.Write(sizeBuf[:n]); err != nil {
			return nil, err
		}
		if _, err := dst.Write(data); err != nil {
			return nil, err
		}
	}

	if err := finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(payload []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return io.ReadAll(dec)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}
}
