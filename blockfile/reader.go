package blockfile

import (
	"context"
	"encoding/binary"
	"fmt"

	go_block_compression "github.com/datnguyenzzz/nogodb/lib/go-block-compression"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/compression"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
)

// assumedBlockSize is only used to size the cache's admission counters.
const assumedBlockSize = 4 * 1024

// Reader reads blocks from a single file, handling caching, checksum
// validation and decompression. Safe for concurrent ReadBlock calls.
type Reader struct {
	readable   Readable
	opts       readOptions
	checksumer IChecksum
	// one decoder per known compression type; the block trailer picks which
	// one decodes a given block
	decoders map[compression.CompressionType]*go_block_compression.BlockDecoder
	handles  []BlockHandle
	cache    *ristretto.Cache[uint64, []byte]
}

// NewReader validates the file's footer, loads the index block and returns a
// reader over its handles.
func NewReader(ctx context.Context, r Readable, opts ...ReadOptionFn) (*Reader, error) {
	reader := &Reader{
		readable: r,
		opts:     defaultReadOptions,
	}
	for _, fn := range opts {
		fn(reader)
	}

	reader.checksumer = NewChecksumer(reader.opts.checksum)
	reader.decoders = make(map[compression.CompressionType]*go_block_compression.BlockDecoder)
	for _, ct := range []compression.CompressionType{
		compression.NoCompression,
		compression.SnappyCompression,
		compression.ZstdCompression,
		compression.Lz4Compression,
		compression.S2Compression,
	} {
		reader.decoders[ct] = go_block_compression.NewBlockDecoder(
			compression.NewCodec(ct), reader.opts.sizeLimit)
	}

	f, err := readFooter(ctx, r)
	if err != nil {
		zap.L().Error("Failed to read footer", zap.Error(err))
		return nil, err
	}
	indexData, err := reader.readBlockAt(ctx, f.indexBH)
	if err != nil {
		zap.L().Error("Failed to read index block", zap.Error(err))
		return nil, err
	}
	for len(indexData) > 0 {
		var h BlockHandle
		n := h.DecodeFrom(indexData)
		if n == 0 {
			return nil, fmt.Errorf("%w: failed to decode a block handle from the index block",
				common.ErrCorruption)
		}
		reader.handles = append(reader.handles, h)
		indexData = indexData[n:]
	}

	if reader.opts.cacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[uint64, []byte]{
			NumCounters: 5 * max(reader.opts.cacheSize/assumedBlockSize, 1), // 5x estimated blocks
			MaxCost:     reader.opts.cacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, err
		}
		reader.cache = cache
	}
	return reader, nil
}

// ReadBlock reads, verifies and decompresses the block at h. The returned
// bytes may be shared with the cache; callers must not modify them.
func (r *Reader) ReadBlock(ctx context.Context, h BlockHandle) ([]byte, error) {
	if r.cache != nil {
		if data, ok := r.cache.Get(h.Offset); ok {
			return data, nil
		}
	}

	data, err := r.readBlockAt(ctx, h)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Set(h.Offset, data, int64(len(data)))
	}
	return data, nil
}

func (r *Reader) readBlockAt(ctx context.Context, h BlockHandle) ([]byte, error) {
	if h.Length < TrailerLen {
		return nil, fmt.Errorf("%w: block length %d is not enough to contain the trailer, required %d",
			common.ErrCorruption, h.Length, TrailerLen)
	}

	raw := bufferpool.Get(int(h.Length))[:h.Length]
	defer bufferpool.Put(raw)
	if err := r.readable.ReadAt(ctx, raw, int64(h.Offset)); err != nil {
		return nil, err
	}

	framed := raw[:h.Length-TrailerLen]
	trailer := raw[h.Length-TrailerLen:]

	ct := compression.CompressionType(trailer[0])
	decoder, ok := r.decoders[ct]
	if !ok {
		return nil, fmt.Errorf("%w: unknown compression type byte %d in the block trailer",
			common.ErrCorruption, trailer[0])
	}

	expected := binary.LittleEndian.Uint32(trailer[1:])
	if actual := r.checksumer.Checksum(framed, trailer[0]); actual != expected {
		return nil, fmt.Errorf("%w: checksum mismatch, stored %d, computed %d",
			common.ErrCorruption, expected, actual)
	}

	return decoder.Uncompress(framed)
}

func (r *Reader) NumBlocks() int {
	return len(r.handles)
}

// Handle returns the handle of the i-th block, in write order.
func (r *Reader) Handle(i int) BlockHandle {
	return r.handles[i]
}

func (r *Reader) Close() error {
	if r.cache != nil {
		r.cache.Close()
	}
	return r.readable.Close()
}
