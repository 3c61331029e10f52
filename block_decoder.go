package go_block_compression

import (
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/compression"
)

// debugPreviewLen bounds the quoted look at the offending bytes carried by
// corruption errors.
const debugPreviewLen = 50

// BlockDecoder validates framed blocks produced by a BlockBuilder and
// recovers the raw bytes. It holds no per-call state and is safe for
// concurrent use.
type BlockDecoder struct {
	codec     compression.ICodec
	sizeLimit int
}

// NewBlockDecoder returns a decoder for blocks compressed with the given
// codec, rejecting blocks whose declared uncompressed size exceeds sizeLimit
// bytes.
func NewBlockDecoder(codec compression.ICodec, sizeLimit int) *BlockDecoder {
	if codec == nil {
		panic("codec must not be nil")
	}
	return &BlockDecoder{
		codec:     codec,
		sizeLimit: sizeLimit,
	}
}

// UncompressedLen cross-checks the header of block against its actual length
// and the configured limit, and returns the declared uncompressed size.
func (d *BlockDecoder) UncompressedLen(block []byte) (int, error) {
	if len(block) < HeaderLen {
		return 0, fmt.Errorf("%w: data size %d is not enough to contain the header, required %d, buffer %s",
			common.ErrCorruption, len(block), HeaderLen, common.DebugPreview(block, debugPreviewLen))
	}

	compressedSize := binary.LittleEndian.Uint32(block[0:4])
	uncompressedSize := binary.LittleEndian.Uint32(block[4:8])

	if int(compressedSize) != len(block)-HeaderLen {
		return 0, fmt.Errorf("%w: compressed size %d does not match remaining length in buffer %d, buffer %s",
			common.ErrCorruption, compressedSize, len(block)-HeaderLen,
			common.DebugPreview(block, debugPreviewLen))
	}
	if int(uncompressedSize) > d.sizeLimit {
		return 0, fmt.Errorf("%w: uncompressed size %d overflows the maximum length %d, buffer %s",
			common.ErrCorruption, uncompressedSize, d.sizeLimit,
			common.DebugPreview(block, debugPreviewLen))
	}

	return int(uncompressedSize), nil
}

// Uncompress validates block and returns the decompressed bytes in a freshly
// allocated buffer owned by the caller.
func (d *BlockDecoder) Uncompress(block []byte) ([]byte, error) {
	uncompressedLen, err := d.UncompressedLen(block)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, uncompressedLen)
	if err := d.codec.Uncompress(buf, block[HeaderLen:]); err != nil {
		return nil, err
	}
	return buf, nil
}

// UncompressInto validates block and decompresses it into dst, which must
// have the exact declared uncompressed size. Callers may use UncompressedLen
// to size dst.
func (d *BlockDecoder) UncompressInto(dst, block []byte) error {
	uncompressedLen, err := d.UncompressedLen(block)
	if err != nil {
		return err
	}
	if len(dst) != uncompressedLen {
		return fmt.Errorf("%w: dst size %d does not match the uncompressed size %d",
			common.ErrInvalidArgument, len(dst), uncompressedLen)
	}
	return d.codec.Uncompress(dst, block[HeaderLen:])
}
