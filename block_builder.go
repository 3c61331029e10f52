package go_block_compression

import (
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/compression"
)

// HeaderLen is the number of bytes reserved at the front of every framed
// block: [compressed size u32 LE][uncompressed size u32 LE].
const HeaderLen = 8

// BlockBuilder compresses raw byte ranges into self-describing framed blocks.
// Every call to Compress returns a freshly allocated block owned by the
// caller, so a single builder is safe for concurrent use.
type BlockBuilder struct {
	codec     compression.ICodec
	sizeLimit int
}

// NewBlockBuilder returns a builder that frames blocks compressed with the
// given codec, rejecting inputs whose estimated compressed size exceeds
// sizeLimit bytes.
func NewBlockBuilder(codec compression.ICodec, sizeLimit int) *BlockBuilder {
	if codec == nil {
		panic("codec must not be nil")
	}
	return &BlockBuilder{
		codec:     codec,
		sizeLimit: sizeLimit,
	}
}

// Compress frames the concatenation of data into a single compressed block.
func (b *BlockBuilder) Compress(data ...[]byte) ([]byte, error) {
	dataLen := 0
	for _, d := range data {
		dataLen += len(d)
	}

	// Make sure the buffer for header + compressed data stays within bounds
	// before allocating anything.
	maxCompressed := b.codec.MaxCompressedLength(dataLen)
	if maxCompressed > b.sizeLimit {
		return nil, fmt.Errorf("%w: estimated max compressed size %d is greater than the expected %d",
			common.ErrInvalidArgument, maxCompressed, b.sizeLimit)
	}

	buf := make([]byte, HeaderLen+maxCompressed)
	compressedLen, err := b.codec.Compress(buf[HeaderLen:], data...)
	if err != nil {
		return nil, err
	}

	binary.LittleEndian.PutUint32(buf[0:4], uint32(compressedLen))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(dataLen))
	return buf[:HeaderLen+compressedLen], nil
}
