package compression

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
	"github.com/pierrec/lz4/v4"
)

// The lz4 block API reports incompressible input by producing zero bytes, so
// the payload carries a one byte flag telling the reader what follows.
const (
	lz4RawPayload byte = iota
	lz4CompressedPayload
)

type lz4Codec struct{}

func (l *lz4Codec) GetType() CompressionType {
	return Lz4Compression
}

func (l *lz4Codec) MaxCompressedLength(dataLen int) int {
	return 1 + lz4.CompressBlockBound(dataLen)
}

func (l *lz4Codec) Compress(dst []byte, srcs ...[]byte) (int, error) {
	src, pooled := joinRanges(srcs)
	if pooled != nil {
		defer bufferpool.Put(pooled)
	}

	n, err := lz4.CompressBlock(src, dst[1:], nil)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// incompressible, store the raw bytes behind the flag
		dst[0] = lz4RawPayload
		copy(dst[1:], src)
		return 1 + len(src), nil
	}
	dst[0] = lz4CompressedPayload
	return 1 + n, nil
}

func (l *lz4Codec) Uncompress(dst, src []byte) error {
	if len(src) == 0 {
		return fmt.Errorf("%w: lz4: payload is missing the leading flag byte", common.ErrCorruption)
	}
	switch src[0] {
	case lz4RawPayload:
		if len(src)-1 != len(dst) {
			return fmt.Errorf("%w: lz4: raw payload size %d does not match the expected %d",
				common.ErrCorruption, len(src)-1, len(dst))
		}
		copy(dst, src[1:])
		return nil
	case lz4CompressedPayload:
		n, err := lz4.UncompressBlock(src[1:], dst)
		if err != nil {
			return err
		}
		if n != len(dst) {
			return fmt.Errorf("%w: lz4: decompressed size %d does not match the expected %d",
				common.ErrCorruption, n, len(dst))
		}
		return nil
	default:
		return fmt.Errorf("%w: lz4: unknown payload flag %d", common.ErrCorruption, src[0])
	}
}

var _ ICodec = (*lz4Codec)(nil)
