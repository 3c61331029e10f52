package compression

import (
	"fmt"
	"math"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
	"github.com/golang/snappy"
)

type snappyCodec struct{}

func (s *snappyCodec) GetType() CompressionType {
	return SnappyCompression
}

func (s *snappyCodec) MaxCompressedLength(dataLen int) int {
	bound := snappy.MaxEncodedLen(dataLen)
	if bound < 0 {
		// the input is too large to be encoded at all
		return math.MaxInt
	}
	return bound
}

func (s *snappyCodec) Compress(dst []byte, srcs ...[]byte) (int, error) {
	src, pooled := joinRanges(srcs)
	if pooled != nil {
		defer bufferpool.Put(pooled)
	}

	res := snappy.Encode(dst, src)
	if len(res) > 0 && &res[0] != &dst[0] {
		panic("Allocated a new buffer despite checking MaxEncodedLen.")
	}
	return len(res), nil
}

func (s *snappyCodec) Uncompress(dst, src []byte) error {
	res, err := snappy.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(res) != len(dst) || (len(res) > 0 && &res[0] != &dst[0]) {
		return fmt.Errorf("%w: snappy: decompressed size %d does not match the expected %d",
			common.ErrCorruption, len(res), len(dst))
	}
	return nil
}

var _ ICodec = (*snappyCodec)(nil)
