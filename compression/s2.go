package compression

import (
	"fmt"
	"math"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
	"github.com/klauspost/compress/s2"
)

type s2Codec struct{}

func (s *s2Codec) GetType() CompressionType {
	return S2Compression
}

func (s *s2Codec) MaxCompressedLength(dataLen int) int {
	bound := s2.MaxEncodedLen(dataLen)
	if bound < 0 {
		// the input is too large to be encoded at all
		return math.MaxInt
	}
	return bound
}

func (s *s2Codec) Compress(dst []byte, srcs ...[]byte) (int, error) {
	src, pooled := joinRanges(srcs)
	if pooled != nil {
		defer bufferpool.Put(pooled)
	}

	res := s2.Encode(dst, src)
	if len(res) > 0 && &res[0] != &dst[0] {
		panic("Allocated a new buffer despite checking MaxEncodedLen.")
	}
	return len(res), nil
}

func (s *s2Codec) Uncompress(dst, src []byte) error {
	res, err := s2.Decode(dst, src)
	if err != nil {
		return err
	}
	if len(res) != len(dst) || (len(res) > 0 && &res[0] != &dst[0]) {
		return fmt.Errorf("%w: s2: decompressed size %d does not match the expected %d",
			common.ErrCorruption, len(res), len(dst))
	}
	return nil
}

var _ ICodec = (*s2Codec)(nil)
