package compression

import (
	"fmt"

	"github.com/DataDog/zstd"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
)

const (
	// TODO(low) make this configurable
	defaultLevel = 3
)

// zstdCodec writes a bare zstd frame; the uncompressed size already lives in
// the enclosing block header, so no codec-private prefix is needed. An empty
// input maps to an empty payload.
type zstdCodec struct{}

func (z *zstdCodec) GetType() CompressionType {
	return ZstdCompression
}

func (z *zstdCodec) MaxCompressedLength(dataLen int) int {
	if dataLen == 0 {
		return 0
	}
	return zstd.CompressBound(dataLen)
}

func (z *zstdCodec) Compress(dst []byte, srcs ...[]byte) (int, error) {
	src, pooled := joinRanges(srcs)
	if pooled != nil {
		defer bufferpool.Put(pooled)
	}
	if len(src) == 0 {
		return 0, nil
	}

	zCtx := zstd.NewCtx()
	result, err := zCtx.CompressLevel(dst, src, defaultLevel)
	if err != nil {
		return 0, err
	}
	if &result[0] != &dst[0] {
		panic("Allocated a new buffer despite checking CompressBound.")
	}
	return len(result), nil
}

func (z *zstdCodec) Uncompress(dst, src []byte) error {
	if len(dst) == 0 {
		if len(src) != 0 {
			return fmt.Errorf("%w: zstd: unexpected payload of %d bytes for an empty block",
				common.ErrCorruption, len(src))
		}
		return nil
	}
	if len(src) == 0 {
		return fmt.Errorf("%w: zstd: empty payload for a block of %d bytes",
			common.ErrCorruption, len(dst))
	}

	zCtx := zstd.NewCtx()
	n, err := zCtx.DecompressInto(dst, src)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return fmt.Errorf("%w: zstd: decompressed size %d does not match the expected %d",
			common.ErrCorruption, n, len(dst))
	}
	return nil
}

var _ ICodec = (*zstdCodec)(nil)
