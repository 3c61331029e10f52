package compression

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
)

// noopCodec stores the payload unchanged. Useful for already-compressed data
// and as a baseline in tests.
type noopCodec struct{}

func (n *noopCodec) GetType() CompressionType {
	return NoCompression
}

func (n *noopCodec) MaxCompressedLength(dataLen int) int {
	return dataLen
}

func (n *noopCodec) Compress(dst []byte, srcs ...[]byte) (int, error) {
	written := 0
	for _, s := range srcs {
		written += copy(dst[written:], s)
	}
	return written, nil
}

func (n *noopCodec) Uncompress(dst, src []byte) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: noop: payload size %d does not match the expected %d",
			common.ErrCorruption, len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

var _ ICodec = (*noopCodec)(nil)
