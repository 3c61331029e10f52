package compression

import (
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/internal/bufferpool"
)

// CompressionType is the per-block compression algorithm to use.
type CompressionType int

// The available compression types.
const (
	NoCompression CompressionType = iota
	SnappyCompression
	ZstdCompression
	Lz4Compression
	S2Compression
)

func (ct CompressionType) String() string {
	switch ct {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case ZstdCompression:
		return "zstd"
	case Lz4Compression:
		return "lz4"
	case S2Compression:
		return "s2"
	default:
		return "unknown"
	}
}

type ICodec interface {
	GetType() CompressionType
	// MaxCompressedLength returns the worst case compressed size for n input
	// bytes. Never negative; inputs the underlying library refuses to encode
	// report a size large enough to fail any caller-side limit check.
	MaxCompressedLength(n int) int
	// Compress compresses the concatenation of srcs into dst, which must be
	// sized to MaxCompressedLength of the total input. It returns the number
	// of bytes written into dst.
	Compress(dst []byte, srcs ...[]byte) (int, error)
	// Uncompress decompresses src into dst. The dst slice must have the
	// exact size as the decompressed value.
	Uncompress(dst, src []byte) error
}

func NewCodec(ct CompressionType) ICodec {
	switch ct {
	case NoCompression:
		return &noopCodec{}
	case SnappyCompression:
		return &snappyCodec{}
	case ZstdCompression:
		return &zstdCodec{}
	case Lz4Compression:
		return &lz4Codec{}
	case S2Compression:
		return &s2Codec{}
	default:
		panic("unknown compression type")
	}
}

// joinRanges flattens srcs into a single contiguous slice. A lone range is
// returned as-is; anything else is copied into a pooled buffer which the
// caller must hand back via bufferpool.Put once the compression call is done.
func joinRanges(srcs [][]byte) (src []byte, pooled []byte) {
	if len(srcs) == 1 {
		return srcs[0], nil
	}
	total := 0
	for _, s := range srcs {
		total += len(s)
	}
	buf := bufferpool.Get(total)
	for _, s := range srcs {
		buf = append(buf, s...)
	}
	return buf, buf
}
