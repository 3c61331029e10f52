package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTypes() []CompressionType {
	return []CompressionType{
		NoCompression,
		SnappyCompression,
		ZstdCompression,
		Lz4Compression,
		S2Compression,
	}
}

func TestNewCodec_GetType(t *testing.T) {
	for _, ct := range allTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec := NewCodec(ct)
			assert.Equal(t, ct, codec.GetType())
		})
	}
}

func TestNewCodec_UnknownType(t *testing.T) {
	assert.Panics(t, func() {
		NewCodec(CompressionType(42))
	})
}

func TestCompressionType_String(t *testing.T) {
	assert.Equal(t, "none", NoCompression.String())
	assert.Equal(t, "snappy", SnappyCompression.String())
	assert.Equal(t, "zstd", ZstdCompression.String())
	assert.Equal(t, "lz4", Lz4Compression.String())
	assert.Equal(t, "s2", S2Compression.String())
	assert.Equal(t, "unknown", CompressionType(42).String())
}

func TestCodec_RoundTrip(t *testing.T) {
	type param struct {
		name string
		data []byte
	}

	tests := []param{
		{
			name: "empty data",
			data: []byte{},
		},
		{
			name: "single byte",
			data: []byte{0x42},
		},
		{
			name: "simple text",
			data: []byte("hello world"),
		},
		{
			name: "binary data",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0xff, 0xfe, 0xfd, 0xfc},
		},
		{
			name: "highly compressible",
			data: bytes.Repeat([]byte("A"), 1000),
		},
		{
			name: "repeated sentence",
			data: bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 100),
		},
	}

	for _, ct := range allTypes() {
		codec := NewCodec(ct)
		for _, tc := range tests {
			t.Run(ct.String()+"/"+tc.name, func(t *testing.T) {
				bound := codec.MaxCompressedLength(len(tc.data))
				require.GreaterOrEqual(t, bound, len(tc.data))

				dst := make([]byte, bound)
				compressedLen, err := codec.Compress(dst, tc.data)
				require.NoError(t, err)
				require.LessOrEqual(t, compressedLen, bound)

				decompressed := make([]byte, len(tc.data))
				err = codec.Uncompress(decompressed, dst[:compressedLen])
				require.NoError(t, err)
				assert.Equal(t, tc.data, decompressed)
			})
		}
	}
}

func TestCodec_MultiRangeEqualsConcat(t *testing.T) {
	ranges := [][]byte{
		[]byte("hello "),
		{},
		[]byte("world, "),
		bytes.Repeat([]byte("block "), 50),
	}
	var concat []byte
	for _, r := range ranges {
		concat = append(concat, r...)
	}

	for _, ct := range allTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec := NewCodec(ct)
			bound := codec.MaxCompressedLength(len(concat))

			multi := make([]byte, bound)
			multiLen, err := codec.Compress(multi, ranges...)
			require.NoError(t, err)

			single := make([]byte, bound)
			singleLen, err := codec.Compress(single, concat)
			require.NoError(t, err)

			assert.Equal(t, single[:singleLen], multi[:multiLen])
		})
	}
}

func TestCodec_Uncompress_SizeMismatch(t *testing.T) {
	data := []byte("test data for buffer size mismatch")

	for _, ct := range allTypes() {
		t.Run(ct.String(), func(t *testing.T) {
			codec := NewCodec(ct)
			dst := make([]byte, codec.MaxCompressedLength(len(data)))
			compressedLen, err := codec.Compress(dst, data)
			require.NoError(t, err)
			compressed := dst[:compressedLen]

			smallBuf := make([]byte, len(data)-5)
			assert.Error(t, codec.Uncompress(smallBuf, compressed))

			largeBuf := make([]byte, len(data)+5)
			assert.Error(t, codec.Uncompress(largeBuf, compressed))
		})
	}
}

func TestCodec_CompressionRatio(t *testing.T) {
	// Repetitive data must actually shrink on every real codec.
	data := bytes.Repeat([]byte("This is a test string for large data compression. "), 10000)

	for _, ct := range allTypes() {
		if ct == NoCompression {
			continue
		}
		t.Run(ct.String(), func(t *testing.T) {
			codec := NewCodec(ct)
			dst := make([]byte, codec.MaxCompressedLength(len(data)))
			compressedLen, err := codec.Compress(dst, data)
			require.NoError(t, err)

			ratio := float64(compressedLen) / float64(len(data))
			assert.Less(t, ratio, 0.1, "Expected good compression ratio for repetitive data")
		})
	}
}

func TestNoopCodec_IsIdentity(t *testing.T) {
	codec := NewCodec(NoCompression)
	data := []byte("stored unchanged")

	assert.Equal(t, len(data), codec.MaxCompressedLength(len(data)))

	dst := make([]byte, len(data))
	n, err := codec.Compress(dst, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, data, dst)
}
