package blockfile

import (
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/compression"
)

const defaultSizeLimit = 8 * 1024 * 1024 // 8MiB

type WriteOptionFn func(*Writer)

type writeOptions struct {
	// compression is the algorithm every block of the file is compressed with.
	//
	// The default value is snappy.
	compression compression.CompressionType

	// checksum is the algorithm the per-block trailer checksum is computed with.
	//
	// The default value is crc32.
	checksum ChecksumType

	// sizeLimit bounds the estimated compressed size of a single block.
	//
	// The default value is 8MiB.
	sizeLimit int

	// queueLen is the capacity of the asynchronous flush queue. Zero keeps
	// every write on the caller's goroutine.
	queueLen int
}

var defaultWriteOptions = writeOptions{
	compression: compression.SnappyCompression,
	checksum:    CRC32Checksum,
	sizeLimit:   defaultSizeLimit,
	queueLen:    0,
}

func WithCompression(ct compression.CompressionType) WriteOptionFn {
	return func(w *Writer) {
		w.opts.compression = ct
	}
}

func WithChecksum(ct ChecksumType) WriteOptionFn {
	return func(w *Writer) {
		w.opts.checksum = ct
	}
}

func WithCompressedSizeLimit(limit int) WriteOptionFn {
	return func(w *Writer) {
		w.opts.sizeLimit = limit
	}
}

func WithFlushQueueLen(queueLen int) WriteOptionFn {
	return func(w *Writer) {
		w.opts.queueLen = queueLen
	}
}

type ReadOptionFn func(*Reader)

type readOptions struct {
	// sizeLimit bounds the declared uncompressed size of a single block.
	//
	// The default value is 8MiB.
	sizeLimit int

	// checksum is the algorithm trailer checksums are verified with. Must
	// match the writer's choice.
	//
	// The default value is crc32.
	checksum ChecksumType

	// cacheSize is the total cost in bytes of the decoded block cache.
	// Zero disables caching.
	cacheSize int64
}

var defaultReadOptions = readOptions{
	sizeLimit: defaultSizeLimit,
	checksum:  CRC32Checksum,
	cacheSize: 0,
}

func WithUncompressedSizeLimit(limit int) ReadOptionFn {
	return func(r *Reader) {
		r.opts.sizeLimit = limit
	}
}

func WithChecksumVerification(ct ChecksumType) ReadOptionFn {
	return func(r *Reader) {
		r.opts.checksum = ct
	}
}

func WithBlockCacheSize(size int64) ReadOptionFn {
	return func(r *Reader) {
		r.opts.cacheSize = size
	}
}
