package blockfile

import (
	"encoding/binary"
	"fmt"

	go_block_compression "github.com/datnguyenzzz/nogodb/lib/go-block-compression"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/compression"
	"go.uber.org/zap"
)

// Writer appends compressed, checksummed blocks to a Writable and finishes
// the file with an index block and a fixed-size footer.
//
// A Writer must be used by a single goroutine; the flush queue, when enabled,
// only moves the physical writes off that goroutine.
type Writer struct {
	writable   Writable
	opts       writeOptions
	builder    *go_block_compression.BlockBuilder
	checksumer IChecksum
	queue      *flushQueue

	offset  uint64
	handles []BlockHandle
	err     error
	closed  bool
}

func NewWriter(w Writable, opts ...WriteOptionFn) *Writer {
	writer := &Writer{
		writable: w,
		opts:     defaultWriteOptions,
	}
	for _, fn := range opts {
		fn(writer)
	}

	writer.builder = go_block_compression.NewBlockBuilder(
		compression.NewCodec(writer.opts.compression), writer.opts.sizeLimit)
	writer.checksumer = NewChecksumer(writer.opts.checksum)
	if writer.opts.queueLen > 0 {
		writer.queue = newFlushQueue(writer.opts.queueLen)
	}
	return writer
}

// WriteBlock compresses the concatenation of data into the next block of the
// file and returns its handle. A rejected or failed block leaves the file
// untouched.
func (w *Writer) WriteBlock(data ...[]byte) (BlockHandle, error) {
	if w.closed {
		return BlockHandle{}, fmt.Errorf("%w: WriteBlock", common.ErrWriterClosed)
	}
	if w.err != nil {
		return BlockHandle{}, w.err
	}

	framed, err := w.builder.Compress(data...)
	if err != nil {
		return BlockHandle{}, err
	}

	handle, err := w.writeFramed(framed)
	if err != nil {
		return BlockHandle{}, err
	}
	w.handles = append(w.handles, handle)
	return handle, nil
}

// writeFramed trails the framed bytes and hands them to the writable, either
// synchronously or through the flush queue. The handle is computed before the
// physical write happens, so queueing never changes offsets.
func (w *Writer) writeFramed(framed []byte) (BlockHandle, error) {
	var pb PhysicalBlock
	pb.SetData(framed)
	checksum := w.checksumer.Checksum(framed, byte(w.opts.compression))
	pb.SetTrailer(byte(w.opts.compression), checksum)

	handle := BlockHandle{Offset: w.offset, Length: pb.Size()}

	if w.queue != nil {
		w.queue.put(func() error {
			return w.writePhysicalBlock(pb)
		})
	} else if err := w.writePhysicalBlock(pb); err != nil {
		zap.L().Error("Failed to write block",
			zap.Uint64("offset", handle.Offset), zap.Error(err))
		w.err = err
		return BlockHandle{}, err
	}

	w.offset += pb.Size()
	return handle, nil
}

func (w *Writer) writePhysicalBlock(pb PhysicalBlock) error {
	if err := w.writable.Write(pb.Data); err != nil {
		return err
	}
	return w.writable.Write(pb.Trailer[:])
}

// Finish drains the flush queue, writes the index block and the footer, and
// finishes the underlying writable. The first write failure wins.
func (w *Writer) Finish() error {
	if w.closed {
		return fmt.Errorf("%w: Finish", common.ErrWriterClosed)
	}
	w.closed = true

	if w.queue != nil {
		err := w.queue.close()
		// the index block and footer below are written synchronously
		w.queue = nil
		if err != nil && w.err == nil {
			w.err = err
		}
	}
	if w.err != nil {
		return w.err
	}

	indexBH, err := w.writeIndexBlock()
	if err != nil {
		zap.L().Error("Failed to write index block", zap.Error(err))
		w.err = err
		return err
	}

	f := footer{version: FormatV1, indexBH: indexBH}
	if err := w.writable.Write(f.Serialise()); err != nil {
		zap.L().Error("Failed to write footer", zap.Error(err))
		w.err = err
		return err
	}
	return w.writable.Finish()
}

// writeIndexBlock persists the uvarint-encoded handle list, framed and
// trailed like any other block.
func (w *Writer) writeIndexBlock() (BlockHandle, error) {
	buf := make([]byte, 0, len(w.handles)*2*binary.MaxVarintLen64)
	var scratch [2 * binary.MaxVarintLen64]byte
	for i := range w.handles {
		n := w.handles[i].EncodeInto(scratch[:])
		buf = append(buf, scratch[:n]...)
	}

	framed, err := w.builder.Compress(buf)
	if err != nil {
		return BlockHandle{}, err
	}
	return w.writeFramed(framed)
}

// Abort gives up on the file. The flush queue is drained first so no write
// races the underlying abort.
func (w *Writer) Abort() {
	if w.closed {
		return
	}
	w.closed = true
	if w.queue != nil {
		_ = w.queue.close()
	}
	w.writable.Abort()
}

// Error reports the first synchronous write failure.
func (w *Writer) Error() error {
	return w.err
}

func (w *Writer) NumBlocks() int {
	return len(w.handles)
}
