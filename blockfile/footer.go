package blockfile

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-compression/common"
)

type FormatVersion uint32

const (
	FormatV1 FormatVersion = 1

	MagicNumber    = "nogodbf1"
	magicNumberLen = len(MagicNumber)
	versionLen     = 4

	// footerLen leaves [indexBH uvarint][padding][version u32 LE][magic].
	// Two uvarints need at most 2*binary.MaxVarintLen64 = 20 bytes, which is
	// exactly what the fixed size leaves in front of version+magic.
	footerLen = 32
)

// footer is the fixed-size record at the very end of a block file, pointing
// at the index block.
type footer struct {
	version FormatVersion
	indexBH BlockHandle
}

func (f *footer) Serialise() []byte {
	buf := make([]byte, footerLen)
	f.indexBH.EncodeInto(buf)
	binary.LittleEndian.PutUint32(buf[footerLen-magicNumberLen-versionLen:], uint32(f.version))
	copy(buf[footerLen-magicNumberLen:], MagicNumber)
	return buf
}

func readFooter(ctx context.Context, r Readable) (footer, error) {
	size := r.Size()
	if size < footerLen {
		return footer{}, fmt.Errorf("%w: file size %d is not enough to contain the footer, required %d",
			common.ErrCorruption, size, footerLen)
	}

	buf := make([]byte, footerLen)
	if err := r.ReadAt(ctx, buf, int64(size)-footerLen); err != nil {
		return footer{}, err
	}

	if string(buf[footerLen-magicNumberLen:]) != MagicNumber {
		return footer{}, fmt.Errorf("%w: bad magic number %s",
			common.ErrCorruption, common.DebugPreview(buf[footerLen-magicNumberLen:], magicNumberLen))
	}
	version := binary.LittleEndian.Uint32(buf[footerLen-magicNumberLen-versionLen : footerLen-magicNumberLen])
	if FormatVersion(version) != FormatV1 {
		return footer{}, fmt.Errorf("%w: unsupported format version %d", common.ErrCorruption, version)
	}

	var f footer
	f.version = FormatVersion(version)
	if n := f.indexBH.DecodeFrom(buf[:footerLen-magicNumberLen-versionLen]); n == 0 {
		return footer{}, fmt.Errorf("%w: failed to decode the index block handle", common.ErrCorruption)
	}
	return f, nil
}
