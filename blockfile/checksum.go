package blockfile

import (
	"hash/crc32"

	"github.com/twmb/murmur3"
)

type ChecksumType byte

const (
	UnknownChecksum ChecksumType = iota
	CRC32Checksum
	Murmur3Checksum
)

// IChecksum computes the checksum stored in a block trailer. The auxiliary
// byte is the trailer's compression type, mixed in so that a trailer rewrite
// cannot go unnoticed.
type IChecksum interface {
	Checksum(block []byte, auxiliary byte) uint32
}

type crc32Checksumer struct{}

func (c *crc32Checksumer) Checksum(block []byte, auxiliary byte) uint32 {
	aux := [1]byte{auxiliary}
	checksum := crc32.ChecksumIEEE(block)
	return crc32.Update(checksum, crc32.IEEETable, aux[:])
}

type murmur3Checksumer struct{}

func (m *murmur3Checksumer) Checksum(block []byte, auxiliary byte) uint32 {
	return murmur3.SeedSum32(uint32(auxiliary), block)
}

func NewChecksumer(ct ChecksumType) IChecksum {
	switch ct {
	case CRC32Checksum:
		return &crc32Checksumer{}
	case Murmur3Checksum:
		return &murmur3Checksumer{}
	default:
		panic("unknown checksum type")
	}
}

var _ IChecksum = (*crc32Checksumer)(nil)
var _ IChecksum = (*murmur3Checksumer)(nil)
