package blockfile

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/murmur3"
)

func TestCRC32Checksumer(t *testing.T) {
	checksumer := NewChecksumer(CRC32Checksum)
	block := []byte("some framed block bytes")
	aux := byte(0x03)

	want := crc32.Update(crc32.ChecksumIEEE(block), crc32.IEEETable, []byte{aux})
	assert.Equal(t, want, checksumer.Checksum(block, aux))
}

func TestMurmur3Checksumer(t *testing.T) {
	checksumer := NewChecksumer(Murmur3Checksum)
	block := []byte("some framed block bytes")
	aux := byte(0x03)

	assert.Equal(t, murmur3.SeedSum32(uint32(aux), block), checksumer.Checksum(block, aux))
}

func TestChecksum_AuxiliaryByteChangesSum(t *testing.T) {
	block := []byte("same bytes, different trailer type")

	for _, ct := range []ChecksumType{CRC32Checksum, Murmur3Checksum} {
		checksumer := NewChecksumer(ct)
		assert.NotEqual(t, checksumer.Checksum(block, 0x01), checksumer.Checksum(block, 0x02))
	}
}

func TestNewChecksumer_UnknownType(t *testing.T) {
	assert.Panics(t, func() {
		NewChecksumer(UnknownChecksum)
	})
}
