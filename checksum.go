package zpacker

import (
	"hash/crc32"

	"github.com/sigurn/crc16"
	"github.com/sigurn/crc8"
	"github.com/zeebo/blake3"
)

// The CRC parameters match the reference tables of the wire format:
// CRC-8 with polynomial 0x07 and zero init, CRC-16/CCITT-FALSE
// (polynomial 0x1021, init 0xFFFF) and the reflected CRC-32/IEEE
// (polynomial 0xEDB88320).
var (
	crc8Table  = crc8.MakeTable(crc8.CRC8)
	crc16Table = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)
)

// ChecksumNone returns zero for any input. It is the digest used when a
// nil Checksum is passed to the envelope operations.
func ChecksumNone(data []byte) uint32 { return 0 }

func ChecksumCRC8(data []byte) uint32 {
	return uint32(crc8.Checksum(data, crc8Table))
}

func ChecksumCRC16(data []byte) uint32 {
	return uint32(crc16.Checksum(data, crc16Table))
}

func ChecksumCRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// ChecksumBLAKE3 truncates a BLAKE3-256 digest to the low 32 bits of the
// envelope's CRC field. Stronger than the CRC family against deliberate
// corruption, at a higher per-byte cost.
func ChecksumBLAKE3(data []byte) uint32 {
	digest := blake3.Sum256(data)
	return hostOrder.Uint32(digest[:4])
}
