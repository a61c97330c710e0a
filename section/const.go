package section

import "github.com/arloliu/dwg/endian"

// Legacy file header layout.
const (
	LegacyFixedSize     = 0x19 // bytes before the first locator record
	LegacyRecordSize    = 9    // number (1) + seeker (4) + size (4)
	LegacyMaxRecords    = 16
	legacyMaintOffset   = 0x0B
	legacyImageOffset   = 0x0D
	legacyCodePageOff   = 0x13
	legacyRecordCntOff  = 0x15
	legacyTrailerLength = 2 + SentinelSize
)

// R2004 file header layout.
const (
	R2004HeaderSize      = 0x100
	R2004EncryptedOffset = 0x80
	R2004EncryptedSize   = 0x6C
	r2004CRCOffset       = 0x68 // within the decrypted block
)

// Page layout.
const (
	SystemPageHeaderSize = 0x14
	DataPageHeaderSize   = 0x20
	PageMapBaseAddress   = 0x100
	PageAlignment        = 0x20
)

// Page type markers.
const (
	PageMapMagic     uint32 = 0x41630E3B
	SectionMapMagic  uint32 = 0x4163003B
	DataPageMagic    uint32 = 0x4163043B
	DataPageMaskSeed uint32 = 0x4164536B
)

// Security flags of the R2004 file header.
const (
	SecurityEncryptData       uint32 = 0x01
	SecurityEncryptProperties uint32 = 0x02
	SecuritySignData          uint32 = 0x10
	SecurityAddTimestamp      uint32 = 0x20
)

// FileID is the identifier at the start of the decrypted R2004 page directory.
var FileID = [12]byte{'A', 'c', 'F', 's', 's', 'F', 'c', 'A', 'J', 'M', 'B', 0}

var le = endian.GetLittleEndianEngine()
