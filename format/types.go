package format

// CompressionType selects a general-purpose codec for sections kept in memory
// after decoding.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone keeps section bytes as read.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a codec name (as printed by String, case-sensitive
// lower or title case) to its CompressionType.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "none", "None":
		return CompressionNone, true
	case "zstd", "Zstd":
		return CompressionZstd, true
	case "s2", "S2":
		return CompressionS2, true
	case "lz4", "LZ4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// PageCompression is the compression type stored in a section page header.
type PageCompression uint32

const (
	PageStored     PageCompression = 1 // page bytes are stored as-is
	PageCompressed PageCompression = 2 // page bytes use the LZ77 page codec
)

func (p PageCompression) String() string {
	switch p {
	case PageStored:
		return "Stored"
	case PageCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}
