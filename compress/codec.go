package compress

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
)

// Compressor compresses a block of bytes.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller unless documented otherwise
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a block of bytes produced by the matching compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the input is corrupted or uses an incompatible format.
	// The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is a Decompressor for formats that record the expected
// output size outside of the compressed stream.
type SizedDecompressor interface {
	Decompressor

	// DecompressSize decompresses data and verifies that exactly size bytes were
	// produced. It returns errs.ErrDecompressionOverrun or
	// errs.ErrDecompressionShortfall on a mismatch.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// Codec is a retention codec. The store always knows the original length of
// what it compressed, so every codec can expand to an exact size.
type Codec interface {
	Compressor
	SizedDecompressor
}

// CompressionStats describes the effect of compressing one block.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// Add accumulates the sizes of other into s.
func (s *CompressionStats) Add(other CompressionStats) {
	s.OriginalSize += other.OriginalSize
	s.CompressedSize += other.CompressedSize
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: errs.ErrInvalidCompressionType for unknown types
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s compression %s", errs.ErrInvalidCompressionType, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}

// PageDecompressor returns the decompressor for a section page compression type.
func PageDecompressor(ct format.PageCompression) (SizedDecompressor, error) {
	switch ct {
	case format.PageStored:
		return NewNoOpCompressor(), nil
	case format.PageCompressed:
		return NewLZ77Decompressor(), nil
	default:
		return nil, fmt.Errorf("%w: page compression %d", errs.ErrInvalidCompressionType, uint32(ct))
	}
}
