package compress

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// NoOpCompressor passes bytes through unchanged. It retains sections as read
// and also serves stored (uncompressed) data pages, whose length is checked
// against the page header.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice without copying.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns data if it is exactly size bytes long.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkSize("stored", len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}

// checkSize reports a produced length that differs from the declared one.
func checkSize(what string, got, want int) error {
	switch {
	case got > want:
		return fmt.Errorf("%w: %s data holds %d bytes, expected %d", errs.ErrDecompressionOverrun, what, got, want)
	case got < want:
		return fmt.Errorf("%w: %s data holds %d bytes, expected %d", errs.ErrDecompressionShortfall, what, got, want)
	}

	return nil
}
