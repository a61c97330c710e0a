package compress

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
	"github.com/klauspost/compress/s2"
)

// S2Compressor retains sections with S2, the fastest of the codecs to expand.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decodes one S2 block whose decoded length must be size.
// The length recorded in the block header is checked before any output is
// allocated.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("s2", 0, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2 block: %w", errs.ErrMalformedField, err)
	}
	if err := checkSize("s2", n, size); err != nil {
		return nil, err
	}

	return s2.Decode(make([]byte, size), data)
}
