package compress

// ZstdCompressor retains sections with Zstandard.
//
// It has the best ratio of the retention codecs and suits large drawings
// whose object data is kept for a long time but read rarely. The pure Go
// encoder is used unless the gozstd build tag selects the cgo binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// DecompressSize decodes a Zstandard frame whose content must be size bytes.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("zstd", 0, size)
	}

	out, err := c.decompressInto(make([]byte, 0, size), data)
	if err != nil {
		return nil, err
	}
	if err := checkSize("zstd", len(out), size); err != nil {
		return nil, err
	}

	return out, nil
}

// Decompress decodes a Zstandard frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.decompressInto(nil, data)
}
