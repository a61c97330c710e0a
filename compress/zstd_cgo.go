//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const cgoZstdLevel = 3

// Compress encodes data with the cgo zstd binding.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, cgoZstdLevel), nil
}

// decompressInto appends the decoded frame to dst.
func (c ZstdCompressor) decompressInto(dst, data []byte) ([]byte, error) {
	out, err := gozstd.Decompress(dst, data)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}

	return out, nil
}
