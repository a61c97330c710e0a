package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/dwg/errs"
	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4Expansion caps the guessed output size when an LZ4 block is expanded
// without a known length.
const maxLZ4Expansion = 128 << 20

// LZ4Compressor retains sections as LZ4 blocks. Blocks do not record their
// decoded length, so DecompressSize is the preferred way to expand them.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress encodes data as one LZ4 block. Empty input yields nil.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return literalBlock(data), nil
	}

	return dst[:n], nil
}

// literalBlock encodes data as a single literal run, the block form for
// input CompressBlock reports as incompressible.
func literalBlock(data []byte) []byte {
	n := len(data)
	out := make([]byte, 0, n+n/255+2)
	if n < 0x0F {
		out = append(out, byte(n<<4))
	} else {
		out = append(out, 0xF0)
		rest := n - 0x0F
		for ; rest >= 0xFF; rest -= 0xFF {
			out = append(out, 0xFF)
		}
		out = append(out, byte(rest))
	}

	return append(out, data...)
}

// DecompressSize expands an LZ4 block into exactly size bytes.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize("lz4", 0, size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, fmt.Errorf("%w: lz4 block expands past %d bytes", errs.ErrDecompressionOverrun, size)
	}
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if err := checkSize("lz4", n, size); err != nil {
		return nil, err
	}

	return buf, nil
}

// Decompress expands an LZ4 block of unknown length, doubling the output
// buffer from 4x the input until the block fits or maxLZ4Expansion is hit.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= maxLZ4Expansion; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}

		return buf[:n], nil
	}

	return nil, fmt.Errorf("%w: lz4 block expands past %d bytes", errs.ErrDecompressionOverrun, maxLZ4Expansion)
}
