package compress

import (
	"bytes"
	"sync"
	"testing"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/stretchr/testify/require"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

func sectionLikeData() []byte {
	// Header variable sections are dominated by repeated small doubles and handles.
	var buf bytes.Buffer
	for i := 0; i < 512; i++ {
		buf.Write([]byte{0x40, 0x0A, byte(i), 0x00, 0x51, 0x02})
		buf.WriteString("ACAD_STANDARD")
	}

	return buf.Bytes()
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		ct   format.CompressionType
		want Codec
	}{
		{format.CompressionNone, NewNoOpCompressor()},
		{format.CompressionZstd, NewZstdCompressor()},
		{format.CompressionS2, NewS2Compressor()},
		{format.CompressionLZ4, NewLZ4Compressor()},
	}
	for _, tt := range tests {
		t.Run(tt.ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.ct, "section store")
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)

			builtin, err := GetCodec(tt.ct)
			require.NoError(t, err)
			require.IsType(t, tt.want, builtin)
		})
	}

	t.Run("invalid type", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0x7F), "section store")
		require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
		require.Contains(t, err.Error(), "section store")

		_, err = GetCodec(format.CompressionType(0))
		require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	})
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"sentinel", []byte{0xCF, 0x7B, 0x1F, 0x23, 0xFD, 0xDE, 0x38, 0xA9, 0x5F, 0x7C, 0x68, 0xB8, 0x4E, 0x6D, 0x33, 0x5F}},
		{"section_like", sectionLikeData()},
		{"zero_page", make([]byte, 0x7400)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not compressed data"),
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}
		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				_, err := codec.Decompress(input)
				require.Error(t, err)
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := sectionLikeData()

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			var wg sync.WaitGroup
			results := make([][]byte, numGoroutines)
			errors := make([]error, numGoroutines)

			for i := 0; i < numGoroutines; i++ {
				wg.Add(1)
				go func(idx int) {
					defer wg.Done()
					compressed, err := codec.Compress(data)
					if err != nil {
						errors[idx] = err
						return
					}
					results[idx], errors[idx] = codec.Decompress(compressed)
				}(i)
			}
			wg.Wait()

			for i := 0; i < numGoroutines; i++ {
				require.NoError(t, errors[i])
				require.Equal(t, data, results[i])
			}
		})
	}
}

func TestAllCodecs_DecompressSize(t *testing.T) {
	data := sectionLikeData()

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			out, err := codec.DecompressSize(compressed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, out)

			_, err = codec.DecompressSize(compressed, len(data)+1)
			require.ErrorIs(t, err, errs.ErrDecompressionShortfall)

			_, err = codec.DecompressSize(compressed, len(data)-1)
			require.ErrorIs(t, err, errs.ErrDecompressionOverrun)

			_, err = codec.DecompressSize(nil, 1)
			require.ErrorIs(t, err, errs.ErrDecompressionShortfall)
		})
	}
}

func TestLZ4Compressor_Incompressible(t *testing.T) {
	inputs := [][]byte{
		{1, 2, 3},
		[]byte("abcdefghijklmnopqrstuvwxyz0123456789"),
	}
	codec := NewLZ4Compressor()

	for _, in := range inputs {
		compressed, err := codec.Compress(in)
		require.NoError(t, err)
		require.NotEmpty(t, compressed)

		out, err := codec.DecompressSize(compressed, len(in))
		require.NoError(t, err)
		require.Equal(t, in, out)
	}
}

func TestCompressionStats(t *testing.T) {
	s := CompressionStats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, s.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	s.Add(CompressionStats{OriginalSize: 1000, CompressedSize: 750})
	require.Equal(t, int64(2000), s.OriginalSize)
	require.Equal(t, int64(1000), s.CompressedSize)

	var empty CompressionStats
	require.Zero(t, empty.CompressionRatio())
	require.Zero(t, empty.SpaceSavings())
}

func TestPageDecompressor(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		d, err := PageDecompressor(format.PageStored)
		require.NoError(t, err)

		out, err := d.DecompressSize([]byte{1, 2, 3}, 3)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, out)

		_, err = d.DecompressSize([]byte{1, 2, 3}, 2)
		require.ErrorIs(t, err, errs.ErrDecompressionOverrun)

		_, err = d.DecompressSize([]byte{1, 2, 3}, 4)
		require.ErrorIs(t, err, errs.ErrDecompressionShortfall)
	})

	t.Run("compressed", func(t *testing.T) {
		d, err := PageDecompressor(format.PageCompressed)
		require.NoError(t, err)
		require.IsType(t, LZ77Decompressor{}, d)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := PageDecompressor(format.PageCompression(7))
		require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
	})
}
