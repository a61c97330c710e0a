package store

import (
	"bytes"
	"testing"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/hash"
	"github.com/stretchr/testify/require"
)

func sampleSection() []byte {
	var buf bytes.Buffer
	for i := 0; i < 256; i++ {
		buf.Write([]byte{0xCF, 0x7B, byte(i), 0x00})
		buf.WriteString("AcDbBlockTableRecord")
	}

	return buf.Bytes()
}

func TestStore(t *testing.T) {
	algorithms := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, algo := range algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			s, err := New(algo)
			require.NoError(t, err)
			require.Equal(t, algo, s.Algorithm())

			data := sampleSection()
			require.NoError(t, s.Put(format.NameHeader, data))
			require.NoError(t, s.Put(format.NameClasses, []byte{1, 2, 3}))

			// The store keeps its own copy.
			data[0] ^= 0xFF
			got, err := s.Bytes(format.NameHeader)
			require.NoError(t, err)
			data[0] ^= 0xFF
			require.Equal(t, data, got)

			// Callers own the returned buffer.
			got[1] ^= 0xFF
			again, err := s.Bytes(format.NameHeader)
			require.NoError(t, err)
			require.Equal(t, data, again)

			fp, err := s.Fingerprint(format.NameHeader)
			require.NoError(t, err)
			require.Equal(t, hash.Fingerprint(data), fp)

			size, ok := s.Size(format.NameClasses)
			require.True(t, ok)
			require.Equal(t, 3, size)

			require.Equal(t, []string{format.NameHeader, format.NameClasses}, s.Names())
			require.Equal(t, 2, s.Len())

			stats := s.Stats()
			require.Equal(t, algo, stats.Algorithm)
			require.Equal(t, int64(len(data)+3), stats.OriginalSize)
			if algo != format.CompressionNone {
				require.Less(t, stats.CompressionRatio(), 1.0)
			}
		})
	}
}

func TestStore_Replace(t *testing.T) {
	s, err := New(format.CompressionNone)
	require.NoError(t, err)

	require.NoError(t, s.Put(format.NamePreview, []byte{1, 2, 3, 4}))
	require.NoError(t, s.Put(format.NamePreview, []byte{5, 6}))

	got, err := s.Bytes(format.NamePreview)
	require.NoError(t, err)
	require.Equal(t, []byte{5, 6}, got)
	require.Equal(t, []string{format.NamePreview}, s.Names())
	require.Equal(t, int64(2), s.Stats().OriginalSize)
	require.Equal(t, int64(2), s.Stats().CompressedSize)
}

func TestStore_Errors(t *testing.T) {
	_, err := New(format.CompressionType(0x7F))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)

	s, err := New(format.CompressionS2)
	require.NoError(t, err)

	require.ErrorIs(t, s.Put("", []byte{1}), errs.ErrInvalidName)

	_, err = s.Bytes(format.NameTemplate)
	require.ErrorIs(t, err, errs.ErrSectionNotRetained)
	_, err = s.Fingerprint(format.NameTemplate)
	require.ErrorIs(t, err, errs.ErrSectionNotRetained)
	_, ok := s.Size(format.NameTemplate)
	require.False(t, ok)

	t.Run("corrupted entry", func(t *testing.T) {
		require.NoError(t, s.Put(format.NameHandles, sampleSection()))
		e := s.sections[format.NameHandles]
		e.fingerprint++
		s.sections[format.NameHandles] = e

		_, err := s.Bytes(format.NameHandles)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("wrong recorded size", func(t *testing.T) {
		require.NoError(t, s.Put(format.NameClasses, sampleSection()))
		e := s.sections[format.NameClasses]
		e.size--
		s.sections[format.NameClasses] = e

		_, err := s.Bytes(format.NameClasses)
		require.ErrorIs(t, err, errs.ErrDecompressionOverrun)
	})
}

func BenchmarkStore_Put(b *testing.B) {
	data := sampleSection()
	for _, algo := range []format.CompressionType{format.CompressionNone, format.CompressionS2, format.CompressionZstd} {
		b.Run(algo.String(), func(b *testing.B) {
			s, err := New(algo)
			require.NoError(b, err)
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for _i := 0; _i < b.N; _i++ {
				_ = s.Put(format.NameHeader, data)
			}
		})
	}
}
