package section_test

import (
	"testing"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

func legacyLocators() []section.SectionLocator {
	return []section.SectionLocator{
		{Number: 0, Seeker: 0x58, Size: 0x2C0},
		{Number: 1, Seeker: 0x318, Size: 0x60},
		{Number: 2, Seeker: 0x378, Size: 0x1F},
	}
}

func TestParseFileHeader_Legacy(t *testing.T) {
	data := dwgtest.LegacyHeader(t, format.R2000, 0, 30, 0xDEADBEEF, legacyLocators())

	n, err := section.HeaderLength(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	for name, cs := range map[string]checksum.Strategy{"none": checksum.None(), "dwg": checksum.DWG()} {
		t.Run(name, func(t *testing.T) {
			hdr, err := section.ParseFileHeader(data, cs)
			require.NoError(t, err)
			require.True(t, hdr.Legacy())
			require.Equal(t, format.R2000, hdr.Version)
			require.Equal(t, uint16(30), hdr.CodePage)
			require.Equal(t, uint8(1), hdr.Flag)
			require.Equal(t, uint32(0xDEADBEEF), hdr.ImageSeeker)
			require.Equal(t, uint32(0xDEADBEEF), hdr.PreviewSeeker())
			require.Len(t, hdr.Locators, 3)
			require.Equal(t, legacyLocators(), hdr.Locators)

			loc, ok := hdr.Locator(format.SectionClasses)
			require.True(t, ok)
			require.Equal(t, uint32(0x318), loc.Seeker)
			_, ok = hdr.Locator(format.SectionMeasure)
			require.False(t, ok)
		})
	}
}

func TestParseFileHeader_LegacyErrors(t *testing.T) {
	good := dwgtest.LegacyHeader(t, format.R14, 0, 30, 0, legacyLocators())

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		cs      checksum.Strategy
		wantErr error
	}{
		{
			name:    "corrupt trailer",
			mutate:  func(b []byte) []byte { b[len(b)-3] ^= 0xFF; return b },
			cs:      checksum.None(),
			wantErr: errs.ErrSentinelMismatch,
		},
		{
			name:    "corrupt locator with crc check",
			mutate:  func(b []byte) []byte { b[section.LegacyFixedSize+2] ^= 0x01; return b },
			cs:      checksum.DWG(),
			wantErr: errs.ErrChecksumMismatch,
		},
		{
			name:    "truncated",
			mutate:  func(b []byte) []byte { return b[:len(b)-4] },
			cs:      checksum.None(),
			wantErr: errs.ErrTruncatedInput,
		},
		{
			name:    "unknown version",
			mutate:  func(b []byte) []byte { copy(b, "AC1099"); return b },
			cs:      checksum.None(),
			wantErr: errs.ErrUnsupportedVersion,
		},
		{
			name:    "absurd record count",
			mutate:  func(b []byte) []byte { b[0x15] = 0xFF; return b },
			cs:      checksum.None(),
			wantErr: errs.ErrMalformedField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.mutate(append([]byte(nil), good...))
			_, err := section.ParseFileHeader(data, tt.cs)
			require.ErrorIs(t, err, tt.wantErr)

			var de *errs.DecodeError
			require.ErrorAs(t, err, &de)
			require.Equal(t, "file header", de.Component)
		})
	}

	t.Run("crc ignored without strategy", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[section.LegacyFixedSize+2] ^= 0x01
		_, err := section.ParseFileHeader(data, nil)
		require.NoError(t, err)
	})
}

func TestParseFileHeader_R2004(t *testing.T) {
	dir := section.PageDirectory{
		RootGap:             0,
		LeftGap:             0,
		RightGap:            0,
		Unknown:             1,
		LastPageID:          7,
		LastPageEndAddress:  0x4C80,
		SecondHeaderAddress: 0x4D00,
		SectionPageAmount:   7,
		PageMapID:           7,
		PageMapAddress:      0x4B00,
		SectionMapID:        6,
		PageArraySize:       7,
	}

	for _, ver := range []format.Version{format.R2004, format.R2010, format.R2013, format.R2018} {
		t.Run(ver.String(), func(t *testing.T) {
			data := dwgtest.R2004Header(t, ver, 5, 30, 0, dir)

			n, err := section.HeaderLength(data)
			require.NoError(t, err)
			require.Equal(t, section.R2004HeaderSize, n)

			hdr, err := section.ParseFileHeader(data, checksum.DWG())
			require.NoError(t, err)
			require.False(t, hdr.Legacy())
			require.Equal(t, ver, hdr.Version)
			require.Equal(t, uint8(5), hdr.Maintenance)
			require.Equal(t, uint16(30), hdr.CodePage)
			require.False(t, hdr.Encrypted())

			got := *hdr.Directory
			got.CRC32 = 0
			require.Equal(t, dir, got)
			require.Equal(t, uint64(0x4C00), hdr.Directory.PageMapOffset())
		})
	}

	t.Run("bad file id", func(t *testing.T) {
		data := dwgtest.R2004Header(t, format.R2004, 0, 30, 0, dir)
		data[section.R2004EncryptedOffset] ^= 0x01
		_, err := section.ParseFileHeader(data, checksum.None())
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})

	t.Run("directory crc", func(t *testing.T) {
		data := dwgtest.R2004Header(t, format.R2004, 0, 30, 0, dir)
		data[section.R2004EncryptedOffset+0x40] ^= 0x01

		_, err := section.ParseFileHeader(data, checksum.None())
		require.NoError(t, err)

		_, err = section.ParseFileHeader(data, checksum.DWG())
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("security flags", func(t *testing.T) {
		data := dwgtest.R2004Header(t, format.R2004, 0, 30, section.SecurityEncryptData, dir)
		hdr, err := section.ParseFileHeader(data, checksum.None())
		require.NoError(t, err)
		require.True(t, hdr.Encrypted())
	})
}

func TestHeaderLength(t *testing.T) {
	t.Run("R2007 unsupported", func(t *testing.T) {
		prefix := make([]byte, section.LegacyFixedSize)
		copy(prefix, "AC1021")
		_, err := section.HeaderLength(prefix)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("short prefix", func(t *testing.T) {
		_, err := section.HeaderLength([]byte("AC1015"))
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("legacy record count", func(t *testing.T) {
		data := dwgtest.LegacyHeader(t, format.R13, 0, 30, 0, make([]section.SectionLocator, 5))
		n, err := section.HeaderLength(data[:section.LegacyFixedSize])
		require.NoError(t, err)
		require.Equal(t, section.LegacyFixedSize+5*section.LegacyRecordSize+2+section.SentinelSize, n)
	})
}
