package dwg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/internal/dwgtest/sample"
	"github.com/arloliu/dwg/internal/hash"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func requireCommon(t *testing.T, doc *Document, ver format.Version) {
	t.Helper()

	require.Equal(t, ver, doc.Version)
	require.Equal(t, ver, doc.FileHeader.Version)
	require.Equal(t, uint16(sample.CodePage), doc.FileHeader.CodePage)

	require.Equal(t, int16(sample.LUnits), doc.Variables.LUnits)
	require.Equal(t, uint64(sample.CLayerHandle), doc.Variables.CLayer.Value)
	require.Equal(t, int32(sample.TdCreateDay), doc.Variables.TdCreate.Day)

	require.Equal(t, 1, doc.Classes.Len())
	layout, ok := doc.Classes.ByDXFName("LAYOUT")
	require.True(t, ok)
	require.Equal(t, int16(500), layout.Number)
	byID, err := doc.Classes.ByNameID(hash.ID("LAYOUT"))
	require.NoError(t, err)
	require.Equal(t, layout, byID)

	require.Equal(t, 3, doc.ObjectMap.Len())
	require.Equal(t, 2, doc.ObjectMap.Blocks())
	loc, ok := doc.ObjectMap.Lookup(2)
	require.True(t, ok)
	require.Equal(t, int64(0x140), loc)
	loc, ok = doc.ObjectMap.Lookup(0x20)
	require.True(t, ok)
	require.Equal(t, int64(0x400), loc)

	require.NotNil(t, doc.Template)
	require.True(t, doc.Template.Metric())

	require.NotNil(t, doc.Preview)
	bmp, ok := doc.Preview.Entry(section.PreviewBMP)
	require.True(t, ok)
	require.Equal(t, uint32(4), bmp.Size)
}

func TestDecode_Legacy(t *testing.T) {
	versions := []format.Version{format.R13, format.R14, format.R2000}

	for _, ver := range versions {
		t.Run(ver.String(), func(t *testing.T) {
			f := sample.New(t, ver, 0)
			data := f.LegacyFile(t)

			doc, err := Decode(bytes.NewReader(data), int64(len(data)), WithChecksum(checksum.DWG()))
			require.NoError(t, err)
			requireCommon(t, doc, ver)

			require.True(t, doc.FileHeader.Legacy())
			require.Len(t, doc.FileHeader.Locators, 5)
			require.Empty(t, doc.Pages)
			require.Empty(t, doc.Sections)

			require.Equal(t, []string{
				format.NameHeader, format.NameClasses, format.NameHandles, "AcDb:Unknown", format.NameTemplate, format.NamePreview,
			}, doc.SectionNames())

			got, err := doc.SectionBytes(format.NameHandles)
			require.NoError(t, err)
			require.Equal(t, f.Handles, got)

			fp, err := doc.SectionFingerprint(format.NameHeader)
			require.NoError(t, err)
			require.Equal(t, hash.Fingerprint(f.Header), fp)
		})
	}
}

func TestDecode_Paged(t *testing.T) {
	versions := []struct {
		ver   format.Version
		maint uint8
	}{
		{format.R2004, 0},
		{format.R2010, 3},
		{format.R2010, 6},
		{format.R2013, 1},
		{format.R2018, 0},
	}

	for _, v := range versions {
		t.Run(v.ver.String(), func(t *testing.T) {
			f := sample.New(t, v.ver, v.maint)
			data := f.PagedFile(t)

			doc, err := Decode(bytes.NewReader(data), int64(len(data)), WithChecksum(checksum.DWG()))
			require.NoError(t, err)
			requireCommon(t, doc, v.ver)

			require.False(t, doc.FileHeader.Legacy())
			require.Len(t, doc.Sections, 6)
			// Two system pages, one data page per small section and two for
			// the objects section.
			require.Len(t, doc.Pages, 2+5+2)
			require.Equal(t, section.SystemPage, doc.Pages[0].Kind)
			require.Equal(t, section.SystemPage, doc.Pages[1].Kind)
			for _, p := range doc.Pages {
				require.Nil(t, p.Payload)
			}
			require.Len(t, doc.PageMap, 2+5+2)

			objects, err := doc.SectionBytes(format.NameObjects)
			require.NoError(t, err)
			require.Equal(t, f.Objects, objects)

			names := doc.SectionNames()
			require.Len(t, names, 6)
			require.Equal(t, format.NameHeader, names[0])
		})
	}
}

func TestDecode_Retention(t *testing.T) {
	f := sample.New(t, format.R2004, 0)
	data := f.PagedFile(t)

	doc, err := Decode(bytes.NewReader(data), int64(len(data)), WithRetention(format.CompressionZstd))
	require.NoError(t, err)

	stats := doc.RetentionStats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Less(t, stats.CompressionRatio(), 1.0)

	objects, err := doc.SectionBytes(format.NameObjects)
	require.NoError(t, err)
	require.Equal(t, f.Objects, objects)

	_, err = doc.SectionBytes(format.NameSummaryInfo)
	require.ErrorIs(t, err, errs.ErrSectionNotRetained)

	_, err = Decode(bytes.NewReader(data), int64(len(data)), WithRetention(format.CompressionType(0x7F)))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestReadFileHeaderThenBody(t *testing.T) {
	f := sample.New(t, format.R2013, 1)
	data := f.PagedFile(t)
	src := bytes.NewReader(data)

	hdr, err := ReadFileHeader(src, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, format.R2013, hdr.Version)
	require.NotNil(t, hdr.Directory)

	doc, err := ReadBody(src, int64(len(data)), hdr)
	require.NoError(t, err)
	require.Same(t, hdr, doc.FileHeader)
	requireCommon(t, doc, format.R2013)

	_, err = ReadBody(src, int64(len(data)), nil)
	require.ErrorIs(t, err, errs.ErrMalformedField)
	var de *errs.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "file header", de.Component)
}

func TestDecodeFile(t *testing.T) {
	f := sample.New(t, format.R14, 0)
	path := filepath.Join(t.TempDir(), "sample.dwg")
	require.NoError(t, os.WriteFile(path, f.LegacyFile(t), 0o600))

	var logs bytes.Buffer
	logger := logrus.New()
	logger.Out = &logs
	logger.Level = logrus.DebugLevel

	doc, err := DecodeFile(path, WithLogger(logger), WithCodePage(false))
	require.NoError(t, err)
	requireCommon(t, doc, format.R14)
	require.Contains(t, logs.String(), "file header parsed")
	require.Contains(t, logs.String(), "decode finished")
	require.Contains(t, logs.String(), "level=debug")
	require.Contains(t, logs.String(), "retained_sections=")

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.dwg"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  format.Version
		err   error
	}{
		{"R14", []byte("AC1014\x00\x00"), format.R14, nil},
		{"R2007", []byte("AC1021"), format.R2007, nil},
		{"R2018", []byte("AC1032 trailing"), format.R2018, nil},
		{"unknown token", []byte("AC9999"), format.VersionUnknown, errs.ErrUnsupportedVersion},
		{"short", []byte("AC10"), format.VersionUnknown, errs.ErrTruncatedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectVersion(bytes.NewReader(tt.input))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	decode := func(data []byte, opts ...DecoderOption) error {
		_, err := Decode(bytes.NewReader(data), int64(len(data)), opts...)
		return err
	}

	t.Run("R2007 container", func(t *testing.T) {
		data := make([]byte, 0x100)
		copy(data, "AC1021")
		require.ErrorIs(t, decode(data), errs.ErrUnsupportedVersion)
	})

	t.Run("truncated legacy file", func(t *testing.T) {
		data := sample.New(t, format.R2000, 0).LegacyFile(t)
		require.ErrorIs(t, decode(data[:len(data)-40]), errs.ErrTruncatedInput)
	})

	t.Run("truncated paged file", func(t *testing.T) {
		data := sample.New(t, format.R2004, 0).PagedFile(t)
		require.ErrorIs(t, decode(data[:len(data)-8]), errs.ErrTruncatedInput)
	})

	t.Run("too short for a header", func(t *testing.T) {
		require.ErrorIs(t, decode([]byte("AC1015")), errs.ErrTruncatedInput)
	})

	t.Run("header variable checksum", func(t *testing.T) {
		f := sample.New(t, format.R14, 0)
		f.Header[len(f.Header)-section.SentinelSize-1] ^= 0xFF
		data := f.LegacyFile(t)

		require.NoError(t, decode(data))

		err := decode(data, WithChecksum(checksum.DWG()))
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "header variables", de.Component)
	})

	t.Run("missing legacy object map", func(t *testing.T) {
		f := sample.New(t, format.R14, 0)
		data := dwgtest.LegacyFile(t, f.Version, 0, sample.CodePage, []dwgtest.LegacySection{
			{Number: uint8(format.SectionHeaderVars), Data: f.Header},
			{Number: uint8(format.SectionClasses), Data: f.Classes},
		}, nil)
		require.ErrorIs(t, decode(data), errs.ErrSectionNotFound)
	})

	t.Run("missing paged handles", func(t *testing.T) {
		f := sample.New(t, format.R2004, 0)
		sections := f.PagedSections()
		sections = append(sections[:2], sections[3:]...)
		data := dwgtest.R2004File(t, f.Version, 0, sample.CodePage, sections)
		require.ErrorIs(t, decode(data), errs.ErrSectionNotFound)
	})

	t.Run("encrypted header section", func(t *testing.T) {
		f := sample.New(t, format.R2004, 0)
		sections := f.PagedSections()
		sections[0].Encrypted = true
		data := dwgtest.R2004File(t, f.Version, 0, sample.CodePage, sections)
		require.ErrorIs(t, decode(data), errs.ErrEncryptedSection)
	})

	t.Run("section page limit above data page size", func(t *testing.T) {
		f := sample.New(t, format.R2004, 0)
		sections := f.PagedSections()
		sections[5].DeclaredSize = 1 << 40
		sections[5].PageLimit = 0xFFFFFFFF
		data := dwgtest.R2004File(t, f.Version, 0, sample.CodePage, sections)

		err := decode(data)
		require.ErrorIs(t, err, errs.ErrMalformedField)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, format.NameObjects, de.Component)
	})

	t.Run("section size beyond its pages", func(t *testing.T) {
		f := sample.New(t, format.R2004, 0)
		sections := f.PagedSections()
		sections[5].DeclaredSize = 3 * dwgtest.MaxPageSize
		data := dwgtest.R2004File(t, f.Version, 0, sample.CodePage, sections)
		require.ErrorIs(t, decode(data), errs.ErrSizeAccountingMismatch)
	})

	t.Run("sentinel in assembled section", func(t *testing.T) {
		f := sample.New(t, format.R2004, 0)
		f.Classes[3] ^= 0x10
		data := f.PagedFile(t)

		err := decode(data)
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "classes", de.Component)
	})
}

func BenchmarkDecode_Paged(b *testing.B) {
	f := sample.New(b, format.R2004, 0)
	data := f.PagedFile(b)
	src := bytes.NewReader(data)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		if _, err := Decode(src, int64(len(data))); err != nil {
			b.Fatal(err)
		}
	}
}
