package section_test

import (
	"testing"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tmpl, err := section.ParseTemplate(dwgtest.Template("metric site plan", 1))
	require.NoError(t, err)
	require.Equal(t, "metric site plan", tmpl.Description)
	require.True(t, tmpl.Metric())

	tmpl, err = section.ParseTemplate(dwgtest.Template("", 0))
	require.NoError(t, err)
	require.Empty(t, tmpl.Description)
	require.False(t, tmpl.Metric())

	_, err = section.ParseTemplate(dwgtest.Template("cut", 1)[:4])
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	m, err := section.ParseMeasurement([]byte{1, 0, 0, 0})
	require.NoError(t, err)
	require.True(t, m.Metric())

	_, err = section.ParseMeasurement([]byte{1})
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestParsePreview(t *testing.T) {
	entries := []section.PreviewEntry{
		{Code: section.PreviewHeader, Start: 0x200, Size: 0x50},
		{Code: section.PreviewBMP, Start: 0x250, Size: 0x10},
	}
	data := dwgtest.Preview(entries, make([]byte, 0x10))

	n, err := section.PreviewLength(data[:20])
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	p, err := section.ParsePreview(data)
	require.NoError(t, err)
	require.Equal(t, entries, p.Entries)
	require.Equal(t, uint32(1+2*9+0x10), p.Size)

	bmp, ok := p.Entry(section.PreviewBMP)
	require.True(t, ok)
	require.Equal(t, uint32(0x250), bmp.Start)
	_, ok = p.Entry(section.PreviewPNG)
	require.False(t, ok)

	t.Run("corrupt start sentinel", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[3] ^= 0x40
		_, err := section.ParsePreview(bad)
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})

	t.Run("corrupt end sentinel", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0x40
		_, err := section.ParsePreview(bad)
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})

	t.Run("entries overflow size", func(t *testing.T) {
		bad := dwgtest.Preview(nil, nil)
		bad[section.SentinelSize+4] = 5
		_, err := section.ParsePreview(bad)
		require.ErrorIs(t, err, errs.ErrSizeAccountingMismatch)
	})
}
