package section_test

import (
	"testing"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/bittest"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

func TestContext_ExtraSizeField(t *testing.T) {
	tests := []struct {
		ver   format.Version
		maint uint8
		want  bool
	}{
		{format.R14, 9, false},
		{format.R2000, 0, false},
		{format.R2004, 9, false},
		{format.R2010, 3, false},
		{format.R2010, 4, true},
		{format.R2013, 6, true},
		{format.R2018, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.ver.String(), func(t *testing.T) {
			ctx := section.Context{Version: tt.ver, Maintenance: tt.maint}
			require.Equal(t, tt.want, ctx.ExtraSizeField())
		})
	}
}

func TestContext_Frame(t *testing.T) {
	versions := []struct {
		ver   format.Version
		maint uint8
	}{
		{format.R13, 0},
		{format.R2000, 0},
		{format.R2004, 0},
		{format.R2010, 6},
		{format.R2018, 0},
	}

	for _, v := range versions {
		t.Run(v.ver.String(), func(t *testing.T) {
			body := bittest.NewWriter(t, v.ver).BS(42).BL(70000).B(true).Bytes()
			data := dwgtest.Framed(v.ver, v.maint, section.ClassesStart, section.ClassesEnd, body)
			ctx := section.Context{Version: v.ver, Maintenance: v.maint, Checksum: checksum.DWG()}

			c, f, err := ctx.OpenFrame(data, section.ClassesStart, "classes")
			require.NoError(t, err)
			require.Equal(t, uint32(len(body)), f.Size)
			require.True(t, f.Remaining(c))

			bs, err := c.ReadBitShort()
			require.NoError(t, err)
			require.Equal(t, int16(42), bs)
			bl, err := c.ReadBitLong()
			require.NoError(t, err)
			require.Equal(t, int32(70000), bl)
			_, err = c.ReadBit()
			require.NoError(t, err)
			require.False(t, f.Remaining(c))

			require.NoError(t, ctx.Close(c, f, checksum.Classes, section.ClassesEnd, "classes"))
		})
	}
}

func TestContext_FrameErrors(t *testing.T) {
	body := bittest.NewWriter(t, format.R2000).BS(42).BS(7).Bytes()
	good := dwgtest.Framed(format.R2000, 0, section.ClassesStart, section.ClassesEnd, body)
	ctx := section.Context{Version: format.R2000, Checksum: checksum.DWG()}

	t.Run("start sentinel", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[5] ^= 0x01
		_, _, err := ctx.OpenFrame(data, section.ClassesStart, "classes")
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})

	t.Run("declared size beyond buffer", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[section.SentinelSize] = 0xF0
		_, _, err := ctx.OpenFrame(data, section.ClassesStart, "classes")
		require.ErrorIs(t, err, errs.ErrTruncatedInput)
	})

	t.Run("short read", func(t *testing.T) {
		c, f, err := ctx.OpenFrame(good, section.ClassesStart, "classes")
		require.NoError(t, err)
		_, err = c.ReadBitShort()
		require.NoError(t, err)
		err = ctx.Close(c, f, checksum.Classes, section.ClassesEnd, "classes")
		require.ErrorIs(t, err, errs.ErrSizeAccountingMismatch)
	})

	t.Run("crc", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[section.SentinelSize+4+len(body)] ^= 0x01
		c, f, err := ctx.OpenFrame(data, section.ClassesStart, "classes")
		require.NoError(t, err)
		_, _ = c.ReadBitShort()
		_, _ = c.ReadBitShort()
		err = ctx.Close(c, f, checksum.Classes, section.ClassesEnd, "classes")
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("end sentinel", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[len(data)-1] ^= 0x01
		c, f, err := ctx.OpenFrame(data, section.ClassesStart, "classes")
		require.NoError(t, err)
		_, _ = c.ReadBitShort()
		_, _ = c.ReadBitShort()
		err = ctx.Close(c, f, checksum.Classes, section.ClassesEnd, "classes")
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})
}
