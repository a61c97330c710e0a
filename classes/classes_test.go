package classes

import (
	"testing"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/bittest"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/internal/hash"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

func sampleClasses() []Class {
	return []Class{
		{
			Number: 500, ProxyFlags: 0, AppName: "ObjectDBX Classes", CppName: "AcDbDictionaryWithDefault",
			DXFName: "ACDBDICTIONARYWDFLT", ItemClassID: ItemObject,
			InstanceCount: 1, DWGVersion: 0x17, MaintenanceVersion: 0x1E,
		},
		{
			Number: 501, ProxyFlags: 0x401, AppName: "ObjectDBX Classes", CppName: "AcDbWipeout",
			DXFName: "WIPEOUT", Zombie: true, ItemClassID: ItemEntity,
			InstanceCount: 12, DWGVersion: 0x17, MaintenanceVersion: 0x1E,
		},
		{
			Number: 502, ProxyFlags: 0x481, AppName: "AcDbLayout", CppName: "AcDbLayout",
			DXFName: "LAYOUT", ItemClassID: ItemObject,
		},
	}
}

func encodeClasses(t *testing.T, ver format.Version, classes []Class) []byte {
	w := bittest.NewWriter(t, ver)
	if ver.AtLeast(format.R2004) {
		w.BS(int16(499 + len(classes))).RC(0).RC(0).B(true)
	}
	for _, c := range classes {
		w.BS(c.Number).BS(int16(c.ProxyFlags)).TV(c.AppName).TV(c.CppName).TV(c.DXFName).B(c.Zombie).BS(c.ItemClassID)
		if ver.AtLeast(format.R2004) {
			w.BL(c.InstanceCount).BS(c.DWGVersion).BS(c.MaintenanceVersion).BL(c.Unknown1).BL(c.Unknown2)
		}
	}

	return w.Bytes()
}

func TestDecode(t *testing.T) {
	versions := []struct {
		ver   format.Version
		maint uint8
	}{
		{format.R13, 0},
		{format.R14, 0},
		{format.R2000, 0},
		{format.R2004, 0},
		{format.R2010, 6},
		{format.R2013, 1},
		{format.R2018, 0},
	}

	for _, v := range versions {
		t.Run(v.ver.String(), func(t *testing.T) {
			want := sampleClasses()
			if !v.ver.AtLeast(format.R2004) {
				for i := range want {
					want[i].InstanceCount, want[i].DWGVersion, want[i].MaintenanceVersion = 0, 0, 0
				}
			}

			data := dwgtest.Framed(v.ver, v.maint, section.ClassesStart, section.ClassesEnd, encodeClasses(t, v.ver, want))
			ctx := section.Context{Version: v.ver, Maintenance: v.maint, Checksum: checksum.DWG()}

			reg, err := Decode(data, ctx)
			require.NoError(t, err)
			require.Equal(t, want, reg.All())
			require.Equal(t, 3, reg.Len())
			if v.ver.AtLeast(format.R2004) {
				require.Equal(t, int16(502), reg.MaxClassNumber)
			}

			wipeout, ok := reg.ByDXFName("WIPEOUT")
			require.True(t, ok)
			require.True(t, wipeout.IsEntity())
			require.True(t, wipeout.Zombie)

			layout, ok := reg.ByNumber(502)
			require.True(t, ok)
			require.Equal(t, "AcDbLayout", layout.CppName)

			byID, err := reg.ByNameID(hash.ID("LAYOUT"))
			require.NoError(t, err)
			require.Equal(t, layout, byID)

			folded, ok := reg.ByDXFName("Layout")
			require.True(t, ok)
			require.Equal(t, layout, folded)

			_, ok = reg.ByDXFName("MLEADERSTYLE")
			require.False(t, ok)
			require.Equal(t, []string{"ACDBDICTIONARYWDFLT", "WIPEOUT", "LAYOUT"}, reg.DXFNames())
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	data := dwgtest.Framed(format.R2000, 0, section.ClassesStart, section.ClassesEnd, nil)
	reg, err := Decode(data, section.Context{Version: format.R2000})
	require.NoError(t, err)
	require.Equal(t, 0, reg.Len())
}

func TestDecode_Errors(t *testing.T) {
	body := encodeClasses(t, format.R2000, sampleClasses()[:1])
	good := dwgtest.Framed(format.R2000, 0, section.ClassesStart, section.ClassesEnd, body)
	ctx := section.Context{Version: format.R2000, Checksum: checksum.DWG()}

	t.Run("start sentinel", func(t *testing.T) {
		for i := 0; i < section.SentinelSize; i++ {
			data := append([]byte(nil), good...)
			data[i] ^= 0x80
			_, err := Decode(data, ctx)
			require.ErrorIs(t, err, errs.ErrSentinelMismatch, "byte %d", i)
		}
	})

	t.Run("end sentinel", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[len(data)-8] ^= 0x80
		_, err := Decode(data, ctx)
		require.ErrorIs(t, err, errs.ErrSentinelMismatch)
	})

	t.Run("record crosses declared end", func(t *testing.T) {
		data := append([]byte(nil), section.ClassesStart[:]...)
		data = append(data, byte(len(body)-1), 0, 0, 0)
		data = append(data, body...)
		data = append(data, 0, 0)
		data = append(data, section.ClassesEnd[:]...)

		_, err := Decode(data, section.Context{Version: format.R2000})
		require.ErrorIs(t, err, errs.ErrSizeAccountingMismatch)
	})

	t.Run("checksum", func(t *testing.T) {
		data := append([]byte(nil), good...)
		data[section.SentinelSize+4+len(body)] ^= 0x01

		_, err := Decode(data, section.Context{Version: format.R2000})
		require.NoError(t, err)

		_, err = Decode(data, ctx)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)

		var de *errs.DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "classes", de.Component)
	})
}

func TestRegistry_Collision(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.add(Class{Number: 500, DXFName: "SCALE"}))
	require.ErrorIs(t, reg.add(Class{Number: 501, DXFName: "SCALE"}), errs.ErrDuplicateName)
	require.ErrorIs(t, reg.add(Class{Number: 502}), errs.ErrInvalidName)
	require.Equal(t, 3, reg.Len())

	cls, ok := reg.ByDXFName("SCALE")
	require.True(t, ok)
	require.Equal(t, int16(500), cls.Number)
	require.False(t, reg.HasCollision())

	_, err := reg.ByNameID(hash.ID("VISUALSTYLE"))
	require.ErrorIs(t, err, errs.ErrNameNotFound)
}
