// Package sample builds complete, decodable drawing files for end-to-end
// tests of the facade and the command line tool.
package sample

import (
	"bytes"
	"testing"

	"github.com/arloliu/dwg/classes"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/headervars"
	"github.com/arloliu/dwg/internal/bittest"
	"github.com/arloliu/dwg/internal/dwgtest"
	"github.com/arloliu/dwg/section"
)

// CodePage is the code page written into every sample file header.
const CodePage = 30

// Values written by HeaderVars into otherwise zeroed settings.
const (
	LUnits        = 4
	CLayerHandle  = 0x10
	TdCreateDay   = 2451545
	ClassNumber   = 500
	ClassDXFName  = "LAYOUT"
	ObjectsRepeat = 3000
)

// HeaderVars writes every unconditional header variable of ver with a zero
// value, except LUNITS, CLAYER and TDCREATE.
func HeaderVars(t testing.TB, ver format.Version) []byte {
	t.Helper()

	w := bittest.NewWriter(t, ver)
	for _, f := range headervars.Fields(ver) {
		if f.Conditional {
			continue
		}
		switch f.Name {
		case "LUNITS":
			w.BS(LUnits)
			continue
		case "CLAYER":
			w.H(5, CLayerHandle)
			continue
		case "TDCREATE":
			w.BL(TdCreateDay).BL(0)
			continue
		}

		switch f.Code {
		case "B":
			w.B(false)
		case "BS":
			w.BS(0)
		case "BL":
			w.BL(0)
		case "BLL":
			w.BLL(0)
		case "BD":
			w.BD(0)
		case "RC":
			w.RC(0)
		case "TV":
			w.TV("")
		case "H":
			w.H(0, 0)
		case "CMC":
			w.CMC(0, 0, 0)
		case "2RD":
			w.Point2D([2]float64{})
		case "3BD":
			w.Point3D([3]float64{})
		case "JD":
			w.BL(0).BL(0)
		default:
			t.Fatalf("no encoder for %s", f.Code)
		}
	}

	return w.Bytes()
}

// Classes writes a class table holding a single LAYOUT class.
func Classes(t testing.TB, ver format.Version) []byte {
	t.Helper()

	w := bittest.NewWriter(t, ver)
	if ver.AtLeast(format.R2004) {
		w.BS(ClassNumber).RC(0).RC(0).B(true)
	}
	w.BS(ClassNumber).BS(0).TV("ObjectDBX Classes").TV("AcDbLayout").TV(ClassDXFName).B(false).BS(classes.ItemObject)
	if ver.AtLeast(format.R2004) {
		w.BL(2).BS(0x17).BS(0x1E).BL(0).BL(0)
	}

	return w.Bytes()
}

// Fixture holds the encoded sections of one sample drawing.
//
// The object map resolves handle 1 to 0x100, handle 2 to 0x140 and handle
// 0x20 to 0x400, spread over two blocks.
type Fixture struct {
	Version     format.Version
	Maintenance uint8

	Header   []byte
	Classes  []byte
	Handles  []byte
	Preview  []byte
	Template []byte
	Objects  []byte
}

// New encodes a fixture for the given revision.
func New(t testing.TB, ver format.Version, maint uint8) *Fixture {
	t.Helper()

	return &Fixture{
		Version:     ver,
		Maintenance: maint,
		Header:      dwgtest.Framed(ver, maint, section.HeaderVarsStart, section.HeaderVarsEnd, HeaderVars(t, ver)),
		Classes:     dwgtest.Framed(ver, maint, section.ClassesStart, section.ClassesEnd, Classes(t, ver)),
		Handles: dwgtest.ObjectMap(t,
			[]dwgtest.Delta{{Handle: 1, Location: 0x100}, {Handle: 1, Location: 0x40}},
			[]dwgtest.Delta{{Handle: 0x20, Location: 0x400}},
		),
		Preview: dwgtest.Preview(
			[]section.PreviewEntry{{Code: section.PreviewHeader, Start: 0, Size: 0}, {Code: section.PreviewBMP, Start: 0, Size: 4}},
			[]byte{'B', 'M', 0, 0},
		),
		Template: dwgtest.Template("ISO", 1),
		Objects:  bytes.Repeat([]byte("AcDbObject"), ObjectsRepeat),
	}
}

// LegacySections lists the sections of the legacy layout in file order.
func (f *Fixture) LegacySections() []dwgtest.LegacySection {
	return []dwgtest.LegacySection{
		{Number: uint8(format.SectionHeaderVars), Data: f.Header},
		{Number: uint8(format.SectionClasses), Data: f.Classes},
		{Number: uint8(format.SectionObjectMap), Data: f.Handles},
		{Number: uint8(format.SectionUnknown), Data: []byte{0xAA, 0xBB}},
		{Number: uint8(format.SectionMeasure), Data: []byte{1, 0, 0, 0}},
	}
}

// LegacyFile lays out an R13 to R2000 file.
func (f *Fixture) LegacyFile(t testing.TB) []byte {
	t.Helper()
	return dwgtest.LegacyFile(t, f.Version, f.Maintenance, CodePage, f.LegacySections(), f.Preview)
}

// PagedSections lists the named sections of the paged layout.
func (f *Fixture) PagedSections() []dwgtest.R2004Section {
	return []dwgtest.R2004Section{
		{Name: format.NameHeader, Data: f.Header, Compressed: true},
		{Name: format.NameClasses, Data: f.Classes, Compressed: true},
		{Name: format.NameHandles, Data: f.Handles},
		{Name: format.NameTemplate, Data: f.Template},
		{Name: format.NamePreview, Data: f.Preview, Compressed: true},
		{Name: format.NameObjects, Data: f.Objects, Compressed: true},
	}
}

// PagedFile lays out an R2004-family file.
func (f *Fixture) PagedFile(t testing.TB) []byte {
	t.Helper()
	return dwgtest.R2004File(t, f.Version, f.Maintenance, CodePage, f.PagedSections())
}

// File picks the layout matching the fixture's revision.
func (f *Fixture) File(t testing.TB) []byte {
	t.Helper()
	if f.Version.PageContainer() {
		return f.PagedFile(t)
	}

	return f.LegacyFile(t)
}
