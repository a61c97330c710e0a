package dwgtest

import (
	"bytes"
	"testing"

	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

// MaxPageSize is the decompressed page size used by R2004 fixtures.
const MaxPageSize = section.MaxDataPageSize

// R2004Section is a logical section placed into an R2004 file.
type R2004Section struct {
	Name       string
	Data       []byte
	Compressed bool
	Encrypted  bool

	// DeclaredSize and PageLimit override the size and per-page limit written
	// to the section map when non-zero.
	DeclaredSize uint64
	PageLimit    uint32
}

// R2004Header encodes the 0x100-byte header with an encrypted page directory.
func R2004Header(t testing.TB, ver format.Version, maint uint8, codePage uint16, security uint32, dir section.PageDirectory) []byte {
	t.Helper()

	out := make([]byte, section.R2004HeaderSize)
	copy(out, versionToken(t, ver))
	out[0x0B] = maint
	out[0x0C] = 3
	out[0x11] = 0x1F
	out[0x12] = maint
	le.PutUint16(out[0x13:], codePage)
	le.PutUint32(out[0x18:], security)
	le.PutUint32(out[0x28:], 0x80)

	block := make([]byte, section.R2004EncryptedSize)
	copy(block, section.FileID[:])
	le.PutUint32(block[0x0C:], 0x00)
	le.PutUint32(block[0x10:], 0x6C)
	le.PutUint32(block[0x14:], 0x04)
	le.PutUint32(block[0x18:], dir.RootGap)
	le.PutUint32(block[0x1C:], dir.LeftGap)
	le.PutUint32(block[0x20:], dir.RightGap)
	le.PutUint32(block[0x24:], dir.Unknown)
	le.PutUint32(block[0x28:], dir.LastPageID)
	le.PutUint64(block[0x2C:], dir.LastPageEndAddress)
	le.PutUint64(block[0x34:], dir.SecondHeaderAddress)
	le.PutUint32(block[0x3C:], dir.GapAmount)
	le.PutUint32(block[0x40:], dir.SectionPageAmount)
	le.PutUint32(block[0x44:], 0x20)
	le.PutUint32(block[0x48:], 0x80)
	le.PutUint32(block[0x4C:], 0x40)
	le.PutUint32(block[0x50:], dir.PageMapID)
	le.PutUint64(block[0x54:], dir.PageMapAddress)
	le.PutUint32(block[0x5C:], dir.SectionMapID)
	le.PutUint32(block[0x60:], dir.PageArraySize)
	le.PutUint32(block[0x64:], dir.GapArraySize)
	le.PutUint32(block[0x68:], section.DirectoryCRC(block))

	enc, err := section.DecryptDirectory(block)
	require.NoError(t, err)
	copy(out[section.R2004EncryptedOffset:], enc)

	return out
}

// SystemPage encodes a system page whose payload is a literal stream.
func SystemPage(t testing.TB, magic uint32, data []byte) []byte {
	t.Helper()

	payload := LiteralStream(t, data)
	out := le.AppendUint32(nil, magic)
	out = le.AppendUint32(out, uint32(len(data)))
	out = le.AppendUint32(out, uint32(len(payload)))
	out = le.AppendUint32(out, uint32(format.PageCompressed))
	out = le.AppendUint32(out, 0)

	return pad(append(out, payload...))
}

// DataPage encodes a data page stored at address with a masked header.
func DataPage(t testing.TB, address uint64, sectionID, startOffset uint32, data []byte, compressed bool) []byte {
	t.Helper()

	payload := data
	if compressed {
		payload = LiteralStream(t, data)
	}

	words := []uint32{
		section.DataPageMagic,
		sectionID,
		uint32(len(payload)),
		uint32(len(data)),
		startOffset,
		0,
		0,
		0,
	}
	mask := section.PageMask(address)
	out := make([]byte, 0, section.DataPageHeaderSize+len(payload))
	for _, w := range words {
		out = le.AppendUint32(out, w^mask)
	}

	return pad(append(out, payload...))
}

func pad(page []byte) []byte {
	if rem := len(page) % section.PageAlignment; rem != 0 {
		page = append(page, make([]byte, section.PageAlignment-rem)...)
	}

	return page
}

// R2004File lays out an R2004-family file: the header, one or more data
// pages per section, the section map page and finally the page map page.
//
// Sections larger than MaxPageSize are split across pages.
func R2004File(t testing.TB, ver format.Version, maint uint8, codePage uint16, sections []R2004Section) []byte {
	t.Helper()

	var (
		body     bytes.Buffer
		pageMap  []byte
		sectMap  []byte
		pageNum  int32
		security uint32
	)
	address := uint64(section.PageMapBaseAddress)
	addPage := func(page []byte) int32 {
		pageNum++
		body.Write(page)
		pageMap = le.AppendUint32(pageMap, uint32(pageNum))
		pageMap = le.AppendUint32(pageMap, uint32(len(page)))
		address += uint64(len(page))

		return pageNum
	}

	sectMap = le.AppendUint32(sectMap, uint32(len(sections)))
	sectMap = le.AppendUint32(sectMap, 0x02)
	sectMap = le.AppendUint32(sectMap, MaxPageSize)
	sectMap = le.AppendUint32(sectMap, 0x00)
	sectMap = le.AppendUint32(sectMap, uint32(len(sections)))

	for i, s := range sections {
		id := uint32(i + 1)
		var refs []byte
		starts := []int{0}
		for start := MaxPageSize; start < len(s.Data); start += MaxPageSize {
			starts = append(starts, start)
		}
		for _, start := range starts {
			chunk := s.Data[start:min(start+MaxPageSize, len(s.Data))]
			page := DataPage(t, address, id, uint32(start), chunk, s.Compressed)
			num := addPage(page)
			refs = le.AppendUint32(refs, uint32(num))
			refs = le.AppendUint32(refs, uint32(len(page)))
			refs = le.AppendUint64(refs, uint64(start))
		}
		count := uint32(len(starts))

		compressed, encrypted := uint32(1), uint32(0)
		if s.Compressed {
			compressed = 2
		}
		if s.Encrypted {
			encrypted = 1
			security |= section.SecurityEncryptData
		}

		declared, limit := uint64(len(s.Data)), uint32(MaxPageSize)
		if s.DeclaredSize != 0 {
			declared = s.DeclaredSize
		}
		if s.PageLimit != 0 {
			limit = s.PageLimit
		}

		sectMap = le.AppendUint64(sectMap, declared)
		sectMap = le.AppendUint32(sectMap, count)
		sectMap = le.AppendUint32(sectMap, limit)
		sectMap = le.AppendUint32(sectMap, 1)
		sectMap = le.AppendUint32(sectMap, compressed)
		sectMap = le.AppendUint32(sectMap, id)
		sectMap = le.AppendUint32(sectMap, encrypted)
		var name [64]byte
		copy(name[:], s.Name)
		sectMap = append(sectMap, name[:]...)
		sectMap = append(sectMap, refs...)
	}

	sectionMapID := addPage(SystemPage(t, section.SectionMapMagic, sectMap))

	// The page map lists itself, so its own entry is sized before encoding.
	pageMapAddress := address
	pageMapID := pageNum + 1
	var pageMapPage []byte
	entries := pageMap
	size := uint32(0)
	for {
		withSelf := le.AppendUint32(append([]byte(nil), entries...), uint32(pageMapID))
		withSelf = le.AppendUint32(withSelf, size)
		pageMapPage = SystemPage(t, section.PageMapMagic, withSelf)
		if uint32(len(pageMapPage)) == size {
			break
		}
		size = uint32(len(pageMapPage))
	}
	addPage(pageMapPage)

	dir := section.PageDirectory{
		LastPageID:         uint32(pageNum),
		LastPageEndAddress: address,
		SectionPageAmount:  uint32(pageNum),
		PageMapID:          uint32(pageMapID),
		PageMapAddress:     pageMapAddress - section.PageMapBaseAddress,
		SectionMapID:       uint32(sectionMapID),
		PageArraySize:      uint32(pageNum),
	}

	out := R2004Header(t, ver, maint, codePage, security, dir)

	return append(out, body.Bytes()...)
}
