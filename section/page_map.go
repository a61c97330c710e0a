package section

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// PageMapEntry is one record of the R2004 section page map.
type PageMapEntry struct {
	Number  int32
	Size    uint32
	Address uint64 // absolute file offset of the page

	// Gap records (Number < 0) link free space into a tree.
	Parent int32
	Left   int32
	Right  int32
}

// Gap reports whether the entry describes unused space.
func (e PageMapEntry) Gap() bool {
	return e.Number < 0
}

// ParsePageMap decodes the decompressed section page map.
//
// Page addresses start at PageMapBaseAddress and advance by each entry's size,
// gaps included.
func ParsePageMap(data []byte) ([]PageMapEntry, error) {
	var entries []PageMapEntry
	address := uint64(PageMapBaseAddress)

	off := 0
	for len(data)-off >= 8 {
		e := PageMapEntry{
			Number:  int32(le.Uint32(data[off:])),
			Size:    le.Uint32(data[off+4:]),
			Address: address,
		}
		off += 8

		if e.Gap() {
			if len(data)-off < 16 {
				return nil, errs.At("page map", int64(off), errs.Truncated("page map gap record", 16, len(data)-off))
			}
			e.Parent = int32(le.Uint32(data[off:]))
			e.Left = int32(le.Uint32(data[off+4:]))
			e.Right = int32(le.Uint32(data[off+8:]))
			off += 16
		}

		address += uint64(e.Size)
		entries = append(entries, e)
	}

	if off != len(data) {
		return nil, errs.At("page map", int64(off),
			fmt.Errorf("%w: %d trailing bytes", errs.ErrSizeAccountingMismatch, len(data)-off))
	}

	return entries, nil
}

// IndexPages maps page numbers to page map entries, skipping gaps.
func IndexPages(entries []PageMapEntry) map[int32]PageMapEntry {
	idx := make(map[int32]PageMapEntry, len(entries))
	for _, e := range entries {
		if !e.Gap() {
			idx[e.Number] = e
		}
	}

	return idx
}
