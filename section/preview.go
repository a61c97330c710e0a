package section

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// Preview entry codes.
const (
	PreviewHeader uint8 = 1
	PreviewBMP    uint8 = 2
	PreviewWMF    uint8 = 3
	PreviewPNG    uint8 = 6
)

const previewEntrySize = 9

// PreviewEntry locates one image of the preview section. The bytes at Start
// are not interpreted.
type PreviewEntry struct {
	Code  uint8
	Start uint32
	Size  uint32
}

// Preview is the directory of the thumbnail images stored in the file.
type Preview struct {
	Size    uint32
	Entries []PreviewEntry
}

// Entry returns the first entry with the given code.
func (p *Preview) Entry(code uint8) (PreviewEntry, bool) {
	for _, e := range p.Entries {
		if e.Code == code {
			return e, true
		}
	}

	return PreviewEntry{}, false
}

// PreviewLength returns the total length of a preview section given at least
// its first 20 bytes.
func PreviewLength(prefix []byte) (int, error) {
	if len(prefix) < SentinelSize+4 {
		return 0, errs.Truncated("preview prefix", SentinelSize+4, len(prefix))
	}
	if err := PreviewStart.Check(prefix, "preview start"); err != nil {
		return 0, err
	}

	return SentinelSize + 4 + int(le.Uint32(prefix[SentinelSize:])) + SentinelSize, nil
}

// ParsePreview decodes a preview section: start sentinel, RL overall size,
// RC entry count, the entries, then the end sentinel 16+4+size bytes in.
func ParsePreview(data []byte) (*Preview, error) {
	n, err := PreviewLength(data)
	if err != nil {
		return nil, errs.At("preview", 0, err)
	}
	if len(data) < n {
		return nil, errs.At("preview", int64(len(data)), errs.Truncated("preview", n, len(data)))
	}

	p := &Preview{Size: le.Uint32(data[SentinelSize:])}
	off := SentinelSize + 4
	end := off + int(p.Size)
	if p.Size < 1 {
		return nil, errs.At("preview", int64(off), fmt.Errorf("%w: empty preview directory", errs.ErrMalformedField))
	}

	count := int(data[off])
	off++
	if off+count*previewEntrySize > end {
		return nil, errs.At("preview", int64(off), fmt.Errorf("%w: %d preview entries exceed size %d",
			errs.ErrSizeAccountingMismatch, count, p.Size))
	}

	p.Entries = make([]PreviewEntry, count)
	for i := range p.Entries {
		p.Entries[i] = PreviewEntry{
			Code:  data[off],
			Start: le.Uint32(data[off+1:]),
			Size:  le.Uint32(data[off+5:]),
		}
		off += previewEntrySize
	}

	if err := PreviewEnd.Check(data[end:], "preview end"); err != nil {
		return nil, errs.At("preview", int64(end), err)
	}

	return p, nil
}
