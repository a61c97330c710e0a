package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/dwg/errs"
)

const (
	sectionMapHeaderSize  = 0x14
	sectionDescriptorSize = 0x60
	sectionPageRefSize    = 0x10
	sectionNameSize       = 64
)

// MaxDataPageSize is the largest decompressed size of one data page.
const MaxDataPageSize = 0x7400

// SectionPageRef locates one data page of a logical section.
type SectionPageRef struct {
	Number      int32
	DataSize    uint32
	StartOffset uint64 // offset within the logical section
}

// SectionDescriptor describes one logical section of an R2004 file.
type SectionDescriptor struct {
	Size                uint64
	PageCount           uint32
	MaxDecompressedSize uint32
	Unknown             uint32
	Compressed          uint32 // 1 stored, 2 compressed
	ID                  uint32
	Encrypted           uint32 // 0 no, 1 yes, 2 unknown
	Name                string
	Pages               []SectionPageRef
}

// IsCompressed reports whether the section's data pages are LZ compressed.
func (d SectionDescriptor) IsCompressed() bool {
	return d.Compressed == 2
}

// IsEncrypted reports whether the section's data is password protected.
func (d SectionDescriptor) IsEncrypted() bool {
	return d.Encrypted == 1
}

// SectionMapHeader is the fixed preamble of the section map.
type SectionMapHeader struct {
	Count       uint32
	Unknown02   uint32
	MaxPageSize uint32
	Unknown00   uint32
	Unknown     uint32
}

// Parse decodes the preamble from the start of data.
func (h *SectionMapHeader) Parse(data []byte) error {
	if len(data) < sectionMapHeaderSize {
		return errs.Truncated("section map header", sectionMapHeaderSize, len(data))
	}

	h.Count = le.Uint32(data[0:])
	h.Unknown02 = le.Uint32(data[4:])
	h.MaxPageSize = le.Uint32(data[8:])
	h.Unknown00 = le.Uint32(data[12:])
	h.Unknown = le.Uint32(data[16:])

	return nil
}

// ParseSectionMap decodes the decompressed section map into its descriptors.
func ParseSectionMap(data []byte) ([]SectionDescriptor, error) {
	var h SectionMapHeader
	if err := h.Parse(data); err != nil {
		return nil, errs.At("section map", 0, err)
	}

	maxCount := (len(data) - sectionMapHeaderSize) / sectionDescriptorSize
	if int64(h.Count) > int64(maxCount) {
		return nil, errs.At("section map", 0, fmt.Errorf("%w: %d descriptors declared, room for %d",
			errs.ErrMalformedField, h.Count, maxCount))
	}

	descs := make([]SectionDescriptor, 0, h.Count)
	off := sectionMapHeaderSize
	for _i := uint32(0); _i < h.Count; _i++ {
		if len(data)-off < sectionDescriptorSize {
			return nil, errs.At("section map", int64(off),
				errs.Truncated("section descriptor", sectionDescriptorSize, len(data)-off))
		}

		d := SectionDescriptor{
			Size:                le.Uint64(data[off:]),
			PageCount:           le.Uint32(data[off+8:]),
			MaxDecompressedSize: le.Uint32(data[off+12:]),
			Unknown:             le.Uint32(data[off+16:]),
			Compressed:          le.Uint32(data[off+20:]),
			ID:                  le.Uint32(data[off+24:]),
			Encrypted:           le.Uint32(data[off+28:]),
			Name:                cString(data[off+32 : off+32+sectionNameSize]),
		}
		off += sectionDescriptorSize

		need := int64(d.PageCount) * sectionPageRefSize
		if need > int64(len(data)-off) {
			return nil, errs.At("section map", int64(off),
				errs.Truncated(d.Name+" page records", int(need), len(data)-off))
		}

		d.Pages = make([]SectionPageRef, d.PageCount)
		for i := range d.Pages {
			d.Pages[i] = SectionPageRef{
				Number:      int32(le.Uint32(data[off:])),
				DataSize:    le.Uint32(data[off+4:]),
				StartOffset: le.Uint64(data[off+8:]),
			}
			off += sectionPageRefSize
		}

		descs = append(descs, d)
	}

	return descs, nil
}

// FindSection returns the descriptor with the given name.
func FindSection(descs []SectionDescriptor, name string) (SectionDescriptor, bool) {
	for _, d := range descs {
		if d.Name == name {
			return d, true
		}
	}

	return SectionDescriptor{}, false
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
