package section

import (
	"fmt"

	"github.com/arloliu/dwg/compress"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
)

// SystemPageHeader is the plain 20-byte header of a page map or section map page.
type SystemPageHeader struct {
	Type             uint32
	DecompressedSize uint32
	CompressedSize   uint32
	Compression      format.PageCompression
	Checksum         uint32
}

// Parse decodes the header from the start of data.
func (h *SystemPageHeader) Parse(data []byte) error {
	if len(data) < SystemPageHeaderSize {
		return errs.Truncated("system page header", SystemPageHeaderSize, len(data))
	}

	h.Type = le.Uint32(data[0:])
	h.DecompressedSize = le.Uint32(data[4:])
	h.CompressedSize = le.Uint32(data[8:])
	h.Compression = format.PageCompression(le.Uint32(data[12:]))
	h.Checksum = le.Uint32(data[16:])

	if h.Type != PageMapMagic && h.Type != SectionMapMagic {
		return fmt.Errorf("%w: system page type 0x%08X", errs.ErrSentinelMismatch, h.Type)
	}

	return nil
}

// ParseSystemPageHeader decodes a system page header.
func ParseSystemPageHeader(data []byte) (SystemPageHeader, error) {
	var h SystemPageHeader
	err := h.Parse(data)

	return h, err
}

// DataPageHeader is the deobfuscated 32-byte header of a data page.
type DataPageHeader struct {
	Type           uint32
	SectionNumber  uint32
	CompressedSize uint32
	PageSize       uint32
	StartOffset    uint32
	HeaderChecksum uint32
	DataChecksum   uint32
	Unknown        uint32
}

// Parse unmasks and decodes the header of a data page stored at address.
func (h *DataPageHeader) Parse(data []byte, address uint64) error {
	w, err := DeobfuscatePageHeader(data, address)
	if err != nil {
		return err
	}

	*h = DataPageHeader{
		Type:           w[0],
		SectionNumber:  w[1],
		CompressedSize: w[2],
		PageSize:       w[3],
		StartOffset:    w[4],
		HeaderChecksum: w[5],
		DataChecksum:   w[6],
		Unknown:        w[7],
	}
	if h.Type != DataPageMagic {
		return fmt.Errorf("%w: data page type 0x%08X at 0x%X", errs.ErrSentinelMismatch, h.Type, address)
	}

	return nil
}

// ParseDataPageHeader decodes the header of a data page stored at address.
func ParseDataPageHeader(data []byte, address uint64) (DataPageHeader, error) {
	var h DataPageHeader
	err := h.Parse(data, address)

	return h, err
}

// PageKind distinguishes system pages from data pages.
type PageKind uint8

const (
	SystemPage PageKind = iota + 1
	DataPage
)

func (k PageKind) String() string {
	switch k {
	case SystemPage:
		return "system"
	case DataPage:
		return "data"
	default:
		return "unknown"
	}
}

// Page is a section page as found in the file: its header and its still
// compressed payload.
type Page struct {
	Kind    PageKind
	Number  int32
	Address uint64
	System  SystemPageHeader // valid when Kind == SystemPage
	Data    DataPageHeader   // valid when Kind == DataPage
	Payload []byte
}

// HeaderSize returns the size of the page header in bytes.
func (p *Page) HeaderSize() int {
	if p.Kind == SystemPage {
		return SystemPageHeaderSize
	}

	return DataPageHeaderSize
}

// Decompress expands the payload to size bytes.
//
// System pages carry their own compression type. Data pages are LZ
// compressed when compressed is true and stored otherwise.
func (p *Page) Decompress(compressed bool, size int) ([]byte, error) {
	ct := format.PageStored
	switch {
	case p.Kind == SystemPage:
		ct = p.System.Compression
	case compressed:
		ct = format.PageCompressed
	}

	d, err := compress.PageDecompressor(ct)
	if err != nil {
		return nil, err
	}

	return d.DecompressSize(p.Payload, size)
}

// DetectPage identifies the page whose header starts data and splits off its
// payload.
//
// A page whose first word is a system page magic is a system page. Otherwise
// the header is unmasked with the page address; if the first word then reads
// as the data page magic it is a data page. Anything else is
// ErrSentinelMismatch.
func DetectPage(data []byte, address uint64) (Page, error) {
	if len(data) < SystemPageHeaderSize {
		return Page{}, errs.Truncated("page header", SystemPageHeaderSize, len(data))
	}

	p := Page{Address: address}
	switch le.Uint32(data) {
	case PageMapMagic, SectionMapMagic:
		p.Kind = SystemPage
		if err := p.System.Parse(data); err != nil {
			return Page{}, err
		}
		p.Payload = data[SystemPageHeaderSize:]
		if n := int(p.System.CompressedSize); n <= len(p.Payload) {
			p.Payload = p.Payload[:n]
		} else {
			return Page{}, errs.Truncated("system page payload", n, len(p.Payload))
		}
	default:
		p.Kind = DataPage
		if err := p.Data.Parse(data, address); err != nil {
			return Page{}, err
		}
		p.Payload = data[DataPageHeaderSize:]
		if n := int(p.Data.CompressedSize); n <= len(p.Payload) {
			p.Payload = p.Payload[:n]
		} else {
			return Page{}, errs.Truncated("data page payload", n, len(p.Payload))
		}
	}

	return p, nil
}
