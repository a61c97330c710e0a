package section

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
)

// SectionLocator is one record of the legacy section table.
type SectionLocator struct {
	Number uint8
	Seeker uint32 // absolute file offset
	Size   uint32
}

// Kind returns the section kind the record number denotes.
func (l SectionLocator) Kind() format.SectionKind {
	return format.SectionKind(l.Number)
}

// PageDirectory holds the decrypted R2004 header block that locates the
// section page map and the section map.
type PageDirectory struct {
	RootGap             uint32
	LeftGap             uint32
	RightGap            uint32
	Unknown             uint32
	LastPageID          uint32
	LastPageEndAddress  uint64
	SecondHeaderAddress uint64
	GapAmount           uint32
	SectionPageAmount   uint32
	PageMapID           uint32
	PageMapAddress      uint64 // relative to PageMapBaseAddress
	SectionMapID        uint32
	PageArraySize       uint32
	GapArraySize        uint32
	CRC32               uint32
}

// PageMapOffset returns the absolute file offset of the section page map.
func (d PageDirectory) PageMapOffset() uint64 {
	return d.PageMapAddress + PageMapBaseAddress
}

// FileHeader is the decoded fixed header at the start of a drawing file.
//
// Exactly one of Locators (legacy layout) and Directory (R2004 layout) is set.
type FileHeader struct {
	Version     format.Version
	Maintenance uint8
	CodePage    uint16

	// Legacy layout.
	Flag        uint8
	ImageSeeker uint32
	Locators    []SectionLocator
	LocatorCRC  uint16

	// R2004 layout.
	PreviewAddress     uint32
	AppVersion         uint8
	AppMaintenance     uint8
	SecurityFlags      uint32
	SummaryInfoAddress uint32
	VBAProjectAddress  uint32
	Directory          *PageDirectory
}

// Legacy reports whether the header uses the R13-R2000 section table.
func (h *FileHeader) Legacy() bool {
	return h.Directory == nil
}

// PreviewSeeker returns the file offset of the preview directory, 0 if none.
func (h *FileHeader) PreviewSeeker() uint32 {
	if h.Legacy() {
		return h.ImageSeeker
	}

	return h.PreviewAddress
}

// Locator returns the legacy section record for kind.
func (h *FileHeader) Locator(kind format.SectionKind) (SectionLocator, bool) {
	for _, l := range h.Locators {
		if l.Kind() == kind {
			return l, true
		}
	}

	return SectionLocator{}, false
}

// Encrypted reports whether the R2004 security flags mark section data as
// password protected.
func (h *FileHeader) Encrypted() bool {
	return h.SecurityFlags&(SecurityEncryptData|SecurityEncryptProperties) != 0
}

// HeaderLength returns the number of bytes the file header occupies.
//
// prefix must hold at least the first LegacyFixedSize bytes of the file.
func HeaderLength(prefix []byte) (int, error) {
	if len(prefix) < LegacyFixedSize {
		return 0, errs.Truncated("file header prefix", LegacyFixedSize, len(prefix))
	}

	ver, err := format.ParseVersion(prefix[:format.VersionTokenSize])
	if err != nil {
		return 0, err
	}

	switch {
	case ver.Equals(format.R2007):
		return 0, fmt.Errorf("%w: %s container is not supported", errs.ErrUnsupportedVersion, ver)
	case ver.PageContainer():
		return R2004HeaderSize, nil
	}

	count := le.Uint32(prefix[legacyRecordCntOff:])
	if count > LegacyMaxRecords {
		return 0, fmt.Errorf("%w: %d section locator records", errs.ErrMalformedField, count)
	}

	return LegacyFixedSize + int(count)*LegacyRecordSize + legacyTrailerLength, nil
}

// ParseFileHeader decodes a complete file header.
//
// Parameters:
//   - data: the file header bytes, at least HeaderLength(data) long
//   - cs: strategy used to check the locator CRC or the page directory CRC32
//
// Returns:
//   - *FileHeader: the decoded header
//   - error: ErrUnsupportedVersion, ErrTruncatedInput, ErrSentinelMismatch,
//     ErrMalformedField or ErrChecksumMismatch
func ParseFileHeader(data []byte, cs checksum.Strategy) (*FileHeader, error) {
	if cs == nil {
		cs = checksum.None()
	}

	n, err := HeaderLength(data)
	if err != nil {
		return nil, errs.At("file header", 0, err)
	}
	if len(data) < n {
		return nil, errs.At("file header", int64(len(data)), errs.Truncated("file header", n, len(data)))
	}

	ver, _ := format.ParseVersion(data[:format.VersionTokenSize])
	if ver.PageContainer() {
		return parseR2004Header(data, ver, cs)
	}

	return parseLegacyHeader(data, ver, cs)
}

func parseLegacyHeader(data []byte, ver format.Version, cs checksum.Strategy) (*FileHeader, error) {
	hdr := &FileHeader{
		Version:     ver,
		Maintenance: data[legacyMaintOffset],
		Flag:        data[legacyMaintOffset+1],
		ImageSeeker: le.Uint32(data[legacyImageOffset:]),
		CodePage:    le.Uint16(data[legacyCodePageOff:]),
	}

	count := int(le.Uint32(data[legacyRecordCntOff:]))
	hdr.Locators = make([]SectionLocator, count)
	off := LegacyFixedSize
	for i := range hdr.Locators {
		hdr.Locators[i] = SectionLocator{
			Number: data[off],
			Seeker: le.Uint32(data[off+1:]),
			Size:   le.Uint32(data[off+5:]),
		}
		off += LegacyRecordSize
	}

	hdr.LocatorCRC = le.Uint16(data[off:])
	if err := cs.Verify(checksum.LegacyLocators, data[:off], uint32(hdr.LocatorCRC)); err != nil {
		return nil, errs.At("file header", int64(off), err)
	}
	off += 2

	if err := LegacyTrailer.Check(data[off:], "file header trailer"); err != nil {
		return nil, errs.At("file header", int64(off), err)
	}

	return hdr, nil
}

func parseR2004Header(data []byte, ver format.Version, cs checksum.Strategy) (*FileHeader, error) {
	hdr := &FileHeader{
		Version:            ver,
		Maintenance:        data[0x0B],
		PreviewAddress:     le.Uint32(data[0x0D:]),
		AppVersion:         data[0x11],
		AppMaintenance:     data[0x12],
		CodePage:           le.Uint16(data[0x13:]),
		SecurityFlags:      le.Uint32(data[0x18:]),
		SummaryInfoAddress: le.Uint32(data[0x20:]),
		VBAProjectAddress:  le.Uint32(data[0x24:]),
	}

	block, err := DecryptDirectory(data[R2004EncryptedOffset:])
	if err != nil {
		return nil, errs.At("file header", R2004EncryptedOffset, err)
	}
	if !bytes.Equal(block[:len(FileID)], FileID[:]) {
		return nil, errs.At("file header", R2004EncryptedOffset,
			fmt.Errorf("%w: file id %q", errs.ErrSentinelMismatch, block[:len(FileID)]))
	}

	dir, err := ParsePageDirectory(block)
	if err != nil {
		return nil, errs.At("file header", R2004EncryptedOffset, err)
	}

	if err := cs.Verify(checksum.FileHeader2004, crcInput(block), dir.CRC32); err != nil {
		return nil, errs.At("file header", R2004EncryptedOffset+r2004CRCOffset, err)
	}
	hdr.Directory = dir

	return hdr, nil
}

// ParsePageDirectory decodes a decrypted R2004 page directory block.
func ParsePageDirectory(block []byte) (*PageDirectory, error) {
	if len(block) < R2004EncryptedSize {
		return nil, errs.Truncated("page directory", R2004EncryptedSize, len(block))
	}

	return &PageDirectory{
		RootGap:             le.Uint32(block[0x18:]),
		LeftGap:             le.Uint32(block[0x1C:]),
		RightGap:            le.Uint32(block[0x20:]),
		Unknown:             le.Uint32(block[0x24:]),
		LastPageID:          le.Uint32(block[0x28:]),
		LastPageEndAddress:  le.Uint64(block[0x2C:]),
		SecondHeaderAddress: le.Uint64(block[0x34:]),
		GapAmount:           le.Uint32(block[0x3C:]),
		SectionPageAmount:   le.Uint32(block[0x40:]),
		PageMapID:           le.Uint32(block[0x50:]),
		PageMapAddress:      le.Uint64(block[0x54:]),
		SectionMapID:        le.Uint32(block[0x5C:]),
		PageArraySize:       le.Uint32(block[0x60:]),
		GapArraySize:        le.Uint32(block[0x64:]),
		CRC32:               le.Uint32(block[r2004CRCOffset:]),
	}, nil
}

// DirectoryCRC computes the CRC32 stored in a decrypted page directory block.
func DirectoryCRC(block []byte) uint32 {
	return crc32.ChecksumIEEE(crcInput(block))
}

func crcInput(block []byte) []byte {
	zeroed := bytes.Clone(block[:R2004EncryptedSize])
	clear(zeroed[r2004CRCOffset : r2004CRCOffset+4])

	return zeroed
}
