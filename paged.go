package dwg

import (
	"bytes"
	"fmt"

	"github.com/arloliu/dwg/classes"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/headervars"
	"github.com/arloliu/dwg/internal/pool"
	"github.com/arloliu/dwg/objmap"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
)

// maxSystemPageSize bounds the decompressed size of the page map and the
// section map.
const maxSystemPageSize = 16 << 20

var requiredSections = []string{format.NameHeader, format.NameClasses, format.NameHandles}

// readPagedBody decodes an R2004-family file: page map, section map, then
// every logical section assembled from its data pages.
func readPagedBody(src source, doc *Document, cfg *decoderConfig) error {
	hdr := doc.FileHeader
	dir := hdr.Directory

	pageMap, data, err := readSystemPage(src, dir.PageMapOffset(), "page map")
	if err != nil {
		return err
	}
	pageMap.Number = int32(dir.PageMapID)
	doc.Pages = append(doc.Pages, pageMap)

	if doc.PageMap, err = section.ParsePageMap(data); err != nil {
		return errs.At("page map", int64(dir.PageMapOffset()), err)
	}
	index := section.IndexPages(doc.PageMap)
	cfg.logger.WithFields(logrus.Fields{"address": dir.PageMapOffset(), "entries": len(doc.PageMap)}).Debug("page map read")

	entry, ok := index[int32(dir.SectionMapID)]
	if !ok {
		return errs.At("section map", 0, fmt.Errorf("%w: section map page %d not in page map",
			errs.ErrMalformedField, dir.SectionMapID))
	}
	sectionMap, data, err := readSystemPage(src, entry.Address, "section map")
	if err != nil {
		return err
	}
	sectionMap.Number = entry.Number
	doc.Pages = append(doc.Pages, sectionMap)

	if doc.Sections, err = section.ParseSectionMap(data); err != nil {
		return errs.At("section map", int64(entry.Address), err)
	}
	cfg.logger.WithFields(logrus.Fields{"address": entry.Address, "sections": len(doc.Sections)}).Debug("section map read")

	assembled := make(map[string][]byte, len(doc.Sections))
	for _, desc := range doc.Sections {
		if desc.Name == "" {
			continue
		}
		if desc.IsEncrypted() {
			cfg.logger.WithField("name", desc.Name).Debug("encrypted section skipped")
			continue
		}

		data, err := assembleSection(src, doc, desc, index)
		if err != nil {
			return err
		}
		if err := doc.retained.Put(desc.Name, data); err != nil {
			return err
		}
		assembled[desc.Name] = data
		cfg.logger.WithFields(logrus.Fields{
			"name":  desc.Name,
			"size":  desc.Size,
			"pages": len(desc.Pages),
		}).Debug("section assembled")
	}

	for _, name := range requiredSections {
		if _, ok := assembled[name]; ok {
			continue
		}
		if desc, ok := section.FindSection(doc.Sections, name); ok && desc.IsEncrypted() {
			return errs.At(name, 0, fmt.Errorf("%w: %s", errs.ErrEncryptedSection, name))
		}

		return errs.At("section map", 0, fmt.Errorf("%w: %s", errs.ErrSectionNotFound, name))
	}

	return decodePagedSections(cfg.context(hdr), doc, assembled)
}

func decodePagedSections(ctx section.Context, doc *Document, assembled map[string][]byte) error {
	var err error
	if doc.Variables, err = headervars.Decode(assembled[format.NameHeader], ctx); err != nil {
		return err
	}
	if doc.Classes, err = classes.Decode(assembled[format.NameClasses], ctx); err != nil {
		return err
	}
	if doc.ObjectMap, err = objmap.Decode(assembled[format.NameHandles], ctx); err != nil {
		return err
	}

	if data, ok := assembled[format.NameTemplate]; ok {
		if doc.Template, err = section.ParseTemplate(data); err != nil {
			return errs.At(format.NameTemplate, 0, err)
		}
	}
	if data, ok := assembled[format.NamePreview]; ok && len(data) > 0 {
		if doc.Preview, err = section.ParsePreview(data); err != nil {
			return err
		}
	}

	return nil
}

// readSystemPage reads and expands the system page at address.
func readSystemPage(src source, address uint64, what string) (section.Page, []byte, error) {
	head, err := src.read(int64(address), section.SystemPageHeaderSize, what)
	if err != nil {
		return section.Page{}, nil, err
	}
	sys, err := section.ParseSystemPageHeader(head.Bytes())
	pool.PutPageBuffer(head)
	if err != nil {
		return section.Page{}, nil, errs.At(what, int64(address), err)
	}
	if sys.DecompressedSize > maxSystemPageSize {
		return section.Page{}, nil, errs.At(what, int64(address), fmt.Errorf("%w: %s of %d bytes",
			errs.ErrMalformedField, what, sys.DecompressedSize))
	}

	bb, err := src.read(int64(address), section.SystemPageHeaderSize+int(sys.CompressedSize), what)
	if err != nil {
		return section.Page{}, nil, err
	}
	defer pool.PutPageBuffer(bb)

	page, err := section.DetectPage(bb.Bytes(), address)
	if err != nil {
		return section.Page{}, nil, errs.At(what, int64(address), err)
	}
	data, err := page.Decompress(false, int(page.System.DecompressedSize))
	if err != nil {
		return section.Page{}, nil, errs.At(what, int64(address), err)
	}
	if page.System.Compression == format.PageStored {
		data = bytes.Clone(data)
	}
	page.Payload = nil

	return page, data, nil
}

// assembleSection expands every data page of desc into one buffer.
func assembleSection(src source, doc *Document, desc section.SectionDescriptor, index map[int32]section.PageMapEntry) ([]byte, error) {
	entries, err := sectionPages(src, desc, index)
	if err != nil {
		return nil, err
	}

	out := make([]byte, desc.Size)
	for i, ref := range desc.Pages {
		page, err := expandDataPage(src, desc, ref, entries[i].Address, out[ref.StartOffset:])
		if err != nil {
			return nil, err
		}
		page.Number = ref.Number
		doc.Pages = append(doc.Pages, page)
	}

	return out, nil
}

// sectionPages checks the layout desc declares against the page map and the
// file before any output is allocated, and returns the page map entry of each
// page. The declared size must fit in distinct pages that lie inside the file.
func sectionPages(src source, desc section.SectionDescriptor, index map[int32]section.PageMapEntry) ([]section.PageMapEntry, error) {
	if desc.MaxDecompressedSize > section.MaxDataPageSize {
		return nil, errs.At(desc.Name, 0, fmt.Errorf("%w: page limit of %d bytes, at most %d",
			errs.ErrMalformedField, desc.MaxDecompressedSize, section.MaxDataPageSize))
	}
	if desc.Size > uint64(len(desc.Pages))*uint64(desc.MaxDecompressedSize) {
		return nil, errs.At(desc.Name, 0, fmt.Errorf("%w: %d bytes in %d pages of at most %d bytes",
			errs.ErrSizeAccountingMismatch, desc.Size, len(desc.Pages), desc.MaxDecompressedSize))
	}

	entries := make([]section.PageMapEntry, len(desc.Pages))
	seen := make(map[int32]struct{}, len(desc.Pages))
	for i, ref := range desc.Pages {
		entry, ok := index[ref.Number]
		if !ok {
			return nil, errs.At(desc.Name, int64(ref.StartOffset), fmt.Errorf("%w: page %d not in page map",
				errs.ErrMalformedField, ref.Number))
		}
		if _, dup := seen[ref.Number]; dup {
			return nil, errs.At(desc.Name, int64(ref.StartOffset), fmt.Errorf("%w: page %d listed twice",
				errs.ErrMalformedField, ref.Number))
		}
		seen[ref.Number] = struct{}{}

		if end := entry.Address + uint64(entry.Size); end > uint64(src.size) || end < entry.Address {
			have := max(src.size-int64(entry.Address), 0)
			return nil, errs.At(desc.Name, int64(entry.Address), errs.Truncated("data page", int(entry.Size), int(have)))
		}
		if ref.StartOffset >= desc.Size {
			return nil, errs.At(desc.Name, int64(ref.StartOffset), fmt.Errorf("%w: page %d starts past the section end %d",
				errs.ErrSizeAccountingMismatch, ref.Number, desc.Size))
		}
		entries[i] = entry
	}

	return entries, nil
}

// expandDataPage decompresses one data page into dst.
func expandDataPage(src source, desc section.SectionDescriptor, ref section.SectionPageRef, address uint64, dst []byte) (section.Page, error) {
	head, err := src.read(int64(address), section.DataPageHeaderSize, desc.Name)
	if err != nil {
		return section.Page{}, err
	}
	dh, err := section.ParseDataPageHeader(head.Bytes(), address)
	pool.PutPageBuffer(head)
	if err != nil {
		return section.Page{}, errs.At(desc.Name, int64(address), err)
	}

	bb, err := src.read(int64(address), section.DataPageHeaderSize+int(dh.CompressedSize), desc.Name)
	if err != nil {
		return section.Page{}, err
	}
	defer pool.PutPageBuffer(bb)

	page, err := section.DetectPage(bb.Bytes(), address)
	if err != nil {
		return section.Page{}, errs.At(desc.Name, int64(address), err)
	}
	if page.Kind != section.DataPage || page.Data.SectionNumber != desc.ID {
		return section.Page{}, errs.At(desc.Name, int64(address), fmt.Errorf("%w: page %d belongs to section %d, want %d",
			errs.ErrMalformedField, ref.Number, page.Data.SectionNumber, desc.ID))
	}

	want := min(uint64(desc.MaxDecompressedSize), uint64(len(dst)))
	data, err := page.Decompress(desc.IsCompressed(), int(want))
	if err != nil {
		return section.Page{}, errs.At(desc.Name, int64(address), err)
	}
	copy(dst, data)
	page.Payload = nil

	return page, nil
}
