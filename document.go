package dwg

import (
	"github.com/arloliu/dwg/classes"
	"github.com/arloliu/dwg/compress"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/headervars"
	"github.com/arloliu/dwg/objmap"
	"github.com/arloliu/dwg/section"
	"github.com/arloliu/dwg/store"
)

// Document is a fully decoded drawing file.
type Document struct {
	Version    format.Version
	FileHeader *section.FileHeader
	Variables  *headervars.HeaderVariables
	Classes    *classes.Registry
	ObjectMap  *objmap.Map

	// Page container layout, R2004 and later only.
	Pages    []section.Page // headers only, payloads are not kept
	PageMap  []section.PageMapEntry
	Sections []section.SectionDescriptor

	// Template carries the MEASUREMENT setting, nil if the file has none.
	Template *section.Template
	// Preview is the thumbnail directory, nil if the file has none.
	Preview *section.Preview

	retained *store.Store
}

// SectionBytes returns a copy of the raw bytes of a logical section, by its
// R2004 name (format.NameHeader, format.NameClasses, ...). Sections of legacy
// files are named after their locator kind.
//
// Returns errs.ErrSectionNotRetained if the section was not read.
func (d *Document) SectionBytes(name string) ([]byte, error) {
	return d.retained.Bytes(name)
}

// SectionFingerprint returns the xxHash64 of a logical section's raw bytes.
func (d *Document) SectionFingerprint(name string) (uint64, error) {
	return d.retained.Fingerprint(name)
}

// SectionNames lists the retained sections in the order they were read.
func (d *Document) SectionNames() []string {
	return d.retained.Names()
}

// RetentionStats reports how much memory the retained sections use.
func (d *Document) RetentionStats() compress.CompressionStats {
	return d.retained.Stats()
}
