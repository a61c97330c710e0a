package dwg

import (
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

// readLegacyBody decodes the sections listed in the locator table of an
// R13-R2000 file, then the preview at the image seeker.
func readLegacyBody(src source, doc *Document, cfg *decoderConfig) error {
	hdr := doc.FileHeader
	ctx := cfg.context(hdr)

	for _, loc := range hdr.Locators {
		kind := loc.Kind()
		name := kind.Name()

		bb, err := src.read(int64(loc.Seeker), int(loc.Size), name)
		if err != nil {
			return err
		}
		err = decodeLegacySection(ctx, doc, kind, bb.Bytes())
		if err == nil {
			err = doc.retained.Put(name, bb.Bytes())
		}
		pool.PutPageBuffer(bb)
		if err != nil {
			return err
		}

		cfg.logger.WithFields(logrus.Fields{"name": name, "seeker": loc.Seeker, "size": loc.Size}).Debug("section read")
	}

	for _, req := range []struct {
		kind    format.SectionKind
		decoded bool
	}{
		{format.SectionHeaderVars, doc.Variables != nil},
		{format.SectionClasses, doc.Classes != nil},
		{format.SectionObjectMap, doc.ObjectMap != nil},
	} {
		if !req.decoded {
			return errs.At("file header", 0, fmt.Errorf("%w: no locator for %s", errs.ErrSectionNotFound, req.kind.Name()))
		}
	}

	if seeker := hdr.PreviewSeeker(); seeker != 0 {
		return readLegacyPreview(src, doc, int64(seeker))
	}

	return nil
}

func decodeLegacySection(ctx section.Context, doc *Document, kind format.SectionKind, data []byte) error {
	var err error
	switch kind {
	case format.SectionHeaderVars:
		doc.Variables, err = headervars.Decode(data, ctx)
	case format.SectionClasses:
		doc.Classes, err = classes.Decode(data, ctx)
	case format.SectionObjectMap:
		doc.ObjectMap, err = objmap.Decode(data, ctx)
	case format.SectionMeasure:
		doc.Template, err = section.ParseMeasurement(data)
	}

	return err
}

func readLegacyPreview(src source, doc *Document, seeker int64) error {
	prefix, err := src.readCopy(seeker, section.SentinelSize+4, "preview")
	if err != nil {
		return err
	}
	n, err := section.PreviewLength(prefix)
	if err != nil {
		return errs.At("preview", seeker, err)
	}

	bb, err := src.read(seeker, n, "preview")
	if err != nil {
		return err
	}
	defer pool.PutPageBuffer(bb)

	if doc.Preview, err = section.ParsePreview(bb.Bytes()); err != nil {
		return err
	}

	return doc.retained.Put(format.NamePreview, bb.Bytes())
}
