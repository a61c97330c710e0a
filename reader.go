package dwg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/pool"
	"github.com/arloliu/dwg/section"
	"github.com/arloliu/dwg/store"
	"github.com/sirupsen/logrus"
)

// source is a bounded random-access view of the input file.
type source struct {
	r    io.ReaderAt
	size int64
}

// read returns n bytes at off in a pooled buffer. The caller must return the
// buffer with pool.PutPageBuffer.
func (s source) read(off int64, n int, what string) (*pool.ByteBuffer, error) {
	if off < 0 || n < 0 || off > s.size || int64(n) > s.size-off {
		have := max(s.size-off, 0)
		return nil, errs.At(what, off, errs.Truncated(what, n, int(have)))
	}

	bb := pool.GetPageBuffer()
	if err := bb.ReadAt(s.r, off, n); err != nil {
		pool.PutPageBuffer(bb)
		return nil, errs.At(what, off, err)
	}

	return bb, nil
}

// readCopy returns n bytes at off in a buffer owned by the caller.
func (s source) readCopy(off int64, n int, what string) ([]byte, error) {
	bb, err := s.read(off, n, what)
	if err != nil {
		return nil, err
	}
	defer pool.PutPageBuffer(bb)

	return bytes.Clone(bb.Bytes()), nil
}

// DetectVersion classifies a file from its 6-byte version token.
//
// R2007 files are classified even though ReadFileHeader rejects them.
func DetectVersion(src io.ReaderAt) (format.Version, error) {
	var token [format.VersionTokenSize]byte
	if n, err := src.ReadAt(token[:], 0); n < len(token) {
		if err == nil || err == io.EOF {
			err = errs.Truncated("version token", len(token), n)
		}
		return format.VersionUnknown, errs.At("file header", 0, err)
	}

	ver, err := format.ParseVersion(token[:])
	if err != nil {
		return format.VersionUnknown, errs.At("file header", 0, err)
	}

	return ver, nil
}

// ReadFileHeader decodes the fixed file header of a file of the given size.
//
// Returns:
//   - *section.FileHeader: the locator table or page directory
//   - error: a *errs.DecodeError wrapping ErrUnsupportedVersion,
//     ErrTruncatedInput, ErrSentinelMismatch, ErrMalformedField or
//     ErrChecksumMismatch
func ReadFileHeader(src io.ReaderAt, size int64, opts ...DecoderOption) (*section.FileHeader, error) {
	cfg, err := newDecoderConfig(opts)
	if err != nil {
		return nil, err
	}

	return readFileHeader(source{r: src, size: size}, cfg)
}

func readFileHeader(src source, cfg *decoderConfig) (*section.FileHeader, error) {
	prefix, err := src.readCopy(0, min(section.LegacyFixedSize, int(max(src.size, 0))), "file header")
	if err != nil {
		return nil, err
	}
	n, err := section.HeaderLength(prefix)
	if err != nil {
		return nil, errs.At("file header", 0, err)
	}

	data, err := src.readCopy(0, n, "file header")
	if err != nil {
		return nil, err
	}
	hdr, err := section.ParseFileHeader(data, cfg.checksum)
	if err != nil {
		return nil, err
	}

	cfg.logger.WithFields(logrus.Fields{
		"version":     hdr.Version,
		"maintenance": hdr.Maintenance,
		"code_page":   hdr.CodePage,
		"legacy":      hdr.Legacy(),
		"length":      n,
	}).Debug("file header parsed")

	return hdr, nil
}

// ReadBody decodes everything after the file header.
//
// Parameters:
//   - src, size: the whole file
//   - hdr: the header returned by ReadFileHeader for the same file
//   - opts: decoder options
//
// Returns:
//   - *Document: the decoded document
//   - error: a *errs.DecodeError; no partial document is returned
func ReadBody(src io.ReaderAt, size int64, hdr *section.FileHeader, opts ...DecoderOption) (*Document, error) {
	cfg, err := newDecoderConfig(opts)
	if err != nil {
		return nil, err
	}

	return readBody(source{r: src, size: size}, hdr, cfg)
}

func readBody(src source, hdr *section.FileHeader, cfg *decoderConfig) (*Document, error) {
	if hdr == nil {
		return nil, errs.At("file header", 0, fmt.Errorf("%w: nil file header", errs.ErrMalformedField))
	}

	retained, err := store.New(cfg.retention)
	if err != nil {
		return nil, err
	}
	doc := &Document{Version: hdr.Version, FileHeader: hdr, retained: retained}

	if hdr.Legacy() {
		err = readLegacyBody(src, doc, cfg)
	} else {
		err = readPagedBody(src, doc, cfg)
	}
	if err != nil {
		return nil, err
	}

	stats := retained.Stats()
	cfg.logger.WithFields(logrus.Fields{
		"version":           doc.Version,
		"classes":           doc.Classes.Len(),
		"handles":           doc.ObjectMap.Len(),
		"retained_sections": retained.Len(),
		"retained_bytes":    stats.CompressedSize,
	}).Debug("decode finished")

	return doc, nil
}

// Decode reads the file header and body of a file of the given size.
func Decode(src io.ReaderAt, size int64, opts ...DecoderOption) (*Document, error) {
	cfg, err := newDecoderConfig(opts)
	if err != nil {
		return nil, err
	}

	s := source{r: src, size: size}
	hdr, err := readFileHeader(s, cfg)
	if err != nil {
		return nil, err
	}

	return readBody(s, hdr, cfg)
}

// DecodeFile opens and decodes the file at path.
func DecodeFile(path string, opts ...DecoderOption) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	return Decode(f, info.Size(), opts...)
}
