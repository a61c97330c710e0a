package section

import (
	"fmt"
	"io"

	"github.com/arloliu/dwg/bitstream"
	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/sirupsen/logrus"
)

// DiscardLogger drops every record.
var DiscardLogger logrus.FieldLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// Context carries the per-file settings every section decoder needs.
//
// A Context is a plain value; it holds no position and may be shared by
// decoders working on independent buffers.
type Context struct {
	Version     format.Version
	Maintenance uint8
	CodePage    uint16
	DecodeText  bool // decode 8-bit strings through CodePage
	Checksum    checksum.Strategy
	Logger      logrus.FieldLogger
}

// NewContext returns a Context for the given file header with checksums
// disabled, code page decoding enabled and a discarding logger.
func NewContext(hdr *FileHeader) Context {
	return Context{
		Version:     hdr.Version,
		Maintenance: hdr.Maintenance,
		CodePage:    hdr.CodePage,
		DecodeText:  true,
		Checksum:    checksum.None(),
		Logger:      DiscardLogger,
	}
}

// Cursor returns a new cursor over data configured for this file.
func (ctx Context) Cursor(data []byte) *bitstream.Cursor {
	c := bitstream.NewCursor(data, ctx.Version)
	if ctx.DecodeText {
		c.SetCodePage(ctx.CodePage)
	}

	return c
}

// Verify checks a stored checksum with the context's strategy.
func (ctx Context) Verify(kind checksum.Kind, data []byte, stored uint32) error {
	if ctx.Checksum == nil {
		return nil
	}

	return ctx.Checksum.Verify(kind, data, stored)
}

// Log returns the context logger, never nil.
func (ctx Context) Log() logrus.FieldLogger {
	if ctx.Logger == nil {
		return DiscardLogger
	}

	return ctx.Logger
}

// ExtraSizeField reports whether sentinel-framed sections carry an
// additional RL after their size. R2010 and R2013 files gained it in
// maintenance release 4; every R2018 file has it.
func (ctx Context) ExtraSizeField() bool {
	if ctx.Version.AtLeast(format.R2018) {
		return true
	}

	return ctx.Version.InRange(format.R2010, format.R2013) && ctx.Maintenance > 3
}

// Frame describes the data area of a sentinel-framed section.
//
// Header variables and classes share the layout:
//
//	start sentinel | RL size | [RL extra] | [RL size in bits] | data ... | RS crc | end sentinel
//
// The data area begins right after the size fields and spans size bytes.
type Frame struct {
	Size  uint32
	Start int // byte offset of the data area
	End   int // Start + Size

	data    []byte
	sizeOff int
}

// OpenFrame validates the start sentinel, reads the size preamble and returns
// a cursor positioned at the first bit of the data area.
func (ctx Context) OpenFrame(data []byte, start Sentinel, what string) (*bitstream.Cursor, Frame, error) {
	c := ctx.Cursor(data)
	if err := start.Expect(c, what+" start"); err != nil {
		return nil, Frame{}, errs.At(what, 0, err)
	}

	f := Frame{data: data, sizeOff: c.Offset()}
	size, err := c.ReadRawLong()
	if err != nil {
		return nil, Frame{}, errs.At(what, int64(c.Offset()), err)
	}
	if ctx.ExtraSizeField() {
		if _, err := c.ReadRawLong(); err != nil {
			return nil, Frame{}, errs.At(what, int64(c.Offset()), err)
		}
	}
	if ctx.Version.Equals(format.R2007) {
		if _, err := c.ReadRawLong(); err != nil {
			return nil, Frame{}, errs.At(what, int64(c.Offset()), err)
		}
	}

	f.Size = size
	f.Start = c.Offset()
	f.End = f.Start + int(size)
	if int64(f.Start)+int64(size) > int64(len(data)) {
		return nil, Frame{}, errs.At(what, int64(f.Start), errs.Truncated(what+" data", int(size), len(data)-f.Start))
	}

	return c, f, nil
}

// Remaining reports whether the cursor is still inside the data area.
func (f Frame) Remaining(c *bitstream.Cursor) bool {
	return c.ConsumedBytes() < f.End
}

// Close checks that the cursor ended exactly at the end of the data area, then
// verifies the CRC and the end sentinel.
func (ctx Context) Close(c *bitstream.Cursor, f Frame, kind checksum.Kind, end Sentinel, what string) error {
	if got := c.ConsumedBytes(); got != f.End {
		return errs.At(what, int64(got), fmt.Errorf("%w: %s data ends at byte %d, declared end %d",
			errs.ErrSizeAccountingMismatch, what, got, f.End))
	}
	if err := c.Seek(f.End); err != nil {
		return errs.At(what, int64(f.End), err)
	}

	crc, err := c.ReadAlignedUint16(le)
	if err != nil {
		return errs.At(what, int64(f.End), err)
	}
	if err := ctx.Verify(kind, f.data[f.sizeOff:f.End], uint32(crc)); err != nil {
		return errs.At(what, int64(f.End), err)
	}

	if err := end.Expect(c, what+" end"); err != nil {
		return errs.At(what, int64(f.End+2), err)
	}

	return nil
}
