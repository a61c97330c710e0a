package bitstream

import (
	"bytes"
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/dwg/errs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codePages maps the DWGCODEPAGE header value to single-byte character maps.
// Code pages that are not listed are decoded byte for byte.
var codePages = map[uint16]*charmap.Charmap{
	2:  charmap.ISO8859_1,
	3:  charmap.ISO8859_2,
	4:  charmap.ISO8859_3,
	5:  charmap.ISO8859_4,
	6:  charmap.ISO8859_5,
	7:  charmap.ISO8859_6,
	8:  charmap.ISO8859_7,
	9:  charmap.ISO8859_8,
	10: charmap.ISO8859_9,
	11: charmap.CodePage437,
	12: charmap.CodePage850,
	13: charmap.CodePage852,
	14: charmap.CodePage855,
	16: charmap.CodePage860,
	18: charmap.CodePage863,
	20: charmap.CodePage865,
	23: charmap.Macintosh,
	27: charmap.CodePage866,
	28: charmap.Windows1250,
	29: charmap.Windows1251,
	30: charmap.Windows1252,
	32: charmap.Windows1253,
	33: charmap.Windows1254,
	34: charmap.Windows1255,
	35: charmap.Windows1256,
	36: charmap.Windows1257,
	37: charmap.Windows874,
	44: charmap.Windows1258,
}

// CodePageDecoder returns a decoder for the given DWGCODEPAGE value, or nil
// when strings of that code page are passed through unchanged.
func CodePageDecoder(codePage uint16) *encoding.Decoder {
	cm, ok := codePages[codePage]
	if !ok {
		return nil
	}

	return cm.NewDecoder()
}

// SetCodePage selects the character map used for 8-bit strings.
func (c *Cursor) SetCodePage(codePage uint16) {
	c.charset = CodePageDecoder(codePage)
}

// ReadText reads a bit-coded string (TV).
//
// Through R2004 the BS length counts bytes of the file's code page; from R2007
// it counts UTF-16 little-endian code units. Trailing NULs are dropped.
func (c *Cursor) ReadText() (string, error) {
	pos := c.BitPos()
	n, err := c.ReadBitShort()
	if err != nil {
		return "", err
	}
	length := int(uint16(n))

	if c.version.WideText() {
		return c.readWideText(length)
	}

	raw, err := c.ReadBytes(length)
	if err != nil {
		return "", err
	}
	raw = bytes.TrimRight(raw, "\x00")

	if c.charset == nil {
		return string(raw), nil
	}

	decoded, err := c.charset.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: text at bit %d: %w", errs.ErrMalformedField, pos, err)
	}

	return string(decoded), nil
}

func (c *Cursor) readWideText(units int) (string, error) {
	if err := c.need(units * 16); err != nil {
		return "", err
	}

	buf := make([]uint16, units)
	for i := range buf {
		buf[i], _ = c.ReadRawShort()
	}
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}

	return string(utf16.Decode(buf)), nil
}
