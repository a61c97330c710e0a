package bitstream

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
)

// HandleRef is a reference to an object handle (H).
//
// A counter of up to 15 bytes is legal. Value keeps the low 64 bits and High
// holds the leading bytes that do not fit, nil for handles of 8 bytes or fewer.
type HandleRef struct {
	Code    uint8  // ownership/reference code, high nibble
	Counter uint8  // number of handle bytes, low nibble
	Value   uint64 // handle, assembled most significant byte first
	High    []byte // bytes above the low 64 bits, most significant first
}

func (h HandleRef) String() string {
	if len(h.High) == 0 {
		return fmt.Sprintf("%d.%d.%X", h.Code, h.Counter, h.Value)
	}

	return fmt.Sprintf("%d.%d.%X%016X", h.Code, h.Counter, h.High, h.Value)
}

// ReadHandle reads a handle reference.
func (c *Cursor) ReadHandle() (HandleRef, error) {
	b, err := c.ReadRawChar()
	if err != nil {
		return HandleRef{}, err
	}

	h := HandleRef{Code: b >> 4, Counter: b & 0x0F}
	if extra := int(h.Counter) - 8; extra > 0 {
		h.High = make([]byte, extra)
		for i := range h.High {
			if h.High[i], err = c.ReadRawChar(); err != nil {
				return HandleRef{}, err
			}
		}
	}

	for _i := 0; _i < min(int(h.Counter), 8); _i++ {
		v, err := c.ReadRawChar()
		if err != nil {
			return HandleRef{}, err
		}
		h.Value = h.Value<<8 | uint64(v)
	}

	return h, nil
}

// CmColor is a color value (CMC).
type CmColor struct {
	Index  int16  // color index
	RGB    uint32 // true color, R2004 and later
	Method uint8  // color method byte, R2004 and later
	HasRGB bool   // RGB and Method were present
}

// ReadCmColor reads a color value. From R2004 a second selector encodes the RGB
// value (00 RL, 01 RC, 10 zero, 11 unused) followed by a method byte.
func (c *Cursor) ReadCmColor() (CmColor, error) {
	idx, err := c.ReadBitShort()
	if err != nil {
		return CmColor{}, err
	}

	color := CmColor{Index: idx}
	if !c.version.AtLeast(format.R2004) {
		return color, nil
	}

	pos := c.BitPos()
	sel, err := c.ReadBitPair()
	if err != nil {
		return CmColor{}, err
	}

	switch sel {
	case 0:
		color.RGB, err = c.ReadRawLong()
	case 1:
		var b uint8
		b, err = c.ReadRawChar()
		color.RGB = uint32(b)
	case 2:
		color.RGB = 0
	default:
		return CmColor{}, fmt.Errorf("%w: color RGB selector 3 at bit %d", errs.ErrMalformedField, pos)
	}
	if err != nil {
		return CmColor{}, err
	}

	if color.Method, err = c.ReadRawChar(); err != nil {
		return CmColor{}, err
	}
	color.HasRGB = true

	return color, nil
}
