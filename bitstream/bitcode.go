package bitstream

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// Point2D is a pair of raw doubles (2RD).
type Point2D [2]float64

// Point3D is a triple of bit doubles (3BD).
type Point3D [3]float64

// ReadBitPair reads a 2-bit selector (BB).
func (c *Cursor) ReadBitPair() (uint8, error) {
	v, err := c.ReadBits(2)
	return uint8(v), err
}

// ReadBitShort reads a bit-coded short (BS).
func (c *Cursor) ReadBitShort() (int16, error) {
	sel, err := c.ReadBitPair()
	if err != nil {
		return 0, err
	}

	switch sel {
	case 0:
		v, err := c.ReadRawShort()
		return int16(v), err
	case 1:
		v, err := c.ReadRawChar()
		return int16(v), err
	case 2:
		return 0, nil
	default:
		return 256, nil
	}
}

// ReadBitLong reads a bit-coded long (BL). Selector 3 is unused and yields
// errs.ErrMalformedField.
func (c *Cursor) ReadBitLong() (int32, error) {
	pos := c.BitPos()
	sel, err := c.ReadBitPair()
	if err != nil {
		return 0, err
	}

	switch sel {
	case 0:
		v, err := c.ReadRawLong()
		return int32(v), err
	case 1:
		v, err := c.ReadRawChar()
		return int32(v), err
	case 2:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: bit long selector 3 at bit %d", errs.ErrMalformedField, pos)
	}
}

// ReadBitLongLong reads a bit-coded long long (BLL): a 3-bit byte count
// followed by that many little-endian bytes.
func (c *Cursor) ReadBitLongLong() (uint64, error) {
	n, err := c.ReadBits(3)
	if err != nil {
		return 0, err
	}

	var v uint64
	for i := 0; i < int(n); i++ {
		b, err := c.ReadRawChar()
		if err != nil {
			return 0, err
		}
		v |= uint64(b) << (8 * i)
	}

	return v, nil
}

// ReadBitDouble reads a bit-coded double (BD). Selector 3 is unused and yields
// errs.ErrMalformedField.
func (c *Cursor) ReadBitDouble() (float64, error) {
	pos := c.BitPos()
	sel, err := c.ReadBitPair()
	if err != nil {
		return 0, err
	}

	switch sel {
	case 0:
		return c.ReadRawDouble()
	case 1:
		return 1.0, nil
	case 2:
		return 0.0, nil
	default:
		return 0, fmt.Errorf("%w: bit double selector 3 at bit %d", errs.ErrMalformedField, pos)
	}
}

// Read2RawDouble reads two raw doubles (2RD).
func (c *Cursor) Read2RawDouble() (Point2D, error) {
	var p Point2D
	for i := range p {
		v, err := c.ReadRawDouble()
		if err != nil {
			return Point2D{}, err
		}
		p[i] = v
	}

	return p, nil
}

// Read3BitDouble reads three bit doubles (3BD).
func (c *Cursor) Read3BitDouble() (Point3D, error) {
	var p Point3D
	for i := range p {
		v, err := c.ReadBitDouble()
		if err != nil {
			return Point3D{}, err
		}
		p[i] = v
	}

	return p, nil
}

// ReadModularChar reads a signed modular char (MC).
//
// Each byte carries 7 value bits, least significant group first; the high bit
// marks continuation. Bit 0x40 of the final byte is the sign.
func (c *Cursor) ReadModularChar() (int64, error) {
	pos := c.BitPos()

	var v int64
	shift := 0
	for _i := 0; _i < maxModularBytes; _i++ {
		b, err := c.ReadRawChar()
		if err != nil {
			return 0, err
		}
		if b&0x80 != 0 {
			v |= int64(b&0x7F) << shift
			shift += 7

			continue
		}

		v |= int64(b&0x3F) << shift
		if b&0x40 != 0 {
			v = -v
		}

		return v, nil
	}

	return 0, fmt.Errorf("%w: modular char longer than %d bytes at bit %d", errs.ErrMalformedField, maxModularBytes, pos)
}

// ReadUnsignedModularChar reads an unsigned modular char (UMC).
func (c *Cursor) ReadUnsignedModularChar() (uint64, error) {
	pos := c.BitPos()

	var v uint64
	shift := 0
	for _i := 0; _i < maxModularBytes; _i++ {
		b, err := c.ReadRawChar()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}

	return 0, fmt.Errorf("%w: modular char longer than %d bytes at bit %d", errs.ErrMalformedField, maxModularBytes, pos)
}

// maxModularBytes bounds a modular char to what fits in 64 bits.
const maxModularBytes = 10
