package bitstream

import (
	"fmt"
	"math"

	"github.com/arloliu/dwg/endian"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"golang.org/x/text/encoding"
)

// Cursor reads bit-packed values from an immutable byte buffer.
//
// The position is a byte offset plus a bit offset (0-7) within that byte. It
// only moves forward, except through an explicit Seek.
type Cursor struct {
	data    []byte
	byteOff int
	bitOff  uint8
	version format.Version
	charset *encoding.Decoder
}

// NewCursor creates a cursor positioned at the first bit of data.
//
// The version selects the character width of strings.
func NewCursor(data []byte, version format.Version) *Cursor {
	return &Cursor{data: data, version: version}
}

// Version returns the format revision the cursor decodes for.
func (c *Cursor) Version() format.Version {
	return c.version
}

// Len returns the size of the underlying buffer in bytes.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.byteOff
}

// BitOffset returns the bit offset (0-7) within the current byte.
func (c *Cursor) BitOffset() uint8 {
	return c.bitOff
}

// BitPos returns the absolute position in bits.
func (c *Cursor) BitPos() int64 {
	return int64(c.byteOff)*8 + int64(c.bitOff)
}

// ConsumedBytes returns the number of bytes touched so far, counting a
// partially read byte as consumed.
func (c *Cursor) ConsumedBytes() int {
	if c.bitOff > 0 {
		return c.byteOff + 1
	}

	return c.byteOff
}

// RemainingBits returns the number of unread bits.
func (c *Cursor) RemainingBits() int64 {
	return int64(len(c.data)-c.byteOff)*8 - int64(c.bitOff)
}

// Seek moves the cursor to the start of the given byte.
func (c *Cursor) Seek(byteOffset int) error {
	if byteOffset < 0 || byteOffset > len(c.data) {
		return fmt.Errorf("%w: seek to byte %d of %d", errs.ErrTruncatedInput, byteOffset, len(c.data))
	}
	c.byteOff = byteOffset
	c.bitOff = 0

	return nil
}

// AlignByte skips the remaining bits of a partially read byte.
func (c *Cursor) AlignByte() {
	if c.bitOff != 0 {
		c.byteOff++
		c.bitOff = 0
	}
}

func (c *Cursor) need(bits int) error {
	if int64(bits) > c.RemainingBits() {
		return fmt.Errorf("%w: need %d bits at bit %d, %d remaining",
			errs.ErrTruncatedInput, bits, c.BitPos(), c.RemainingBits())
	}

	return nil
}

func (c *Cursor) advance(bits int) {
	total := int(c.bitOff) + bits
	c.byteOff += total >> 3
	c.bitOff = uint8(total & 7)
}

// ReadBit reads a single bit (B).
func (c *Cursor) ReadBit() (bool, error) {
	if err := c.need(1); err != nil {
		return false, err
	}
	bit := c.data[c.byteOff]&(0x80>>c.bitOff) != 0
	c.advance(1)

	return bit, nil
}

// ReadBits reads n bits (n <= 64), most significant bit first.
func (c *Cursor) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: cannot read %d bits at once", errs.ErrMalformedField, n)
	}
	if err := c.need(n); err != nil {
		return 0, err
	}

	var v uint64
	for n > 0 {
		avail := 8 - int(c.bitOff)
		take := min(avail, n)
		bits := (c.data[c.byteOff] >> (avail - take)) & byte((1<<take)-1)
		v = v<<take | uint64(bits)
		c.advance(take)
		n -= take
	}

	return v, nil
}

// ReadRawChar reads an unsigned byte (RC) at any bit alignment.
func (c *Cursor) ReadRawChar() (uint8, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}

	b := c.data[c.byteOff]
	if c.bitOff != 0 {
		b = b<<c.bitOff | c.data[c.byteOff+1]>>(8-c.bitOff)
	}
	c.byteOff++

	return b, nil
}

// ReadRawShort reads a little-endian 16-bit word (RS).
func (c *Cursor) ReadRawShort() (uint16, error) {
	v, err := c.readLittleEndian(2)
	return uint16(v), err
}

// ReadRawLong reads a little-endian 32-bit word (RL).
func (c *Cursor) ReadRawLong() (uint32, error) {
	v, err := c.readLittleEndian(4)
	return uint32(v), err
}

// ReadRawLongLong reads a little-endian 64-bit word (RLL).
func (c *Cursor) ReadRawLongLong() (uint64, error) {
	return c.readLittleEndian(8)
}

// ReadRawDouble reads a little-endian IEEE-754 double (RD).
func (c *Cursor) ReadRawDouble() (float64, error) {
	v, err := c.readLittleEndian(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (c *Cursor) readLittleEndian(size int) (uint64, error) {
	if err := c.need(size * 8); err != nil {
		return 0, err
	}

	var v uint64
	for i := 0; i < size; i++ {
		b, _ := c.ReadRawChar()
		v |= uint64(b) << (8 * i)
	}

	return v, nil
}

// ReadBytes reads n bytes at any bit alignment into a new slice.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", errs.ErrMalformedField, n)
	}
	if err := c.need(n * 8); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	if c.bitOff == 0 {
		copy(out, c.data[c.byteOff:c.byteOff+n])
		c.byteOff += n

		return out, nil
	}

	for i := range out {
		out[i], _ = c.ReadRawChar()
	}

	return out, nil
}

// ReadAligned returns the next n bytes without copying. The cursor must be byte aligned.
func (c *Cursor) ReadAligned(n int) ([]byte, error) {
	if c.bitOff != 0 {
		return nil, fmt.Errorf("%w: aligned read at bit offset %d", errs.ErrMalformedField, c.bitOff)
	}
	if n < 0 || c.byteOff+n > len(c.data) {
		return nil, errs.Truncated("aligned read", n, len(c.data)-c.byteOff)
	}

	b := c.data[c.byteOff : c.byteOff+n]
	c.byteOff += n

	return b, nil
}

// ReadAlignedUint16 reads a byte-aligned 16-bit word in the engine's byte order.
func (c *Cursor) ReadAlignedUint16(engine endian.EndianEngine) (uint16, error) {
	b, err := c.ReadAligned(2)
	if err != nil {
		return 0, err
	}

	return engine.Uint16(b), nil
}

// ReadAlignedUint32 reads a byte-aligned 32-bit word in the engine's byte order.
func (c *Cursor) ReadAlignedUint32(engine endian.EndianEngine) (uint32, error) {
	b, err := c.ReadAligned(4)
	if err != nil {
		return 0, err
	}

	return engine.Uint32(b), nil
}
