// Package bittest builds bit-packed fixtures for decoder tests.
package bittest

import (
	"bytes"
	"math"
	"testing"
	"unicode/utf16"

	"github.com/arloliu/dwg/format"
	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

// Writer encodes drawing primitives MSB first, mirroring bitstream.Cursor.
type Writer struct {
	t    testing.TB
	buf  bytes.Buffer
	w    *bitio.Writer
	ver  format.Version
	bits int64
}

// NewWriter creates a writer producing values for the given revision.
func NewWriter(t testing.TB, ver format.Version) *Writer {
	w := &Writer{t: t, ver: ver}
	w.w = bitio.NewWriter(&w.buf)

	return w
}

// BitLen returns the number of bits written so far.
func (w *Writer) BitLen() int64 {
	return w.bits
}

// Bits writes the n low bits of v.
func (w *Writer) Bits(v uint64, n uint8) *Writer {
	w.t.Helper()
	require.NoError(w.t, w.w.WriteBits(v, n))
	w.bits += int64(n)

	return w
}

// B writes one bit.
func (w *Writer) B(v bool) *Writer {
	if v {
		return w.Bits(1, 1)
	}

	return w.Bits(0, 1)
}

// Raw writes bytes at the current bit position.
func (w *Writer) Raw(data ...byte) *Writer {
	for _, b := range data {
		w.Bits(uint64(b), 8)
	}

	return w
}

// RC writes a raw byte.
func (w *Writer) RC(v uint8) *Writer { return w.Raw(v) }

// RS writes a raw little-endian 16-bit word.
func (w *Writer) RS(v uint16) *Writer { return w.Raw(byte(v), byte(v>>8)) }

// RL writes a raw little-endian 32-bit word.
func (w *Writer) RL(v uint32) *Writer {
	return w.Raw(byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// RLL writes a raw little-endian 64-bit word.
func (w *Writer) RLL(v uint64) *Writer {
	w.RL(uint32(v))
	return w.RL(uint32(v >> 32))
}

// RD writes a raw little-endian double.
func (w *Writer) RD(v float64) *Writer { return w.RLL(math.Float64bits(v)) }

// BS writes a bit short using the most compact selector.
func (w *Writer) BS(v int16) *Writer {
	switch {
	case v == 0:
		return w.Bits(2, 2)
	case v == 256:
		return w.Bits(3, 2)
	case v > 0 && v < 256:
		return w.Bits(1, 2).RC(uint8(v))
	default:
		return w.Bits(0, 2).RS(uint16(v))
	}
}

// BL writes a bit long using the most compact selector.
func (w *Writer) BL(v int32) *Writer {
	switch {
	case v == 0:
		return w.Bits(2, 2)
	case v > 0 && v < 256:
		return w.Bits(1, 2).RC(uint8(v))
	default:
		return w.Bits(0, 2).RL(uint32(v))
	}
}

// BD writes a bit double using the most compact selector.
func (w *Writer) BD(v float64) *Writer {
	switch {
	case v == 1.0:
		return w.Bits(1, 2)
	case v == 0.0 && !math.Signbit(v):
		return w.Bits(2, 2)
	default:
		return w.Bits(0, 2).RD(v)
	}
}

// BLL writes a bit long long with the minimal byte count.
func (w *Writer) BLL(v uint64) *Writer {
	n := 0
	for x := v; x != 0; x >>= 8 {
		n++
	}
	w.Bits(uint64(n), 3)
	for i := 0; i < n; i++ {
		w.RC(byte(v >> (8 * i)))
	}

	return w
}

// Point2D writes two raw doubles.
func (w *Writer) Point2D(p [2]float64) *Writer {
	return w.RD(p[0]).RD(p[1])
}

// Point3D writes three bit doubles.
func (w *Writer) Point3D(p [3]float64) *Writer {
	return w.BD(p[0]).BD(p[1]).BD(p[2])
}

// TV writes a bit-coded string in the writer's revision encoding.
func (w *Writer) TV(s string) *Writer {
	if w.ver.WideText() {
		units := utf16.Encode([]rune(s))
		w.BS(int16(len(units)))
		for _, u := range units {
			w.RS(u)
		}

		return w
	}

	w.BS(int16(len(s)))

	return w.Raw([]byte(s)...)
}

// H writes a handle reference with the minimal byte count.
func (w *Writer) H(code uint8, value uint64) *Writer {
	var b []byte
	for x := value; x != 0; x >>= 8 {
		b = append([]byte{byte(x)}, b...)
	}
	w.RC(code<<4 | uint8(len(b)))

	return w.Raw(b...)
}

// CMC writes a color. The RGB block and method byte are written from R2004.
func (w *Writer) CMC(index int16, rgb uint32, method uint8) *Writer {
	w.BS(index)
	if !w.ver.AtLeast(format.R2004) {
		return w
	}

	switch {
	case rgb == 0:
		w.Bits(2, 2)
	case rgb < 256:
		w.Bits(1, 2).RC(uint8(rgb))
	default:
		w.Bits(0, 2).RL(rgb)
	}

	return w.RC(method)
}

// UMC writes an unsigned modular char.
func (w *Writer) UMC(v uint64) *Writer {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v == 0 {
			return w.RC(b)
		}
		w.RC(b | 0x80)
	}
}

// MC writes a signed modular char.
func (w *Writer) MC(v int64) *Writer {
	neg := v < 0
	if neg {
		v = -v
	}
	u := uint64(v)
	for u >= 0x40 {
		w.RC(byte(u&0x7F) | 0x80)
		u >>= 7
	}
	last := byte(u)
	if neg {
		last |= 0x40
	}

	return w.RC(last)
}

// Align pads with zero bits to the next byte boundary.
func (w *Writer) Align() *Writer {
	if rem := w.bits % 8; rem != 0 {
		w.Bits(0, uint8(8-rem))
	}

	return w
}

// Bytes flushes pending bits, zero padded, and returns the encoded buffer.
func (w *Writer) Bytes() []byte {
	w.t.Helper()
	require.NoError(w.t, w.w.Close())

	return w.buf.Bytes()
}
