package bitstream

import (
	"testing"

	"github.com/arloliu/dwg/endian"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/bittest"
	"github.com/stretchr/testify/require"
)

func TestCursor_ReadBits(t *testing.T) {
	c := NewCursor([]byte{0b1011_0011, 0b0101_1111}, format.R2000)

	bit, err := c.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)

	v, err := c.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b011), v)

	v, err = c.ReadBits(6)
	require.NoError(t, err)
	require.Equal(t, uint64(0b0011_01), v)
	require.Equal(t, 1, c.Offset())
	require.Equal(t, uint8(2), c.BitOffset())
	require.Equal(t, int64(10), c.BitPos())
	require.Equal(t, 2, c.ConsumedBytes())

	_, err = c.ReadBits(7)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestCursor_RawShiftedWindow(t *testing.T) {
	// 3 padding bits, then RC 0xA5, RS 0x1234, RL 0xDEADBEEF
	data := bittest.NewWriter(t, format.R2000).
		Bits(0b101, 3).
		RC(0xA5).
		RS(0x1234).
		RL(0xDEADBEEF).
		RD(2.5).
		Bytes()

	c := NewCursor(data, format.R2000)
	_, err := c.ReadBits(3)
	require.NoError(t, err)

	b, err := c.ReadRawChar()
	require.NoError(t, err)
	require.Equal(t, uint8(0xA5), b)

	s, err := c.ReadRawShort()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), s)

	l, err := c.ReadRawLong()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), l)

	d, err := c.ReadRawDouble()
	require.NoError(t, err)
	require.Equal(t, 2.5, d)
	require.Equal(t, uint8(3), c.BitOffset())
}

func TestCursor_RawAtBufferEnd(t *testing.T) {
	c := NewCursor([]byte{0xFF}, format.R2000)
	_, err := c.ReadBit()
	require.NoError(t, err)

	_, err = c.ReadRawChar()
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	require.Equal(t, int64(1), c.BitPos(), "failed read must not move the cursor")
}

func TestCursor_Aligned(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, format.R2000)

	v16, err := c.ReadAlignedUint16(endian.GetBigEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), v16)

	v32, err := c.ReadAlignedUint32(endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, uint32(0x06050403), v32)

	_, err = c.ReadAligned(1)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)

	require.NoError(t, c.Seek(0))
	_, _ = c.ReadBit()
	_, err = c.ReadAligned(1)
	require.ErrorIs(t, err, errs.ErrMalformedField)

	c.AlignByte()
	require.Equal(t, 1, c.Offset())
	require.Equal(t, uint8(0), c.BitOffset())

	require.ErrorIs(t, c.Seek(7), errs.ErrTruncatedInput)
}

func TestCursor_ReadBytes(t *testing.T) {
	data := bittest.NewWriter(t, format.R2000).Bits(1, 1).Raw('A', 'C', 'A', 'D').Bytes()
	c := NewCursor(data, format.R2000)
	_, _ = c.ReadBit()

	b, err := c.ReadBytes(4)
	require.NoError(t, err)
	require.Equal(t, []byte("ACAD"), b)

	_, err = c.ReadBytes(-1)
	require.ErrorIs(t, err, errs.ErrMalformedField)
}

func BenchmarkCursor_ReadBitDouble(b *testing.B) {
	w := bittest.NewWriter(b, format.R2000)
	for i := 0; i < 1024; i++ {
		w.BD(float64(i) * 0.5)
	}
	data := w.Bytes()

	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		c := NewCursor(data, format.R2000)
		for _i := 0; _i < 1024; _i++ {
			if _, err := c.ReadBitDouble(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
