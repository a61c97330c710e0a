package compress

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// LZ77Decompressor decodes the token stream used by compressed section pages
// of R2004 and later files.
//
// The stream opens with a literal run, then alternates between opcodes and
// literal runs until the terminator opcode 0x11:
//
//	opcode      copy length                 copy offset
//	0x10        9 + long count              two-byte offset + 0x3FFF
//	0x12-0x1F   (op & 0x0F) + 2             two-byte offset + 0x3FFF
//	0x20        0x21 + long count           two-byte offset
//	0x21-0x3F   op - 0x1E                   two-byte offset
//	0x40-0xFF   (op >> 4) - 1               (next << 2) | ((op & 0x0C) >> 2)
//
// A copy reads from offset+1 bytes behind the end of the output, one byte at a
// time, so a copy may overlap the bytes it produces. The low two bits of the
// last offset byte (or of the opcode for 0x40-0xFF) give the number of literal
// bytes that follow the copy; zero means an explicit literal length follows.
type LZ77Decompressor struct{}

var _ SizedDecompressor = (*LZ77Decompressor)(nil)

// NewLZ77Decompressor creates the section page decompressor.
func NewLZ77Decompressor() LZ77Decompressor {
	return LZ77Decompressor{}
}

// Decompress decodes data without checking the produced size.
func (d LZ77Decompressor) Decompress(data []byte) ([]byte, error) {
	return decodeLZ77(data, -1)
}

// DecompressSize decodes data and requires exactly size output bytes.
func (d LZ77Decompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative decompressed size %d", errs.ErrMalformedField, size)
	}

	return decodeLZ77(data, size)
}

const lz77Terminator = 0x11

type lzStream struct {
	src  []byte
	pos  int
	out  []byte
	size int // declared output size, -1 when unknown
}

func decodeLZ77(src []byte, size int) ([]byte, error) {
	capacity := size
	if capacity < 0 {
		capacity = len(src) * 2
	}
	s := &lzStream{src: src, out: make([]byte, 0, capacity), size: size}

	if len(src) == 0 {
		return s.finish()
	}

	lit, opcode, err := s.literalLength()
	if err != nil {
		return nil, err
	}
	if err := s.literals(lit); err != nil {
		return nil, err
	}

	for !s.full() {
		if opcode == 0 {
			if s.pos >= len(s.src) {
				break
			}
			opcode = s.src[s.pos]
			s.pos++
		}
		if opcode == lz77Terminator {
			break
		}

		length, offset, lit, err := s.token(opcode)
		if err != nil {
			return nil, err
		}
		if err := s.copyBack(offset, length); err != nil {
			return nil, err
		}

		if s.full() && lit == 0 {
			break
		}
		opcode = 0
		if lit == 0 {
			if lit, opcode, err = s.literalLength(); err != nil {
				return nil, err
			}
		}
		if err := s.literals(lit); err != nil {
			return nil, err
		}
	}

	return s.finish()
}

// full reports whether the declared output size has been produced. Pages are
// padded after the last opcode, so decoding stops here.
func (s *lzStream) full() bool {
	return s.size >= 0 && len(s.out) == s.size
}

func (s *lzStream) finish() ([]byte, error) {
	if s.size >= 0 && len(s.out) < s.size {
		return nil, fmt.Errorf("%w: produced %d of %d bytes", errs.ErrDecompressionShortfall, len(s.out), s.size)
	}

	return s.out, nil
}

func (s *lzStream) next() (byte, error) {
	if s.pos >= len(s.src) {
		return 0, fmt.Errorf("%w: compressed stream ends at byte %d", errs.ErrTruncatedInput, s.pos)
	}
	b := s.src[s.pos]
	s.pos++

	return b, nil
}

// token decodes one opcode into copy length, copy offset and literal count.
func (s *lzStream) token(opcode byte) (length, offset, lit int, err error) {
	switch {
	case opcode == 0x10:
		if length, err = s.longCount(); err != nil {
			return 0, 0, 0, err
		}
		length += 9
		offset, lit, err = s.twoByteOffset()
		offset += 0x3FFF
	case opcode >= 0x12 && opcode <= 0x1F:
		length = int(opcode&0x0F) + 2
		offset, lit, err = s.twoByteOffset()
		offset += 0x3FFF
	case opcode == 0x20:
		if length, err = s.longCount(); err != nil {
			return 0, 0, 0, err
		}
		length += 0x21
		offset, lit, err = s.twoByteOffset()
	case opcode >= 0x21 && opcode <= 0x3F:
		length = int(opcode) - 0x1E
		offset, lit, err = s.twoByteOffset()
	case opcode >= 0x40:
		length = int(opcode>>4) - 1
		var next byte
		if next, err = s.next(); err != nil {
			return 0, 0, 0, err
		}
		offset = int(next)<<2 | int(opcode&0x0C)>>2
		lit = int(opcode & 0x03)
	default:
		err = fmt.Errorf("%w: opcode 0x%02X at byte %d", errs.ErrMalformedField, opcode, s.pos-1)
	}

	return length, offset, lit, err
}

// literalLength reads a literal run length. A byte of 0x10 or more is not a
// length but the next opcode, returned with a zero length.
func (s *lzStream) literalLength() (int, byte, error) {
	b, err := s.next()
	if err != nil {
		return 0, 0, err
	}

	switch {
	case b == 0x00:
		total := 0x0F
		for {
			if b, err = s.next(); err != nil {
				return 0, 0, err
			}
			if b != 0x00 {
				break
			}
			total += 0xFF
		}

		return total + int(b) + 3, 0, nil
	case b <= 0x0F:
		return int(b) + 3, 0, nil
	default:
		return 0, b, nil
	}
}

// longCount reads an extended copy length: each zero byte adds 0xFF and the
// first non-zero byte ends the run.
func (s *lzStream) longCount() (int, error) {
	b, err := s.next()
	if err != nil {
		return 0, err
	}
	if b != 0x00 {
		return int(b), nil
	}

	total := 0xFF
	for {
		if b, err = s.next(); err != nil {
			return 0, err
		}
		if b != 0x00 {
			return total + int(b), nil
		}
		total += 0xFF
	}
}

func (s *lzStream) twoByteOffset() (offset, lit int, err error) {
	first, err := s.next()
	if err != nil {
		return 0, 0, err
	}
	second, err := s.next()
	if err != nil {
		return 0, 0, err
	}

	return int(first>>2) | int(second)<<6, int(first & 0x03), nil
}

func (s *lzStream) grow(n int) error {
	if s.size >= 0 && len(s.out)+n > s.size {
		return fmt.Errorf("%w: %d bytes past declared size %d", errs.ErrDecompressionOverrun, len(s.out)+n-s.size, s.size)
	}

	return nil
}

func (s *lzStream) copyBack(offset, length int) error {
	start := len(s.out) - offset - 1
	if start < 0 {
		return fmt.Errorf("%w: back-reference %d bytes behind output of %d bytes", errs.ErrMalformedField, offset+1, len(s.out))
	}
	if err := s.grow(length); err != nil {
		return err
	}

	for i := 0; i < length; i++ {
		s.out = append(s.out, s.out[start+i])
	}

	return nil
}

func (s *lzStream) literals(n int) error {
	if n == 0 {
		return nil
	}
	if s.pos+n > len(s.src) {
		return errs.Truncated("literal run", n, len(s.src)-s.pos)
	}
	if err := s.grow(n); err != nil {
		return err
	}
	s.out = append(s.out, s.src[s.pos:s.pos+n]...)
	s.pos += n

	return nil
}
