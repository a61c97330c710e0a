// Package bitstream implements the bit cursor and primitive value decoders of
// the drawing format.
//
// Drawing sections are bit streams read most significant bit first. Values may
// start at any bit position, so every multi-byte value is assembled one byte at
// a time from a shifted window over two adjacent bytes:
//
//	byte = (data[i] << bitOffset) | (data[i+1] >> (8 - bitOffset))
//
// # Value kinds
//
//	B     1 bit
//	BB    2 bits
//	RC    raw byte
//	RS    raw 16-bit little-endian
//	RL    raw 32-bit little-endian
//	RLL   raw 64-bit little-endian
//	RD    raw IEEE-754 double, little-endian
//	BS    bit short:  BB selector, 00 RS / 01 RC / 10 zero / 11 256
//	BL    bit long:   BB selector, 00 RL / 01 RC / 10 zero / 11 unused
//	BD    bit double: BB selector, 00 RD / 01 1.0 / 10 0.0 / 11 unused
//	BLL   3-bit byte count followed by that many little-endian bytes
//	TV    BS length then characters (8-bit through R2004, UTF-16LE after)
//	H     handle reference: code and counter nibbles, then counter bytes MSB first
//	CMC   color: BS index, from R2004 an RGB block and a method byte
//	MC    modular char: base-128 little-endian varint, byte aligned in practice
//
// A Cursor is owned by a single decoder at a time and is not safe for
// concurrent use.
package bitstream
