// Package endian provides the byte order engines used by the decoder.
//
// Drawing files are little-endian almost everywhere. The object map is the
// exception: its block sizes and CRCs are stored most significant byte first.
//
//	le := endian.GetLittleEndianEngine()
//	recordCount := le.Uint32(hdr[0x15:])
//
//	be := endian.GetBigEndianEngine()
//	blockSize := be.Uint16(objmap[off:])
//
// All functions and methods in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Words decodes len(dst) consecutive 32-bit words from src.
//
// src must hold at least 4*len(dst) bytes.
func Words(engine EndianEngine, src []byte, dst []uint32) {
	for i := range dst {
		dst[i] = engine.Uint32(src[i*4:])
	}
}

// AppendWords appends the 32-bit words in src to dst using the engine's byte order.
func AppendWords(engine EndianEngine, dst []byte, src []uint32) []byte {
	for _, w := range src {
		dst = engine.AppendUint32(dst, w)
	}

	return dst
}
