package section

import (
	"github.com/arloliu/dwg/endian"
	"github.com/arloliu/dwg/errs"
)

const (
	lcgMultiplier uint32 = 0x343FD
	lcgIncrement  uint32 = 0x269EC3
)

// Keystream returns the first n bytes of the key that masks the R2004 page
// directory.
func Keystream(n int) []byte {
	key := make([]byte, n)
	state := uint32(1)
	for i := range key {
		state = state*lcgMultiplier + lcgIncrement
		key[i] = byte(state >> 16)
	}

	return key
}

var headerKey = Keystream(R2004EncryptedSize)

// DecryptDirectory returns a decrypted copy of the R2004 page directory block.
//
// The operation is its own inverse.
func DecryptDirectory(block []byte) ([]byte, error) {
	if len(block) < R2004EncryptedSize {
		return nil, errs.Truncated("page directory", R2004EncryptedSize, len(block))
	}

	out := make([]byte, R2004EncryptedSize)
	for i := range out {
		out[i] = block[i] ^ headerKey[i]
	}

	return out, nil
}

// PageMask returns the XOR mask of the header of a data page stored at the
// given file address.
func PageMask(address uint64) uint32 {
	return DataPageMaskSeed ^ uint32(address)
}

// DeobfuscatePageHeader unmasks the 32-byte header of a data page stored at
// address and returns its eight words.
func DeobfuscatePageHeader(data []byte, address uint64) ([8]uint32, error) {
	var words [8]uint32
	if len(data) < DataPageHeaderSize {
		return words, errs.Truncated("data page header", DataPageHeaderSize, len(data))
	}

	endian.Words(le, data[:DataPageHeaderSize], words[:])
	mask := PageMask(address)
	for i := range words {
		words[i] ^= mask
	}

	return words, nil
}
