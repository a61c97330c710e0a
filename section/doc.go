// Package section defines the fixed binary structures of drawing files: the two
// file header layouts, section page headers, the R2004 page and section maps,
// sentinels, and the small fixed-layout sections (template, preview directory).
//
// # Legacy File Header (R13-R2000)
//
//	Offset | Size  | Field
//	-------|-------|-------------------------------------------------
//	0x00   | 6     | version token, e.g. "AC1015"
//	0x06   | 5     | zero bytes
//	0x0B   | 1     | maintenance version
//	0x0C   | 1     | flag byte (1)
//	0x0D   | 4     | image seeker
//	0x11   | 2     | unknown
//	0x13   | 2     | code page
//	0x15   | 4     | locator record count N
//	0x19   | 9*N   | records: number (1), seeker (4), size (4)
//	       | 2     | CRC-16 of bytes 0x00 up to here
//	       | 16    | trailer 95 A0 4E 28 99 82 1A E5 5E 41 E0 5F 9D 3A 4D 00
//
// # R2004 File Header (R2004, R2010, R2013, R2018)
//
//	Offset | Size  | Field
//	-------|-------|-------------------------------------------------
//	0x00   | 6     | version token
//	0x0B   | 1     | maintenance version
//	0x0D   | 4     | preview address
//	0x11   | 1     | application version
//	0x12   | 1     | application maintenance version
//	0x13   | 2     | code page
//	0x18   | 4     | security flags
//	0x20   | 4     | summary info address
//	0x24   | 4     | VBA project address
//	0x80   | 0x6C  | page directory, XOR a linear congruential keystream
//	0xEC   | 0x14  | unused
//
// The keystream starts from seed 1; for every byte the seed becomes
// seed*0x343FD + 0x269EC3 and the key byte is (seed >> 16) & 0xFF. The
// decrypted block starts with "AcFssFcAJMB\x00" and locates the page map.
//
// # Section Pages
//
// System pages (page map 0x41630E3B, section map 0x4163003B) start with a
// plain 20-byte header. Data pages start with a 32-byte header whose eight
// little-endian words are XORed with 0x4164536B ^ pageAddress. The first word
// of a deobfuscated data page header is 0x4163043B.
//
// Every parser in this package works on complete byte slices; reading from the
// file is left to the caller.
package section
