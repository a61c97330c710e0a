package section

import (
	"bytes"
	"fmt"

	"github.com/arloliu/dwg/bitstream"
	"github.com/arloliu/dwg/errs"
)

// SentinelSize is the length of every sentinel.
const SentinelSize = 16

// Sentinel is a 16-byte marker bracketing a structural section.
type Sentinel [SentinelSize]byte

var (
	HeaderVarsStart = Sentinel{0xCF, 0x7B, 0x1F, 0x23, 0xFD, 0xDE, 0x38, 0xA9, 0x5F, 0x7C, 0x68, 0xB8, 0x4E, 0x6D, 0x33, 0x5F}
	HeaderVarsEnd   = Sentinel{0x30, 0x84, 0xE0, 0xDC, 0x02, 0x21, 0xC7, 0x56, 0xA0, 0x83, 0x97, 0x47, 0xB1, 0x92, 0xCC, 0xA0}

	ClassesStart = Sentinel{0x8D, 0xA1, 0xC4, 0xB8, 0xC4, 0xA9, 0xF8, 0xC5, 0xC0, 0xDC, 0xF4, 0x5F, 0xE7, 0xCF, 0xB6, 0x8A}
	ClassesEnd   = Sentinel{0x72, 0x5E, 0x3B, 0x47, 0x3B, 0x56, 0x07, 0x3A, 0x3F, 0x23, 0x0B, 0xA0, 0x18, 0x30, 0x49, 0x75}

	SecondHeaderStart = Sentinel{0xD4, 0x7B, 0x21, 0xCE, 0x28, 0x93, 0x9F, 0xBF, 0x53, 0x24, 0x40, 0x09, 0x12, 0x3C, 0xAA, 0x01}
	SecondHeaderEnd   = Sentinel{0x2B, 0x84, 0xDE, 0x31, 0xD7, 0x6C, 0x60, 0x40, 0xAC, 0xDB, 0xBF, 0xF6, 0xED, 0xC3, 0x55, 0xFE}

	PreviewStart = Sentinel{0x1F, 0x25, 0x6D, 0x07, 0xD4, 0x36, 0x28, 0x28, 0x9D, 0x57, 0xCA, 0x3F, 0x9D, 0x44, 0x10, 0x2B}
	PreviewEnd   = Sentinel{0xE0, 0xDA, 0x92, 0xF8, 0x2B, 0xC9, 0xD7, 0xD7, 0x62, 0xA8, 0x35, 0xC0, 0x62, 0xBB, 0xEF, 0xD4}

	// LegacyTrailer follows the locator table of a legacy file header.
	LegacyTrailer = Sentinel{0x95, 0xA0, 0x4E, 0x28, 0x99, 0x82, 0x1A, 0xE5, 0x5E, 0x41, 0xE0, 0x5F, 0x9D, 0x3A, 0x4D, 0x00}
)

// Match reports whether data starts with the sentinel.
func (s Sentinel) Match(data []byte) bool {
	return len(data) >= SentinelSize && bytes.Equal(s[:], data[:SentinelSize])
}

// Check returns errs.ErrSentinelMismatch unless data starts with the sentinel.
func (s Sentinel) Check(data []byte, what string) error {
	if len(data) < SentinelSize {
		return errs.Truncated(what+" sentinel", SentinelSize, len(data))
	}
	if !s.Match(data) {
		return fmt.Errorf("%w: %s: got % X", errs.ErrSentinelMismatch, what, data[:SentinelSize])
	}

	return nil
}

// Expect reads 16 bytes from the cursor and checks them against the sentinel.
func (s Sentinel) Expect(c *bitstream.Cursor, what string) error {
	b, err := c.ReadBytes(SentinelSize)
	if err != nil {
		return err
	}

	return s.Check(b, what)
}
