// Package dwgtest assembles synthetic drawing files for decoder tests.
//
// The builders write the minimal structure each container needs: file
// header, sentinel-framed sections, object map blocks and, for R2004 files,
// data pages plus the section map and page map system pages. Compressed
// payloads are emitted as a single literal run, which is a valid stream for
// the page decompressor.
package dwgtest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/bittest"
	"github.com/arloliu/dwg/section"
	"github.com/stretchr/testify/require"
)

var le = binary.LittleEndian

// LiteralStream encodes data as one literal run followed by the terminator.
//
// data must be empty or at least 4 bytes long.
func LiteralStream(t testing.TB, data []byte) []byte {
	t.Helper()
	if len(data) == 0 {
		return []byte{0x11}
	}
	require.GreaterOrEqual(t, len(data), 4, "literal run shorter than 4 bytes")

	var out []byte
	n := len(data) - 3
	if n <= 0x0F {
		out = append(out, byte(n))
	} else {
		out = append(out, 0x00)
		rest := n - 0x0F
		for rest > 0xFF {
			out = append(out, 0x00)
			rest -= 0xFF
		}
		out = append(out, byte(rest))
	}
	out = append(out, data...)

	return append(out, 0x11)
}

// Framed wraps an encoded data area between sentinels with the size preamble
// and CRC the given revision expects.
func Framed(ver format.Version, maint uint8, start, end section.Sentinel, body []byte) []byte {
	out := append([]byte(nil), start[:]...)
	sizeOff := len(out)
	out = le.AppendUint32(out, uint32(len(body)))
	ctx := section.Context{Version: ver, Maintenance: maint}
	if ctx.ExtraSizeField() {
		out = le.AppendUint32(out, 0)
	}
	if ver.Equals(format.R2007) {
		out = le.AppendUint32(out, uint32(len(body))*8)
	}
	out = append(out, body...)
	out = le.AppendUint16(out, checksum.CRC16(checksum.SectionSeed, out[sizeOff:]))

	return append(out, end[:]...)
}

// Delta is one object map record before encoding.
type Delta struct {
	Handle   uint64
	Location int64
}

// ObjectMap encodes object map blocks followed by the terminating empty block.
func ObjectMap(t testing.TB, blocks ...[]Delta) []byte {
	t.Helper()

	var out []byte
	for _, block := range blocks {
		w := bittest.NewWriter(t, format.R2000)
		for _, d := range block {
			w.UMC(d.Handle).MC(d.Location)
		}
		out = appendObjectMapBlock(out, w.Bytes())
	}

	return appendObjectMapBlock(out, nil)
}

func appendObjectMapBlock(out, body []byte) []byte {
	start := len(out)
	out = binary.BigEndian.AppendUint16(out, uint16(len(body)+2))
	out = append(out, body...)

	return binary.BigEndian.AppendUint16(out, checksum.CRC16(checksum.SectionSeed, out[start:]))
}

// Preview encodes a preview section with the given entries followed by size
// bytes of image data.
func Preview(entries []section.PreviewEntry, image []byte) []byte {
	var dir []byte
	dir = append(dir, byte(len(entries)))
	for _, e := range entries {
		dir = append(dir, e.Code)
		dir = le.AppendUint32(dir, e.Start)
		dir = le.AppendUint32(dir, e.Size)
	}
	dir = append(dir, image...)

	out := append([]byte(nil), section.PreviewStart[:]...)
	out = le.AppendUint32(out, uint32(len(dir)))
	out = append(out, dir...)

	return append(out, section.PreviewEnd[:]...)
}

// Template encodes an R2004 template section.
func Template(description string, measurement uint16) []byte {
	out := le.AppendUint16(nil, uint16(len(description)))
	out = append(out, description...)

	return le.AppendUint16(out, measurement)
}

func versionToken(t testing.TB, ver format.Version) []byte {
	t.Helper()
	tok := ver.Token()
	require.Len(t, tok, format.VersionTokenSize)

	return []byte(tok)
}

// LegacyHeader encodes a legacy file header with a valid locator CRC.
func LegacyHeader(t testing.TB, ver format.Version, maint uint8, codePage uint16, imageSeeker uint32, locs []section.SectionLocator) []byte {
	t.Helper()

	out := make([]byte, section.LegacyFixedSize)
	copy(out, versionToken(t, ver))
	out[0x0B] = maint
	out[0x0C] = 1
	le.PutUint32(out[0x0D:], imageSeeker)
	le.PutUint16(out[0x13:], codePage)
	le.PutUint32(out[0x15:], uint32(len(locs)))
	for _, l := range locs {
		out = append(out, l.Number)
		out = le.AppendUint32(out, l.Seeker)
		out = le.AppendUint32(out, l.Size)
	}
	out = le.AppendUint16(out, checksum.LegacyLocatorCRC(out))

	return append(out, section.LegacyTrailer[:]...)
}

// LegacySection is a section placed into a legacy file.
type LegacySection struct {
	Number uint8
	Data   []byte
}

// LegacyFile lays out a legacy file: header, sections in order, then the
// preview (if any) addressed by the image seeker.
func LegacyFile(t testing.TB, ver format.Version, maint uint8, codePage uint16, sections []LegacySection, preview []byte) []byte {
	t.Helper()

	headerLen := section.LegacyFixedSize + len(sections)*section.LegacyRecordSize + 2 + section.SentinelSize
	locs := make([]section.SectionLocator, len(sections))
	off := headerLen
	for i, s := range sections {
		locs[i] = section.SectionLocator{Number: s.Number, Seeker: uint32(off), Size: uint32(len(s.Data))}
		off += len(s.Data)
	}

	var imageSeeker uint32
	if preview != nil {
		imageSeeker = uint32(off)
	}

	var buf bytes.Buffer
	buf.Write(LegacyHeader(t, ver, maint, codePage, imageSeeker, locs))
	require.Equal(t, headerLen, buf.Len())
	for _, s := range sections {
		buf.Write(s.Data)
	}
	buf.Write(preview)

	return buf.Bytes()
}
