// Package objmap decodes the object map, the table that maps every object
// handle to the location of the object's data.
//
// The map is a chain of blocks:
//
//	RS (big-endian)  block size, including these two bytes
//	...              pairs of UMC handle delta, MC location delta
//	RS (big-endian)  CRC of the size field and the pairs
//
// Deltas accumulate from zero at the start of every block. A block of size 2
// ends the map. Locations are file offsets for legacy files and offsets into
// the AcDb:AcDbObjects section for R2004 and later.
package objmap

import (
	"fmt"
	"sort"

	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/endian"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
)

const (
	component    = "object map"
	maxBlockSize = 2032 // the largest block writers emit, size field included
)

var be = endian.GetBigEndianEngine()

// Entry maps one handle to its object location.
type Entry struct {
	Handle   uint64
	Location int64
}

// Map is the decoded object map.
type Map struct {
	entries []Entry
	index   map[uint64]int64
	blocks  int
}

// Decode reads the object map from data.
//
// Decoding stops at the terminating block. Every other block's pairs must end
// exactly at its declared size.
func Decode(data []byte, ctx section.Context) (*Map, error) {
	m := &Map{index: make(map[uint64]int64)}

	pos := 0
	for {
		if len(data)-pos < 2 {
			return nil, errs.At(component, int64(pos), errs.Truncated("block size", 2, len(data)-pos))
		}

		size := int(be.Uint16(data[pos:]))
		if size == 2 {
			break
		}
		if size < 2 || size > maxBlockSize {
			return nil, errs.At(component, int64(pos), fmt.Errorf("%w: block size %d", errs.ErrMalformedField, size))
		}

		end := pos + size
		if end+2 > len(data) {
			return nil, errs.At(component, int64(pos), errs.Truncated("object map block", size+2, len(data)-pos))
		}

		if err := m.readBlock(ctx, data[pos+2:end]); err != nil {
			return nil, errs.At(component, int64(pos+2), err)
		}

		crc := be.Uint16(data[end:])
		if err := ctx.Verify(checksum.ObjectMap, data[pos:end], uint32(crc)); err != nil {
			return nil, errs.At(component, int64(end), err)
		}

		m.blocks++
		pos = end + 2
	}

	ctx.Log().WithFields(logrus.Fields{"blocks": m.blocks, "handles": len(m.index)}).Debug("object map decoded")

	return m, nil
}

func (m *Map) readBlock(ctx section.Context, body []byte) error {
	c := ctx.Cursor(body)

	var (
		handle   uint64
		location int64
	)
	for c.Offset() < c.Len() {
		dh, err := c.ReadUnsignedModularChar()
		if err != nil {
			return err
		}
		dl, err := c.ReadModularChar()
		if err != nil {
			return err
		}

		handle += dh
		location += dl
		m.entries = append(m.entries, Entry{Handle: handle, Location: location})
		m.index[handle] = location
	}

	return nil
}

// Lookup returns the location of the object with the given handle.
func (m *Map) Lookup(handle uint64) (int64, bool) {
	loc, ok := m.index[handle]
	return loc, ok
}

// Len returns the number of distinct handles.
func (m *Map) Len() int {
	return len(m.index)
}

// Blocks returns the number of non-empty blocks read.
func (m *Map) Blocks() int {
	return m.blocks
}

// Entries returns the records in file order.
func (m *Map) Entries() []Entry {
	return m.entries
}

// Handles returns the distinct handles in ascending order.
func (m *Map) Handles() []uint64 {
	handles := make([]uint64, 0, len(m.index))
	for h := range m.index {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	return handles
}
