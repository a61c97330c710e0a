// Package headervars decodes the header variable section.
//
// The section is a sentinel-framed bit stream of a few hundred drawing
// settings in a fixed order. Which fields are present depends on the file
// revision, and a handful of reserved fields of known width carry no
// documented meaning but still have to be consumed. The order and the
// version gates live in a single table (schema.go) interpreted by Decode.
package headervars

import (
	"fmt"

	"github.com/arloliu/dwg/bitstream"
	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
)

const component = "header variables"

// reader decodes one primitive. Code is the primitive's abbreviation (B, BS,
// BD, TV, H, ...).
type reader[T any] struct {
	code string
	read func(*bitstream.Cursor) (T, error)
}

var (
	readBit         = reader[bool]{"B", (*bitstream.Cursor).ReadBit}
	readBitShort    = reader[int16]{"BS", (*bitstream.Cursor).ReadBitShort}
	readBitLong     = reader[int32]{"BL", (*bitstream.Cursor).ReadBitLong}
	readBitLongLong = reader[uint64]{"BLL", (*bitstream.Cursor).ReadBitLongLong}
	readBitDouble   = reader[float64]{"BD", (*bitstream.Cursor).ReadBitDouble}
	readRawChar     = reader[uint8]{"RC", (*bitstream.Cursor).ReadRawChar}
	readCharAsShort = reader[int16]{"RC", charAsShort}
	readText        = reader[string]{"TV", (*bitstream.Cursor).ReadText}
	readHandle      = reader[bitstream.HandleRef]{"H", (*bitstream.Cursor).ReadHandle}
	readColor       = reader[bitstream.CmColor]{"CMC", (*bitstream.Cursor).ReadCmColor}
	read2RawDouble  = reader[bitstream.Point2D]{"2RD", (*bitstream.Cursor).Read2RawDouble}
	read3BitDouble  = reader[bitstream.Point3D]{"3BD", (*bitstream.Cursor).Read3BitDouble}
	readJulianDate  = reader[JulianDate]{"JD", ReadJulianDate}
)

// charAsShort reads an RC stored by R13 and R14 where later revisions store
// a BS.
func charAsShort(c *bitstream.Cursor) (int16, error) {
	v, err := c.ReadRawChar()
	return int16(v), err
}

// field is one schema entry.
type field struct {
	name     string
	code     string
	when     format.Predicate
	cond     func(*HeaderVariables) bool // optional, evaluated against fields read so far
	reserved bool
	read     func(*bitstream.Cursor, *HeaderVariables) error
}

func (f *field) applies(ver format.Version, vars *HeaderVariables) bool {
	if !f.when(ver) {
		return false
	}

	return f.cond == nil || f.cond(vars)
}

// value declares a field stored into the HeaderVariables member returned by dst.
func value[T any](name string, when format.Predicate, r reader[T], dst func(*HeaderVariables) *T) field {
	return field{
		name: name,
		code: r.code,
		when: when,
		read: func(c *bitstream.Cursor, h *HeaderVariables) error {
			v, err := r.read(c)
			if err != nil {
				return err
			}
			*dst(h) = v

			return nil
		},
	}
}

// reserved declares a field that is read and discarded.
func reserved[T any](name string, when format.Predicate, r reader[T]) field {
	return field{
		name:     name,
		code:     r.code,
		when:     when,
		reserved: true,
		read: func(c *bitstream.Cursor, _ *HeaderVariables) error {
			_, err := r.read(c)
			return err
		},
	}
}

func when(f field, cond func(*HeaderVariables) bool) field {
	f.cond = cond
	return f
}

// FieldInfo describes one schema entry.
type FieldInfo struct {
	Name        string
	Code        string // primitive type, e.g. "BS" or "3BD"
	Reserved    bool   // read and discarded
	Conditional bool   // present only when an earlier field has a given value
}

// Fields lists the schema entries a file of the given revision may contain,
// in file order.
func Fields(ver format.Version) []FieldInfo {
	out := make([]FieldInfo, 0, len(schema))
	for i := range schema {
		f := &schema[i]
		if !f.when(ver) {
			continue
		}
		out = append(out, FieldInfo{Name: f.name, Code: f.code, Reserved: f.reserved, Conditional: f.cond != nil})
	}

	return out
}

// Decode reads the header variable section from data.
//
// Parameters:
//   - data: the complete section, from the start sentinel to the end sentinel
//   - ctx: per-file decode settings
//
// Returns:
//   - *HeaderVariables: the decoded settings
//   - error: a *errs.DecodeError naming the failing field, wrapping
//     ErrSentinelMismatch, ErrTruncatedInput, ErrMalformedField,
//     ErrSizeAccountingMismatch or ErrChecksumMismatch
func Decode(data []byte, ctx section.Context) (*HeaderVariables, error) {
	c, frame, err := ctx.OpenFrame(data, section.HeaderVarsStart, component)
	if err != nil {
		return nil, err
	}

	vars := &HeaderVariables{}
	read := 0
	for i := range schema {
		f := &schema[i]
		if !f.applies(ctx.Version, vars) {
			continue
		}
		pos := c.BitPos()
		if err := f.read(c, vars); err != nil {
			return nil, errs.At(component, pos/8, fmt.Errorf("%s (%s): %w", f.name, f.code, err))
		}
		read++
	}

	if err := ctx.Close(c, frame, checksum.HeaderVariables, section.HeaderVarsEnd, component); err != nil {
		return nil, err
	}
	ctx.Log().WithFields(logrus.Fields{"fields": read, "size": frame.Size}).Debug("header variables decoded")

	return vars, nil
}
