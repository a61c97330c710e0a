// Package classes decodes the class section, the table of custom object and
// entity classes a drawing defines beyond the built-in types.
//
// The section is framed by ClassesStart/ClassesEnd sentinels. Its data area
// holds class records until the declared size is exhausted:
//
//	BS  class number
//	BS  proxy flags
//	TV  application name
//	TV  C++ class name
//	TV  DXF record name
//	B   was a zombie
//	BS  item class id (0x1F2 entity, 0x1F3 object)
//	R2004+:
//	BL  instance count
//	BS  DWG version
//	BS  maintenance version
//	BL  unknown
//	BL  unknown
//
// From R2004 the records are preceded by BS maximum class number, RC, RC, B.
package classes

import (
	"github.com/arloliu/dwg/bitstream"
	"github.com/arloliu/dwg/checksum"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/section"
	"github.com/sirupsen/logrus"
)

// Item class ids.
const (
	ItemEntity int16 = 0x1F2
	ItemObject int16 = 0x1F3
)

const component = "classes"

// Class is one custom class definition.
type Class struct {
	Number      int16
	ProxyFlags  uint16
	AppName     string
	CppName     string
	DXFName     string
	Zombie      bool
	ItemClassID int16

	// R2004 and later.
	InstanceCount      int32
	DWGVersion         int16
	MaintenanceVersion int16
	Unknown1           int32
	Unknown2           int32
}

// IsEntity reports whether the class defines a graphical entity.
func (c Class) IsEntity() bool {
	return c.ItemClassID == ItemEntity
}

// Decode reads the class section from data.
//
// Parameters:
//   - data: the complete section, from the start sentinel to the end sentinel
//   - ctx: per-file decode settings
//
// Returns:
//   - *Registry: the classes in file order, indexed by number and DXF name
//   - error: a *errs.DecodeError wrapping ErrSentinelMismatch,
//     ErrSizeAccountingMismatch, ErrTruncatedInput, ErrMalformedField or
//     ErrChecksumMismatch
func Decode(data []byte, ctx section.Context) (*Registry, error) {
	c, frame, err := ctx.OpenFrame(data, section.ClassesStart, component)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	if ctx.Version.AtLeast(format.R2004) {
		if reg.MaxClassNumber, err = readPreamble(c); err != nil {
			return nil, errs.At(component, int64(c.Offset()), err)
		}
	}

	for frame.Remaining(c) {
		start := c.Offset()
		cls, err := readClass(c)
		if err != nil {
			return nil, errs.At(component, int64(start), err)
		}
		if err := reg.add(cls); err != nil {
			ctx.Log().WithError(err).WithFields(logrus.Fields{"dxf_name": cls.DXFName, "number": cls.Number}).Debug("class name not indexed")
		}
	}

	if err := ctx.Close(c, frame, checksum.Classes, section.ClassesEnd, component); err != nil {
		return nil, err
	}
	ctx.Log().WithFields(logrus.Fields{"count": reg.Len(), "max_class_number": reg.MaxClassNumber}).Debug("classes decoded")

	return reg, nil
}

func readPreamble(c *bitstream.Cursor) (int16, error) {
	maxNum, err := c.ReadBitShort()
	if err != nil {
		return 0, err
	}
	if _, err := c.ReadRawChar(); err != nil {
		return 0, err
	}
	if _, err := c.ReadRawChar(); err != nil {
		return 0, err
	}
	if _, err := c.ReadBit(); err != nil {
		return 0, err
	}

	return maxNum, nil
}

func readClass(c *bitstream.Cursor) (Class, error) {
	var (
		cls Class
		err error
	)

	if cls.Number, err = c.ReadBitShort(); err != nil {
		return cls, err
	}
	flags, err := c.ReadBitShort()
	if err != nil {
		return cls, err
	}
	cls.ProxyFlags = uint16(flags)

	if cls.AppName, err = c.ReadText(); err != nil {
		return cls, err
	}
	if cls.CppName, err = c.ReadText(); err != nil {
		return cls, err
	}
	if cls.DXFName, err = c.ReadText(); err != nil {
		return cls, err
	}
	if cls.Zombie, err = c.ReadBit(); err != nil {
		return cls, err
	}
	if cls.ItemClassID, err = c.ReadBitShort(); err != nil {
		return cls, err
	}

	if !c.Version().AtLeast(format.R2004) {
		return cls, nil
	}

	if cls.InstanceCount, err = c.ReadBitLong(); err != nil {
		return cls, err
	}
	if cls.DWGVersion, err = c.ReadBitShort(); err != nil {
		return cls, err
	}
	if cls.MaintenanceVersion, err = c.ReadBitShort(); err != nil {
		return cls, err
	}
	if cls.Unknown1, err = c.ReadBitLong(); err != nil {
		return cls, err
	}
	cls.Unknown2, err = c.ReadBitLong()

	return cls, err
}
