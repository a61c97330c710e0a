package section

import "github.com/arloliu/dwg/errs"

// Template is the content of the template section.
type Template struct {
	Description string
	Measurement uint16 // 0 English, 1 Metric
}

// Metric reports whether the drawing uses metric units.
func (t *Template) Metric() bool {
	return t.Measurement == 1
}

// ParseTemplate decodes an R2004 template section: an RS description length,
// the description bytes and the RS MEASUREMENT value.
func ParseTemplate(data []byte) (*Template, error) {
	if len(data) < 2 {
		return nil, errs.At("template", 0, errs.Truncated("template description length", 2, len(data)))
	}

	n := int(le.Uint16(data))
	if len(data) < 2+n+2 {
		return nil, errs.At("template", 2, errs.Truncated("template", 2+n+2, len(data)))
	}

	return &Template{
		Description: cString(data[2 : 2+n]),
		Measurement: le.Uint16(data[2+n:]),
	}, nil
}

// ParseMeasurement decodes the legacy measurement section, a single RL.
func ParseMeasurement(data []byte) (*Template, error) {
	if len(data) < 4 {
		return nil, errs.At("measurement", 0, errs.Truncated("measurement", 4, len(data)))
	}

	return &Template{Measurement: uint16(le.Uint32(data))}, nil
}
