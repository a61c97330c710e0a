package headervars

import (
	"time"

	"github.com/arloliu/dwg/bitstream"
)

// unixEpochDay is the Julian day number of 1970-01-01.
const unixEpochDay = 2440588

// JulianDate is a date stored as a day number plus milliseconds into the day.
//
// TDCREATE and TDUPDATE hold calendar dates; TDINDWG and TDUSRTIMER reuse the
// layout for elapsed time.
type JulianDate struct {
	Day    int32
	Millis int32
}

// ReadJulianDate reads a date as two bit longs.
func ReadJulianDate(c *bitstream.Cursor) (JulianDate, error) {
	day, err := c.ReadBitLong()
	if err != nil {
		return JulianDate{}, err
	}
	ms, err := c.ReadBitLong()
	if err != nil {
		return JulianDate{}, err
	}

	return JulianDate{Day: day, Millis: ms}, nil
}

// IsZero reports whether the date was never set.
func (d JulianDate) IsZero() bool {
	return d.Day == 0 && d.Millis == 0
}

// Time converts a calendar date to UTC. Day numbers count from midnight.
func (d JulianDate) Time() time.Time {
	secs := (int64(d.Day) - unixEpochDay) * 86400

	return time.Unix(secs, 0).UTC().Add(time.Duration(d.Millis) * time.Millisecond)
}

// Duration converts an elapsed-time value.
func (d JulianDate) Duration() time.Duration {
	return time.Duration(d.Day)*24*time.Hour + time.Duration(d.Millis)*time.Millisecond
}
