package format

import (
	"fmt"

	"github.com/arloliu/dwg/errs"
)

// Version is a drawing format revision. Values are totally ordered by release.
//
// R15 and R2000 name the same revision (token AC1015) and compare equal.
type Version uint8

const (
	VersionUnknown Version = 0
	R13            Version = 1 // AC1012
	R14            Version = 2 // AC1014
	R2000          Version = 3 // AC1015
	R2004          Version = 4 // AC1018
	R2007          Version = 5 // AC1021
	R2010          Version = 6 // AC1024
	R2013          Version = 7 // AC1027
	R2018          Version = 8 // AC1032

	// R15 is the release name of the AC1015 format.
	R15 = R2000
)

// VersionTokenSize is the length of the ASCII version token at file offset 0.
const VersionTokenSize = 6

var versionTokens = map[string]Version{
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": R2000,
	"AC1018": R2004,
	"AC1021": R2007,
	"AC1024": R2010,
	"AC1027": R2013,
	"AC1032": R2018,
}

// ParseVersion maps a 6-byte version token to its Version.
//
// Returns errs.ErrUnsupportedVersion for short or unknown tokens.
func ParseVersion(token []byte) (Version, error) {
	if len(token) < VersionTokenSize {
		return VersionUnknown, fmt.Errorf("%w: token %q too short", errs.ErrUnsupportedVersion, token)
	}

	v, ok := versionTokens[string(token[:VersionTokenSize])]
	if !ok {
		return VersionUnknown, fmt.Errorf("%w: %q", errs.ErrUnsupportedVersion, token[:VersionTokenSize])
	}

	return v, nil
}

// Token returns the on-disk token of the version, or "" for VersionUnknown.
func (v Version) Token() string {
	switch v {
	case R13:
		return "AC1012"
	case R14:
		return "AC1014"
	case R2000:
		return "AC1015"
	case R2004:
		return "AC1018"
	case R2007:
		return "AC1021"
	case R2010:
		return "AC1024"
	case R2013:
		return "AC1027"
	case R2018:
		return "AC1032"
	default:
		return ""
	}
}

func (v Version) String() string {
	switch v {
	case R13:
		return "R13"
	case R14:
		return "R14"
	case R2000:
		return "R2000"
	case R2004:
		return "R2004"
	case R2007:
		return "R2007"
	case R2010:
		return "R2010"
	case R2013:
		return "R2013"
	case R2018:
		return "R2018"
	default:
		return "Unknown"
	}
}

// Valid reports whether v is a known revision.
func (v Version) Valid() bool {
	return v >= R13 && v <= R2018
}

// Equals reports whether v is exactly other.
func (v Version) Equals(other Version) bool { return v == other }

// InRange reports whether lo <= v <= hi.
func (v Version) InRange(lo, hi Version) bool { return v >= lo && v <= hi }

// AtLeast reports whether v is other or a later revision.
func (v Version) AtLeast(other Version) bool { return v >= other }

// AtMost reports whether v is other or an earlier revision.
func (v Version) AtMost(other Version) bool { return v <= other }

// Compare returns -1, 0 or +1 depending on the release order of v and other.
func (v Version) Compare(other Version) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

// PageContainer reports whether the revision stores sections in the paged,
// compressed container introduced with R2004.
func (v Version) PageContainer() bool { return v >= R2004 }

// WideText reports whether strings are stored as UTF-16 code units.
func (v Version) WideText() bool { return v >= R2007 }

// Predicate decides whether a version-gated field is present.
type Predicate func(Version) bool

// Always is a predicate that holds for every revision.
func Always(Version) bool { return true }

// Only returns a predicate that holds for exactly one revision.
func Only(target Version) Predicate {
	return func(v Version) bool { return v.Equals(target) }
}

// Between returns a predicate that holds for lo <= v <= hi.
func Between(lo, hi Version) Predicate {
	return func(v Version) bool { return v.InRange(lo, hi) }
}

// Since returns a predicate that holds for target and every later revision.
func Since(target Version) Predicate {
	return func(v Version) bool { return v.AtLeast(target) }
}

// Until returns a predicate that holds for target and every earlier revision.
func Until(target Version) Predicate {
	return func(v Version) bool { return v.AtMost(target) }
}
