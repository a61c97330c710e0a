// Package hash computes the 64-bit identifiers used to index class names and
// fingerprint section contents.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a DXF record name, folding ASCII letters to
// upper case first. DXF names are case-insensitive, so "Layout" and "LAYOUT"
// share an ID.
func ID(name string) uint64 {
	i := 0
	for i < len(name) && !isLower(name[i]) {
		i++
	}
	if i == len(name) {
		return xxhash.Sum64String(name)
	}

	d := xxhash.New()
	_, _ = d.WriteString(name[:i])
	var buf [64]byte
	for i < len(name) {
		n := 0
		for ; n < len(buf) && i < len(name); n, i = n+1, i+1 {
			c := name[i]
			if isLower(c) {
				c -= 'a' - 'A'
			}
			buf[n] = c
		}
		_, _ = d.Write(buf[:n])
	}

	return d.Sum64()
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// Fingerprint computes the xxHash64 of the given bytes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}
