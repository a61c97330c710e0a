// Package store keeps the raw bytes of decoded logical sections.
//
// Sections are held compressed with one of the general purpose codecs and
// fingerprinted with xxHash64 before compression, so callers can compare
// sections across files without expanding them.
package store

import (
	"fmt"
	"slices"

	"github.com/arloliu/dwg/compress"
	"github.com/arloliu/dwg/errs"
	"github.com/arloliu/dwg/format"
	"github.com/arloliu/dwg/internal/hash"
)

type entry struct {
	size        int
	fingerprint uint64
	data        []byte
}

// Store holds retained sections by logical name. A Store is filled during a
// single decode and is read-only afterwards; reads are safe for concurrent use.
type Store struct {
	algorithm format.CompressionType
	codec     compress.Codec
	sections  map[string]entry
	order     []string
	stats     compress.CompressionStats
}

// New creates an empty store compressing sections with the given algorithm.
//
// Returns errs.ErrInvalidCompressionType for an unknown algorithm.
func New(algorithm format.CompressionType) (*Store, error) {
	codec, err := compress.CreateCodec(algorithm, "section store")
	if err != nil {
		return nil, err
	}

	return &Store{
		algorithm: algorithm,
		codec:     codec,
		sections:  make(map[string]entry),
		stats:     compress.CompressionStats{Algorithm: algorithm},
	}, nil
}

// Algorithm returns the codec used for retained sections.
func (s *Store) Algorithm() format.CompressionType {
	return s.algorithm
}

// Put retains a copy of data under name, replacing an earlier section of the
// same name.
func (s *Store) Put(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("%w: empty section name", errs.ErrInvalidName)
	}

	packed, err := s.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("retain %s: %w", name, err)
	}
	if s.algorithm == format.CompressionNone {
		packed = slices.Clone(packed)
	}

	if old, ok := s.sections[name]; ok {
		s.stats.OriginalSize -= int64(old.size)
		s.stats.CompressedSize -= int64(len(old.data))
	} else {
		s.order = append(s.order, name)
	}
	s.sections[name] = entry{size: len(data), fingerprint: hash.Fingerprint(data), data: packed}
	s.stats.Add(compress.CompressionStats{OriginalSize: int64(len(data)), CompressedSize: int64(len(packed))})

	return nil
}

// Bytes returns the section's original bytes.
//
// Returns:
//   - []byte: a buffer owned by the caller
//   - error: errs.ErrSectionNotRetained for an unknown name,
//     errs.ErrDecompressionOverrun or errs.ErrDecompressionShortfall if the
//     section no longer expands to its original length, or
//     errs.ErrChecksumMismatch if the expanded bytes no longer match the
//     fingerprint taken when the section was stored
func (s *Store) Bytes(name string) ([]byte, error) {
	e, ok := s.sections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrSectionNotRetained, name)
	}

	data, err := s.codec.DecompressSize(e.data, e.size)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", name, err)
	}
	if s.algorithm == format.CompressionNone {
		data = slices.Clone(data)
	}
	if hash.Fingerprint(data) != e.fingerprint {
		return nil, fmt.Errorf("%w: retained section %s", errs.ErrChecksumMismatch, name)
	}

	return data, nil
}

// Fingerprint returns the xxHash64 of the section's original bytes.
func (s *Store) Fingerprint(name string) (uint64, error) {
	e, ok := s.sections[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrSectionNotRetained, name)
	}

	return e.fingerprint, nil
}

// Size returns the original length of a retained section.
func (s *Store) Size(name string) (int, bool) {
	e, ok := s.sections[name]
	return e.size, ok
}

// Names returns the retained section names in insertion order.
func (s *Store) Names() []string {
	return slices.Clone(s.order)
}

// Len returns the number of retained sections.
func (s *Store) Len() int {
	return len(s.sections)
}

// Stats returns the accumulated compression statistics.
func (s *Store) Stats() compress.CompressionStats {
	return s.stats
}
