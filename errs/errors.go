// Package errs defines the error values returned by the dwg decoder.
//
// All structural failures are reported as one of the sentinel errors below,
// wrapped with context. Callers compare with errors.Is:
//
//	doc, err := dwg.DecodeFile("plan.dwg")
//	if errors.Is(err, errs.ErrSentinelMismatch) {
//	    // file is damaged or not a drawing
//	}
//
// Errors surfaced by the top-level decoder are always *DecodeError values that
// name the component which failed and the byte offset where it failed.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion is returned for unknown or unimplemented version tokens.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrTruncatedInput is returned when a read would run past the end of a buffer or file.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrSentinelMismatch is returned when a 16-byte section sentinel or a magic
	// identifier does not match the expected value.
	ErrSentinelMismatch = errors.New("sentinel mismatch")
	// ErrChecksumMismatch is returned when a CRC validation fails.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrDecompressionOverrun is returned when decompression produces more bytes than declared.
	ErrDecompressionOverrun = errors.New("decompression overrun")
	// ErrDecompressionShortfall is returned when decompression produces fewer bytes than declared.
	ErrDecompressionShortfall = errors.New("decompression shortfall")
	// ErrMalformedField is returned when an encoding selector or field value is
	// defined as unused or is otherwise impossible.
	ErrMalformedField = errors.New("malformed field")
	// ErrSizeAccountingMismatch is returned when a section's field loop does not end
	// exactly at its declared size.
	ErrSizeAccountingMismatch = errors.New("size accounting mismatch")

	// ErrSectionNotFound is returned when a required logical section is missing
	// from the section map.
	ErrSectionNotFound = errors.New("section not found")
	// ErrEncryptedSection is returned for password protected section data.
	ErrEncryptedSection = errors.New("encrypted section")
	// ErrSectionNotRetained is returned when asking for section bytes that were not kept.
	ErrSectionNotRetained = errors.New("section not retained")
	// ErrInvalidCompressionType is returned for unknown compression types.
	ErrInvalidCompressionType = errors.New("invalid compression type")
	// ErrDuplicateName is returned when a name is registered twice.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrNameNotFound is returned when looking up a name that was never registered.
	ErrNameNotFound = errors.New("name not found")
	// ErrInvalidName is returned when registering an empty name.
	ErrInvalidName = errors.New("invalid name")
	// ErrHashCollision is returned when two distinct names hash to the same identifier
	// and a lookup by identifier alone cannot be answered.
	ErrHashCollision = errors.New("hash collision")
)

// DecodeError reports the component and byte offset at which decoding failed.
type DecodeError struct {
	Component string // e.g. "classes", "object map", "file header"
	Offset    int64  // byte offset within the component's buffer, or file offset
	Err       error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("dwg: %s at offset 0x%X: %v", e.Component, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// At wraps err into a *DecodeError for the given component and offset.
//
// If err already carries a *DecodeError the innermost component is kept and err
// is returned unchanged. At returns nil when err is nil.
func At(component string, offset int64, err error) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	return &DecodeError{Component: component, Offset: offset, Err: err}
}

// Truncated builds an ErrTruncatedInput error describing a short read.
func Truncated(what string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, %d available", ErrTruncatedInput, what, need, have)
}
