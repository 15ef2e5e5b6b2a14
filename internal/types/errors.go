package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrNotFound reports that a key is absent from a catalog or database.
	ErrNotFound = errors.New("entry not found")

	// ErrInvalidFormat reports a malformed binary header or fixed record.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrParse reports a malformed required token.
	ErrParse = errors.New("parse error")
)

// OutOfBoundsError is returned when attempting to read beyond buffer bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// IOError is returned when a resource cannot be opened or read.
type IOError struct {
	Op   string // "open", "read", "close"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// InvalidFormatError is returned when a SID header is malformed.
type InvalidFormatError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: invalid format at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NotFoundError is returned when a key has no entry in a catalog or database.
//
// It is not a failure for control flow purposes: callers that only want to
// know whether an entry exists should test errors.Is(err, ErrNotFound).
type NotFoundError struct {
	Path string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no entry for %q", e.Path, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError is returned when a required token is malformed.
type ParseError struct {
	Path   string
	Line   int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: cannot parse %q: %s", e.Path, e.Line, e.Token, e.Reason)
	}
	return fmt.Sprintf("%s: cannot parse %q: %s", e.Path, e.Token, e.Reason)
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
