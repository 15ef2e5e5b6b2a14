// Package binary provides bounds-checked binary reading primitives for
// fixed-layout file headers.
package binary

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// NewBytesReader creates a SafeReader over an in-memory buffer.
func NewBytesReader(data []byte, path string) *SafeReader {
	return NewSafeReader(bytes.NewReader(data), int64(len(data)), path)
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// FixedString reads a fixed-width text area of n bytes.
//
// The area is not required to hold a terminator: the returned slice is a
// bounded copy, cut at the first NUL byte if there is one.
func (sr *SafeReader) FixedString(off int64, n int, what string) ([]byte, error) {
	buf := make([]byte, n)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return buf, nil
}

// ChainReader reads fields at fixed offsets with deferred error checking.
// This avoids repetitive "if err != nil" checks when decoding a header.
// After the first failure every subsequent read returns a zero value.
type ChainReader struct {
	*SafeReader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(sr *SafeReader) *ChainReader {
	return &ChainReader{SafeReader: sr}
}

// Uint8 reads a single byte at off.
func (cr *ChainReader) Uint8(off int64, what string) uint8 {
	return readChained[uint8](cr, off, what)
}

// Uint16 reads a big-endian 16-bit value at off.
func (cr *ChainReader) Uint16(off int64, what string) uint16 {
	return readChained[uint16](cr, off, what)
}

// Uint32 reads a big-endian 32-bit value at off.
func (cr *ChainReader) Uint32(off int64, what string) uint32 {
	return readChained[uint32](cr, off, what)
}

// FixedString reads a fixed-width text area, accumulating any error.
func (cr *ChainReader) FixedString(off int64, n int, what string) []byte {
	if cr.err != nil {
		return nil
	}
	val, err := cr.SafeReader.FixedString(off, n, what)
	if err != nil {
		cr.err = err
		return nil
	}
	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}

func readChained[T uint8 | uint16 | uint32](cr *ChainReader, off int64, what string) T {
	var zero T
	if cr.err != nil {
		return zero
	}
	val, err := ReadBE[T](cr.SafeReader, off, what)
	if err != nil {
		cr.err = err
		return zero
	}
	return val
}

// sizeOf returns the encoded width of T in bytes.
func sizeOf[T uint8 | uint16 | uint32]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

func decode[T uint8 | uint16 | uint32](buf []byte, order binary.ByteOrder) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(order.Uint16(buf))
	default:
		return T(order.Uint32(buf))
	}
}
