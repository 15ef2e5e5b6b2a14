package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: PSID/RSID header fields.
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: the 6502 load address in front of C64 program data.
	LittleEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadLE reads a numeric value of type T at the given offset using little-endian byte order.
//
// Example:
//
//	load, err := binary.ReadLE[uint16](sr, dataOffset, "embedded load address")
func ReadLE[T uint8 | uint16 | uint32](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, LittleEndian)
}

// ReadBE reads a numeric value of type T at the given offset using big-endian byte order.
//
// Example:
//
//	version, err := binary.ReadBE[uint16](sr, 0x04, "header version")
func ReadBE[T uint8 | uint16 | uint32](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// Most code should use the convenience wrappers instead.
func ReadEndian[T uint8 | uint16 | uint32](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		var zero T
		return zero, err
	}
	return decode[T](buf, endian.order()), nil
}
