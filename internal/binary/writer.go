package binary

import (
	"encoding/binary"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteLE writes a value of type T in little-endian byte order.
func WriteLE[T uint8 | uint16 | uint32](sw *SafeWriter, val T) error {
	buf := make([]byte, sizeOf[T]())
	switch len(buf) {
	case 1:
		buf[0] = byte(val)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(val))
	default:
		binary.LittleEndian.PutUint32(buf, uint32(val))
	}
	return sw.WriteBytes(buf)
}
