package binary

import (
	"bytes"
	"testing"
)

func TestSafeWriter_WriteLE(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := WriteLE[uint16](sw, 0x1000); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WriteLE[uint8](sw, 0xAA); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x00, 0x10, 0xAA}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
	if sw.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteBytes(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteBytes([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", sw.Offset())
	}
}
