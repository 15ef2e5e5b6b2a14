package psid

import (
	"fmt"
	"io"
	"os"

	"github.com/simonhull/hvscmeta/internal/binary"
	"github.com/simonhull/hvscmeta/internal/types"
)

// File is a decoded SID file: its header plus the raw bytes it was decoded
// from.
type File struct {
	Header *types.Header
	path   string
	data   []byte
}

// Open reads the file at path and decodes its header.
func Open(path string, opts ...Option) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.IOError{Op: "read", Path: path, Err: err}
	}
	return New(data, append([]Option{WithPath(path)}, opts...)...)
}

// New decodes the header of data. The File keeps a reference to data.
func New(data []byte, opts ...Option) (*File, error) {
	o := applyOptions(opts)
	h, err := decode(data, o)
	if err != nil {
		return nil, err
	}
	return &File{Header: h, path: o.path, data: data}, nil
}

// Path returns the path the file was read from, if any.
func (f *File) Path() string {
	return f.path
}

// Size returns the size of the whole file in bytes.
func (f *File) Size() int {
	return len(f.data)
}

// Payload returns the C64 data following the header. When the header's load
// address is 0 the payload starts with the little-endian load address.
func (f *File) Payload() ([]byte, error) {
	off := int(f.Header.DataOffset)
	if off > len(f.data) {
		return nil, &types.OutOfBoundsError{
			Path:   f.path,
			What:   "payload",
			Offset: int64(off),
			Size:   int64(len(f.data)),
		}
	}
	return f.data[off:], nil
}

// LoadRange returns the first and last C64 memory address the payload is
// loaded to.
//
// With a header load address of 0 the real load address is taken from the
// first two bytes of the payload and those two bytes are not part of the
// loaded range.
//
// The end address is load + length - 1 in 16-bit arithmetic. A file with no
// program bytes therefore reports end = load - 1.
func (f *File) LoadRange() (load, end uint16, err error) {
	size := len(f.data)
	off := int(f.Header.DataOffset)

	if f.Header.LoadAddress != 0 {
		if off > size {
			return 0, 0, &types.OutOfBoundsError{Path: f.path, What: "payload", Offset: int64(off), Size: int64(size)}
		}
		load = f.Header.LoadAddress
		return load, uint16(size - off - 1 + int(load)), nil
	}

	sr := binary.NewBytesReader(f.data, f.path)
	load, err = binary.ReadLE[uint16](sr, int64(off), "embedded load address")
	if err != nil {
		return 0, 0, &types.OutOfBoundsError{
			Path:   f.path,
			What:   "embedded load address",
			Offset: int64(off),
			Length: 2,
			Size:   int64(size),
		}
	}
	return load, uint16(size - off - 2 - 1 + int(load)), nil
}

// SIDAddress returns the I/O address of SID chip n (1-3), e.g. $D400 for the
// first chip. It returns 0 when the file does not use chip n.
func (f *File) SIDAddress(n int) uint16 {
	switch n {
	case 1:
		return 0xD400
	case 2, 3:
		ext := f.Header.Extended
		if ext == nil {
			return 0
		}
		addr := ext.SecondSID
		if n == 3 {
			addr = ext.ThirdSID
		}
		if addr == 0 {
			return 0
		}
		return uint16(addr)*16 + 0xD000
	default:
		return 0
	}
}

// WriteProgram writes the payload as a C64 program file: the load address in
// little-endian order followed by the program bytes. It returns the number of
// bytes written.
func (f *File) WriteProgram(w io.Writer) (int64, error) {
	payload, err := f.Payload()
	if err != nil {
		return 0, err
	}

	sw := binary.NewSafeWriter(w)
	if f.Header.LoadAddress != 0 {
		if err := binary.WriteLE(sw, f.Header.LoadAddress); err != nil {
			return sw.Offset(), fmt.Errorf("write load address: %w", err)
		}
	} else if len(payload) < 2 {
		return 0, &types.OutOfBoundsError{
			Path:   f.path,
			What:   "embedded load address",
			Offset: int64(f.Header.DataOffset),
			Length: 2,
			Size:   int64(len(f.data)),
		}
	}
	if err := sw.WriteBytes(payload); err != nil {
		return sw.Offset(), fmt.Errorf("write program data: %w", err)
	}
	return sw.Offset(), nil
}

// Dump writes a human-readable rendition of the header to w.
func (f *File) Dump(w io.Writer) error {
	h := f.Header
	ew := &errWriter{w: w}

	ew.printf("file name  : %s\n", f.Path())
	ew.printf("file size  : %d\n", f.Size())
	ew.printf("magic      : %s\n", h.Format)
	ew.printf("version    : %d\n", h.Version)
	ew.printf("data offset: $%04x\n", h.DataOffset)
	if load, end, err := f.LoadRange(); err == nil {
		ew.printf("load       : $%04x-$%04x\n", load, end)
	} else {
		ew.printf("load       : invalid (%v)\n", err)
	}
	ew.printf("init       : $%04x\n", h.InitAddress)
	ew.printf("play       : $%04x\n", h.PlayAddress)
	ew.printf("songs      : %d (default %d)\n", h.Songs, h.StartSong)
	ew.printf("speed      : $%08x\n", h.Speed)
	ew.printf("name       : %s\n", h.Name)
	ew.printf("author     : %s\n", h.Author)
	ew.printf("released   : %s\n", h.Released)

	if h.Extended == nil {
		return ew.err
	}

	ew.printf("flags      : $%04x\n", h.Extended.Flags)
	ew.printf("clock      : %s\n", f.Clock())
	ew.printf("SID model  : %s\n", f.SIDModel(1))
	ew.printf("start page : $%04x\n", int(h.Extended.StartPage)*256)
	ew.printf("page length: $%04x\n", int(h.Extended.PageLength)*256)
	for n, label := range []string{"second SID : ", "third SID  : "} {
		if addr := f.SIDAddress(n + 2); addr != 0 {
			ew.printf("%s$%04x (%s)\n", label, addr, f.SIDModel(n+2))
		} else {
			ew.printf("%snone\n", label)
		}
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
