// Package textfile provides a buffered, line-oriented reader for the HVSC
// text databases.
//
// Lines are returned without their terminator and are numbered from 1. The
// line buffer doubles in size when a line does not fit, so there is no
// maximum line length.
package textfile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/simonhull/hvscmeta/internal/types"
)

const initialBufferSize = 256

// Line is a single line of text.
//
// Text aliases the reader's internal buffer and is only valid until the next
// call to Read or Close. Use String to keep a copy.
type Line struct {
	Text   []byte
	Number int
}

// String returns a copy of the line text.
func (l Line) String() string {
	return string(l.Text)
}

// IsBlank reports whether the line is empty or holds only whitespace.
func (l Line) IsBlank() bool {
	return len(bytes.TrimSpace(l.Text)) == 0
}

// Reader reads lines from a text resource.
//
// A Reader is not safe for concurrent use. Concurrent lookups against the same
// file must each open their own Reader.
type Reader struct {
	br     *bufio.Reader
	closer io.Closer
	logger hclog.Logger
	name   string
	buf    []byte
	lineno int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger sets the logger used for trace output.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Open opens the file at path for reading.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Op: "open", Path: path, Err: err}
	}
	r := NewReader(f, path, opts...)
	r.closer = f
	r.logger.Trace("opened text file", "path", path)
	return r, nil
}

// NewReader returns a Reader over rd. name is used in error messages.
// If rd implements io.Closer it is not closed by Close; use Open for that.
func NewReader(rd io.Reader, name string, opts ...Option) *Reader {
	r := &Reader{
		br:     bufio.NewReader(rd),
		logger: hclog.NewNullLogger(),
		name:   name,
		buf:    make([]byte, 0, initialBufferSize),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the path or name the reader was created with.
func (r *Reader) Name() string {
	return r.name
}

// LineNumber returns the number of the last line returned by Read.
func (r *Reader) LineNumber() int {
	return r.lineno
}

// Read returns the next line.
//
// At the clean end of the stream Read returns io.EOF. Any other failure is
// returned as a *types.IOError, so callers can always tell the two apart.
func (r *Reader) Read() (Line, error) {
	if r.br == nil {
		return Line{}, &types.IOError{Op: "read", Path: r.name, Err: os.ErrClosed}
	}

	r.buf = r.buf[:0]
	for {
		chunk, err := r.br.ReadSlice('\n')
		r.appendChunk(chunk)

		if err == nil {
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if errors.Is(err, io.EOF) {
			if len(r.buf) == 0 {
				return Line{}, io.EOF
			}
			// final line without terminator
			break
		}
		return Line{}, &types.IOError{Op: "read", Path: r.name, Err: err}
	}

	r.lineno++
	return Line{Text: trimEOL(r.buf), Number: r.lineno}, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.br == nil {
		return nil
	}
	r.br = nil
	r.buf = nil

	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	if err := closer.Close(); err != nil {
		return &types.IOError{Op: "close", Path: r.name, Err: err}
	}
	r.logger.Trace("closed text file", "path", r.name, "lines", r.lineno)
	return nil
}

// appendChunk appends chunk to the line buffer, doubling its capacity as
// often as needed.
func (r *Reader) appendChunk(chunk []byte) {
	need := len(r.buf) + len(chunk)
	if need > cap(r.buf) {
		newCap := max(cap(r.buf), initialBufferSize)
		for newCap < need {
			newCap *= 2
		}
		grown := make([]byte, len(r.buf), newCap)
		copy(grown, r.buf)
		r.buf = grown
		r.logger.Trace("grew line buffer", "path", r.name, "size", newCap)
	}
	r.buf = append(r.buf, chunk...)
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte{'\n'})
	return bytes.TrimSuffix(b, []byte{'\r'})
}
