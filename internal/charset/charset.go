// Package charset converts the 8-bit text found in SID headers and HVSC
// documents to UTF-8.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names accepted by Lookup.
const (
	Latin1      = "latin1"
	Windows1252 = "windows1252"
	UTF8        = "utf8"
)

// Decoder converts raw bytes to a UTF-8 string.
type Decoder struct {
	enc  encoding.Encoding
	name string
}

// Lookup returns the decoder for name. The empty name selects Latin1, the
// encoding the SID file format prescribes for header strings.
func Lookup(name string) (*Decoder, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", Latin1, "iso88591":
		return &Decoder{enc: charmap.ISO8859_1, name: Latin1}, nil
	case Windows1252, "cp1252":
		return &Decoder{enc: charmap.Windows1252, name: Windows1252}, nil
	case UTF8:
		return &Decoder{enc: unicode.UTF8, name: UTF8}, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// Default is the Latin-1 decoder.
var Default = &Decoder{enc: charmap.ISO8859_1, name: Latin1}

// Name returns the canonical name of the encoding.
func (d *Decoder) Name() string {
	return d.name
}

// Bytes decodes b. Pure ASCII input is returned without conversion.
func (d *Decoder) Bytes(b []byte) string {
	if isASCII(b) {
		return string(b)
	}
	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		// Invalid UTF-8 input in UTF8 mode: keep the bytes, replacing
		// the broken sequences.
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// String decodes s.
func (d *Decoder) String(s string) string {
	return d.Bytes([]byte(s))
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
