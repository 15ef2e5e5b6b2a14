// Package psid decodes the headers of PSID and RSID files, the container
// format of the High Voltage SID Collection.
//
// Layout (all multi-byte values big-endian):
//
//	0x00  magic        "PSID" or "RSID"
//	0x04  version      1-4
//	0x06  data offset  start of the C64 data
//	0x08  load address 0: first two bytes of the data, little-endian
//	0x0A  init address
//	0x0C  play address
//	0x0E  songs
//	0x10  start song
//	0x12  speed        32 bits, one per song
//	0x16  name         32 bytes, ISO-8859-1
//	0x36  author       32 bytes
//	0x56  released     32 bytes
//	0x76  flags        v2+
//	0x78  start page   v2+
//	0x79  page length  v2+
//	0x7A  second SID   v3+
//	0x7B  third SID    v4
package psid

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/simonhull/hvscmeta/internal/binary"
	"github.com/simonhull/hvscmeta/internal/charset"
	"github.com/simonhull/hvscmeta/internal/types"
)

// Header field offsets.
const (
	offMagic      = 0x00
	offVersion    = 0x04
	offDataOffset = 0x06
	offLoad       = 0x08
	offInit       = 0x0A
	offPlay       = 0x0C
	offSongs      = 0x0E
	offStartSong  = 0x10
	offSpeed      = 0x12
	offName       = 0x16
	offAuthor     = 0x36
	offReleased   = 0x56
	offFlags      = 0x76
	offStartPage  = 0x78
	offPageLength = 0x79
	offSecondSID  = 0x7A
	offThirdSID   = 0x7B

	textLen = 32
)

// Header sizes.
const (
	// MinHeaderSize is the size of a version 1 header.
	MinHeaderSize = 0x76

	// ExtendedHeaderSize is the size of a version 2 and later header.
	ExtendedHeaderSize = 0x7C
)

const maxVersion = 4

// Option configures decoding.
type Option func(*options)

type options struct {
	logger  hclog.Logger
	decoder *charset.Decoder
	path    string
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDecoder sets the decoder for the name, author and released strings.
// The default is ISO-8859-1.
func WithDecoder(d *charset.Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithPath sets the path reported in errors.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		logger:  hclog.NewNullLogger(),
		decoder: charset.Default,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Decode decodes the header at the start of data.
//
// Inputs shorter than MinHeaderSize, with an unknown magic or with a version
// outside 1-4 are rejected with a *types.InvalidFormatError. Version 2 and
// later headers must be at least ExtendedHeaderSize bytes long.
//
// Extra SID addresses that are not valid are stored as 0.
func Decode(data []byte, opts ...Option) (*types.Header, error) {
	return decode(data, applyOptions(opts))
}

func decode(data []byte, o *options) (*types.Header, error) {
	if len(data) < MinHeaderSize {
		return nil, invalid(o.path, int64(len(data)),
			fmt.Sprintf("file too small: %d bytes, need at least %d", len(data), MinHeaderSize))
	}

	format := types.FormatFromMagic(data[offMagic : offMagic+4])
	if format == types.FormatUnknown {
		return nil, invalid(o.path, offMagic, fmt.Sprintf("unrecognized magic %q", data[offMagic:offMagic+4]))
	}

	cr := binary.NewChainReader(binary.NewBytesReader(data, o.path))
	h := &types.Header{
		Format:      format,
		Version:     cr.Uint16(offVersion, "version"),
		DataOffset:  cr.Uint16(offDataOffset, "data offset"),
		LoadAddress: cr.Uint16(offLoad, "load address"),
		InitAddress: cr.Uint16(offInit, "init address"),
		PlayAddress: cr.Uint16(offPlay, "play address"),
		Songs:       cr.Uint16(offSongs, "song count"),
		StartSong:   cr.Uint16(offStartSong, "start song"),
		Speed:       cr.Uint32(offSpeed, "speed flags"),
		Name:        o.decoder.Bytes(cr.FixedString(offName, textLen, "name")),
		Author:      o.decoder.Bytes(cr.FixedString(offAuthor, textLen, "author")),
		Released:    o.decoder.Bytes(cr.FixedString(offReleased, textLen, "released")),
	}
	if err := cr.Error(); err != nil {
		return nil, invalid(o.path, 0, err.Error())
	}

	if h.Version < 1 || h.Version > maxVersion {
		return nil, invalid(o.path, offVersion, fmt.Sprintf("unsupported version %d", h.Version))
	}

	if h.Version >= 2 {
		if len(data) < ExtendedHeaderSize {
			return nil, invalid(o.path, int64(len(data)),
				fmt.Sprintf("version %d header truncated: %d bytes, need %d", h.Version, len(data), ExtendedHeaderSize))
		}
		ext := &types.ExtendedHeader{
			Flags:      cr.Uint16(offFlags, "flags"),
			StartPage:  cr.Uint8(offStartPage, "start page"),
			PageLength: cr.Uint8(offPageLength, "page length"),
			SecondSID:  validSIDAddress(cr.Uint8(offSecondSID, "second SID address")),
			ThirdSID:   validSIDAddress(cr.Uint8(offThirdSID, "third SID address")),
		}
		if err := cr.Error(); err != nil {
			return nil, invalid(o.path, offFlags, err.Error())
		}
		h.Extended = ext
	}

	o.logger.Debug("decoded SID header", "path", o.path, "format", h.Format, "version", h.Version, "songs", h.Songs)
	return h, nil
}

// validSIDAddress returns addr when it is a usable extra SID address and 0
// otherwise. Valid addresses are even and lie in $42-$7F or $E0-$FE, i.e.
// $D420-$D7E0 or $DE00-$DFE0.
func validSIDAddress(addr uint8) uint8 {
	if addr&0x01 != 0 {
		return 0
	}
	if addr < 0x42 || (addr >= 0x80 && addr <= 0xDF) {
		return 0
	}
	return addr
}

func invalid(path string, offset int64, reason string) *types.InvalidFormatError {
	return &types.InvalidFormatError{Path: path, Offset: offset, Reason: reason}
}
