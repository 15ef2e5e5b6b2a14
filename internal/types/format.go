package types

import (
	"io"

	"github.com/simonhull/hvscmeta/internal/binary"
)

// Format represents the detected SID file variant.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota // Unknown
	// FormatPSID represents PlaySID files.
	FormatPSID // PSID
	// FormatRSID represents "real C64" SID files that need a full C64 environment.
	FormatRSID // RSID
)

// String returns the magic of the format, or "Unknown".
func (f Format) String() string {
	switch f {
	case FormatPSID:
		return "PSID"
	case FormatRSID:
		return "RSID"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatPSID, FormatRSID:
		return []string{".sid"}
	default:
		return nil
	}
}

// FormatFromMagic maps the four magic bytes at the start of a SID file to a
// Format. The two variants have distinct magics.
func FormatFromMagic(magic []byte) Format {
	switch string(magic) {
	case "PSID":
		return FormatPSID
	case "RSID":
		return FormatRSID
	default:
		return FormatUnknown
	}
}

// DetectFormat determines the SID variant by examining the magic bytes.
//
// Detection does not validate the rest of the header.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < 4 {
		return FormatUnknown, &InvalidFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic := make([]byte, 4)
	if err := sr.ReadAt(magic, 0, "file magic bytes"); err != nil {
		return FormatUnknown, &InvalidFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	format := FormatFromMagic(magic)
	if format == FormatUnknown {
		return FormatUnknown, &InvalidFormatError{
			Path:   path,
			Reason: "unrecognized magic bytes",
		}
	}
	return format, nil
}
