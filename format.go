package hvscmeta

import (
	"io"

	"github.com/simonhull/hvscmeta/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatPSID    = types.FormatPSID
	FormatRSID    = types.FormatRSID
)

// DetectFormat is a wrapper around types.DetectFormat. It only looks at the
// magic bytes; use Open or Decode to validate the whole header.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
