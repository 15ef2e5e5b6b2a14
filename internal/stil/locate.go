// Package stil reads the SID Tune Information List (DOCUMENTS/STIL.txt) and
// the bug list (DOCUMENTS/BUGlist.txt) of the High Voltage SID Collection.
//
// Both files are flat text made of paragraphs. A paragraph starts with a line
// holding the catalog key of a SID file and ends at the next blank line:
//
//	/MUSICIANS/H/Hubbard_Rob/Commando.sid
//	COMMENT: Also used in the arcade conversion.
//	(#1)
//	  TITLE: Commando (arcade) (0:00-1:12)
//	 ARTIST: Tim Follin
//
// Lookups are sequential scans; no index is built.
package stil

import (
	"errors"
	"io"

	"github.com/simonhull/hvscmeta/internal/textfile"
	"github.com/simonhull/hvscmeta/internal/types"
)

// Locate scans r from its current position for the line equal to key and
// returns the lines of the paragraph that follows it, without the key line.
//
// The paragraph ends at the first blank line or at the end of the stream.
// When the stream ends before key is found Locate returns a
// *types.NotFoundError. Read failures are returned as *types.IOError.
func Locate(r *textfile.Reader, key string) ([]string, error) {
	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil, &types.NotFoundError{Path: r.Name(), Key: key}
		}
		if err != nil {
			return nil, err
		}
		if string(line.Text) == key {
			break
		}
	}

	var lines []string
	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if line.IsBlank() {
			return lines, nil
		}
		lines = append(lines, line.String())
	}
}
