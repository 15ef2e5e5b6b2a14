// Package sldb reads the song-length database of the High Voltage SID
// Collection (DOCUMENTS/Songlengths.md5).
//
// The database is keyed by the MD5 digest of the complete SID file:
//
//	[Database]
//	; /MUSICIANS/H/Hubbard_Rob/Commando.sid
//	2d5b1b2a3e2cae1a5fc7e63d5d3cde4b=4:41 0:05 0:05
//
// Newer releases add milliseconds to each length ("4:41.120"); those are
// truncated to whole seconds.
package sldb

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/simonhull/hvscmeta/internal/parsing"
	"github.com/simonhull/hvscmeta/internal/textfile"
	"github.com/simonhull/hvscmeta/internal/types"
)

// KeySize is the width of the key field: a hex-encoded MD5 digest.
const KeySize = md5.Size * 2

const pathPrefix = "; "

// Option configures a lookup.
type Option func(*options)

type options struct {
	logger hclog.Logger
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Fingerprint returns the database key for the contents of a SID file: the
// lower-case hex MD5 digest of data.
func Fingerprint(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Lookup scans r for the record of key and returns its song lengths.
//
// It returns a *types.NotFoundError when no record matches and a
// *types.ParseError when the matching record holds a malformed length.
func Lookup(r *textfile.Reader, key string, opts ...Option) (*types.DurationRecord, error) {
	o := applyOptions(opts)
	key = strings.ToLower(key)

	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil, &types.NotFoundError{Path: r.Name(), Key: key}
		}
		if err != nil {
			return nil, err
		}
		if isComment(line.Text) {
			continue
		}

		text := line.String()
		if !strings.HasPrefix(text, key) || len(text) <= len(key) || text[len(key)] != '=' {
			continue
		}

		o.logger.Trace("found song lengths", "key", key, "line", line.Number)
		return parseRecord(r.Name(), line.Number, key, text[len(key)+1:])
	}
}

// LookupPath scans r for the "; <key>" comment that precedes the record of
// a SID file and returns the record that follows it.
func LookupPath(r *textfile.Reader, key string, opts ...Option) (*types.DurationRecord, error) {
	o := applyOptions(opts)
	marker := pathPrefix + key

	found := false
	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil, &types.NotFoundError{Path: r.Name(), Key: key}
		}
		if err != nil {
			return nil, err
		}

		if !found {
			found = string(line.Text) == marker
			continue
		}
		if isComment(line.Text) || line.IsBlank() {
			continue
		}

		text := line.String()
		digest, lengths, ok := strings.Cut(text, "=")
		if !ok || len(digest) != KeySize {
			return nil, &types.ParseError{
				Path:   r.Name(),
				Line:   line.Number,
				Token:  text,
				Reason: "expected <md5>=<lengths> after path comment",
			}
		}
		o.logger.Trace("found song lengths by path", "path", key, "key", digest, "line", line.Number)
		return parseRecord(r.Name(), line.Number, strings.ToLower(digest), lengths)
	}
}

// LookupFile opens the database at path and looks up key.
func LookupFile(path, key string, opts ...Option) (rec *types.DurationRecord, err error) {
	o := applyOptions(opts)
	r, err := textfile.Open(path, textfile.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			rec, err = nil, cerr
		}
	}()
	return Lookup(r, key, opts...)
}

// parseRecord parses the lengths after the '=' of a record. Lengths are
// separated by whitespace or further '=' characters.
func parseRecord(name string, lineno int, key, rest string) (*types.DurationRecord, error) {
	tokens := strings.FieldsFunc(rest, func(c rune) bool {
		return c == '=' || c == ' ' || c == '\t'
	})
	if len(tokens) == 0 {
		return nil, &types.ParseError{Path: name, Line: lineno, Token: rest, Reason: "record has no song lengths"}
	}

	rec := &types.DurationRecord{Key: key, Durations: make([]int, 0, len(tokens))}
	for _, token := range tokens {
		secs, err := parsing.ParseLength(token)
		if err != nil {
			return nil, &types.ParseError{Path: name, Line: lineno, Token: token, Reason: err.Error()}
		}
		rec.Durations = append(rec.Durations, secs)
	}
	return rec, nil
}

// isComment reports whether a line is a comment or a section header.
func isComment(text []byte) bool {
	return len(text) > 0 && (text[0] == ';' || text[0] == '[')
}
