package stil

import (
	"fmt"

	"github.com/simonhull/hvscmeta/internal/textfile"
	"github.com/simonhull/hvscmeta/internal/types"
)

// Lookup finds the paragraph for key in r, decodes its lines and parses it.
func Lookup(r *textfile.Reader, key string, opts ...Option) (*types.Entry, error) {
	o := applyOptions(opts)

	lines, err := Locate(r, key)
	if err != nil {
		return nil, err
	}
	for i, line := range lines {
		lines[i] = o.decoder.String(line)
	}
	return Parse(key, lines, opts...)
}

// LookupBug finds the bug report for key in a BUGlist.txt reader.
//
// BUGlist.txt uses the STIL layout with BUG fields, so the result is an
// Entry whose fields are mostly of kind types.FieldBug.
func LookupBug(r *textfile.Reader, key string, opts ...Option) (*types.Entry, error) {
	return Lookup(r, key, opts...)
}

// LookupFile opens the STIL.txt catalog at path, looks up key and closes
// the file again on every path.
func LookupFile(path, key string, opts ...Option) (*types.Entry, error) {
	entry, err := lookupFile(path, key, Lookup, opts)
	if err != nil {
		return nil, fmt.Errorf("stil lookup: %w", err)
	}
	return entry, nil
}

// LookupBugFile is LookupFile for BUGlist.txt.
func LookupBugFile(path, key string, opts ...Option) (*types.Entry, error) {
	entry, err := lookupFile(path, key, LookupBug, opts)
	if err != nil {
		return nil, fmt.Errorf("buglist lookup: %w", err)
	}
	return entry, nil
}

type lookupFunc func(*textfile.Reader, string, ...Option) (*types.Entry, error)

func lookupFile(path, key string, lookup lookupFunc, opts []Option) (entry *types.Entry, err error) {
	o := applyOptions(opts)

	r, err := textfile.Open(path, textfile.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			entry, err = nil, cerr
		}
	}()

	return lookup(r, key, opts...)
}
