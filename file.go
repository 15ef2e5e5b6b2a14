package hvscmeta

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/hvscmeta/internal/psid"
	"github.com/simonhull/hvscmeta/internal/sldb"
	"github.com/simonhull/hvscmeta/internal/types"
)

// File is a decoded PSID or RSID file.
//
// The header is available as file.Header. Derived values (load range, SID
// chip addresses, clock and model flags, per-song speed) are computed on
// demand by the methods promoted from the underlying decoder.
type File struct {
	*psid.File

	// Fingerprint is the song length database key of the file contents.
	Fingerprint string
}

// Open reads the SID file at path and decodes its header.
//
// The whole file is read into memory; SID files are small.
//
// Example:
//
//	file, err := hvscmeta.Open("Commando.sid")
//	if err != nil {
//		return err
//	}
//	load, end, _ := file.LoadRange()
//	fmt.Printf("%s: $%04x-$%04x\n", file.Header.Name, load, end)
func Open(path string, opts ...Option) (*File, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return openFile(path, options)
}

func openFile(path string, options *options) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.IOError{Op: "read", Path: path, Err: err}
	}
	return newFile(data, path, options)
}

// NewFile decodes a SID file held in memory. path is only used in errors.
func NewFile(data []byte, path string, opts ...Option) (*File, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return newFile(data, path, options)
}

func newFile(data []byte, path string, options *options) (*File, error) {
	f, err := psid.New(data, options.psidOptions(path)...)
	if err != nil {
		return nil, err
	}
	return &File{File: f, Fingerprint: sldb.Fingerprint(data)}, nil
}

// Decode decodes only the header at the start of data.
func Decode(data []byte, opts ...Option) (*Header, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return psid.Decode(data, options.psidOptions("")...)
}

// OpenContext opens a file after checking ctx. Decoding a header is too
// quick to be worth interrupting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple SID files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. If any file
// fails, the first error is returned and no files.
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			file, err := openFile(path, options)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
