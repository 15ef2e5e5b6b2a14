package hvscmeta

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/simonhull/hvscmeta/internal/config"
	"github.com/simonhull/hvscmeta/internal/parsing"
	"github.com/simonhull/hvscmeta/internal/sldb"
	"github.com/simonhull/hvscmeta/internal/stil"
	"github.com/simonhull/hvscmeta/internal/textfile"
	"github.com/simonhull/hvscmeta/internal/types"
)

// Collection is an HVSC tree on disk: the C64Music directory with its
// DOCUMENTS folder.
//
// A Collection holds no open files and is safe for concurrent use.
type Collection struct {
	root            string
	stilPath        string
	bugPath         string
	songlengthsPath string
	opts            *options
}

// Tune is everything the collection knows about one SID file.
//
// Info, Bugs and Lengths are nil when the file has no entry in the
// respective document.
type Tune struct {
	Key     string
	File    *File
	Info    *Entry
	Bugs    *Entry
	Lengths *DurationRecord
}

// Length returns the play time of song (1-based).
func (t *Tune) Length(song int) (time.Duration, bool) {
	if t.Lengths == nil || song < 1 || song > len(t.Lengths.Durations) {
		return 0, false
	}
	return time.Duration(t.Lengths.Durations[song-1]) * time.Second, true
}

// OpenCollection returns the collection rooted at root, using the standard
// document locations below root/DOCUMENTS.
func OpenCollection(root string, opts ...Option) (*Collection, error) {
	cfg := config.Default()
	cfg.Root = root
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newCollection(cfg, opts)
}

// LoadCollection reads an hvsc.yaml configuration file, applies HVSC_*
// environment overrides and returns the collection it describes. With an
// empty path only the environment is used.
//
// Options override the configuration; without WithLogger a logger at the
// configured level writing to stderr is used.
func LoadCollection(path string, opts ...Option) (*Collection, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithEncoding(cfg.Encoding),
		WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:  "hvscmeta",
			Level: cfg.Level(),
		})),
	}
	if cfg.StrictTimestamps {
		base = append(base, WithStrictTimestamps())
	}
	return newCollection(cfg, append(base, opts...))
}

func newCollection(cfg *config.Config, opts []Option) (*Collection, error) {
	options, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Root != "" {
		info, err := os.Stat(cfg.Root)
		if err != nil {
			return nil, &types.IOError{Op: "open", Path: cfg.Root, Err: err}
		}
		if !info.IsDir() {
			return nil, &types.IOError{Op: "open", Path: cfg.Root, Err: errors.New("not a directory")}
		}
	}

	c := &Collection{
		root:            cfg.Root,
		stilPath:        cfg.STILPath(),
		bugPath:         cfg.BUGlistPath(),
		songlengthsPath: cfg.SonglengthsPath(),
		opts:            options,
	}
	options.logger.Debug("opened collection", "root", c.root, "stil", c.stilPath,
		"buglist", c.bugPath, "songlengths", c.songlengthsPath)
	return c, nil
}

// Root returns the C64Music directory.
func (c *Collection) Root() string {
	return c.root
}

// Key returns the catalog key of path. path may be a file system path below
// the root, a path relative to the root, or already a key such as
// "/MUSICIANS/H/Hubbard_Rob/Commando.sid".
func (c *Collection) Key(path string) (string, error) {
	return parsing.CatalogKey(c.root, path)
}

// filePath returns where the SID file for path lives on disk.
func (c *Collection) filePath(key string) string {
	if c.root == "" {
		return filepath.FromSlash(key)
	}
	return filepath.Join(c.root, filepath.FromSlash(key))
}

// STIL returns the STIL.txt entry of path.
func (c *Collection) STIL(path string) (*Entry, error) {
	key, err := c.Key(path)
	if err != nil {
		return nil, err
	}
	c.opts.logger.Trace("looking up STIL entry", "key", key)
	return stil.LookupFile(c.stilPath, key, c.opts.stilOptions()...)
}

// Bugs returns the BUGlist.txt entry of path.
func (c *Collection) Bugs(path string) (*Entry, error) {
	key, err := c.Key(path)
	if err != nil {
		return nil, err
	}
	c.opts.logger.Trace("looking up bug report", "key", key)
	return stil.LookupBugFile(c.bugPath, key, c.opts.stilOptions()...)
}

// SongLengths returns the song lengths of the SID file at path. The file is
// read to compute its fingerprint.
func (c *Collection) SongLengths(path string) (*DurationRecord, error) {
	key, err := c.Key(path)
	if err != nil {
		return nil, err
	}
	file := c.filePath(key)
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, &types.IOError{Op: "read", Path: file, Err: err}
	}
	return sldb.LookupFile(c.songlengthsPath, sldb.Fingerprint(data), c.opts.sldbOptions()...)
}

// SongLengthsByKey finds song lengths through the path comments of the
// database, without reading the SID file.
func (c *Collection) SongLengthsByKey(path string) (rec *DurationRecord, err error) {
	key, err := c.Key(path)
	if err != nil {
		return nil, err
	}
	r, err := textfile.Open(c.songlengthsPath, textfile.WithLogger(c.opts.logger.Named("textfile")))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			rec, err = nil, cerr
		}
	}()
	return sldb.LookupPath(r, key, c.opts.sldbOptions()...)
}

// Tune reads the SID file at path and looks it up in all three documents.
//
// Missing entries leave the corresponding field nil. Any other failure is
// returned and no Tune.
func (c *Collection) Tune(path string) (*Tune, error) {
	key, err := c.Key(path)
	if err != nil {
		return nil, err
	}

	file, err := openFile(c.filePath(key), c.opts)
	if err != nil {
		return nil, err
	}
	t := &Tune{Key: key, File: file}

	if t.Info, err = optional(stil.LookupFile(c.stilPath, key, c.opts.stilOptions()...)); err != nil {
		return nil, err
	}
	if t.Bugs, err = optional(stil.LookupBugFile(c.bugPath, key, c.opts.stilOptions()...)); err != nil {
		return nil, err
	}
	if t.Lengths, err = optional(sldb.LookupFile(c.songlengthsPath, file.Fingerprint, c.opts.sldbOptions()...)); err != nil {
		return nil, err
	}

	c.opts.logger.Debug("read tune", "key", key, "stil", t.Info != nil, "bugs", t.Bugs != nil, "lengths", t.Lengths != nil)
	return t, nil
}

// LookupMany runs Tune for each path concurrently, using up to
// runtime.NumCPU() goroutines, each with its own file handles. Results are
// returned in input order. On the first failure the remaining lookups are
// cancelled and the error is returned.
//
// Example:
//
//	tunes, err := coll.LookupMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, t := range tunes {
//		fmt.Println(t.Key, t.File.Header.Name)
//	}
func (c *Collection) LookupMany(ctx context.Context, paths ...string) ([]*Tune, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Tune, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tune, err := c.Tune(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = tune
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// optional turns ErrNotFound into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, types.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
