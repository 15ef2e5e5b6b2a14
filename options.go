package hvscmeta

import (
	"github.com/hashicorp/go-hclog"

	"github.com/simonhull/hvscmeta/internal/charset"
	"github.com/simonhull/hvscmeta/internal/psid"
	"github.com/simonhull/hvscmeta/internal/sldb"
	"github.com/simonhull/hvscmeta/internal/stil"
)

// Option configures how files and collections are read.
//
// Example:
//
//	coll, err := hvscmeta.OpenCollection("/data/C64Music",
//	    hvscmeta.WithLogger(logger),
//	    hvscmeta.WithStrictTimestamps(),
//	)
type Option func(*options)

type options struct {
	logger           hclog.Logger
	decoder          *charset.Decoder
	encodingErr      error
	strictTimestamps bool
}

func defaultOptions() *options {
	return &options{
		logger:  hclog.NewNullLogger(),
		decoder: charset.Default,
	}
}

func applyOptions(opts []Option) (*options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.encodingErr != nil {
		return nil, o.encodingErr
	}
	return o, nil
}

// WithLogger sets the logger for debug and trace output. By default nothing
// is logged.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEncoding selects the encoding of SID header strings and of the text
// in STIL.txt and BUGlist.txt: "latin1" (the default), "windows-1252" or
// "utf8". An unknown name makes Open and OpenCollection fail.
func WithEncoding(name string) Option {
	return func(o *options) {
		d, err := charset.Lookup(name)
		if err != nil {
			o.encodingErr = err
			return
		}
		o.decoder = d
		o.encodingErr = nil
	}
}

// WithStrictTimestamps makes a malformed timestamp at the end of a STIL
// TITLE field, such as "(2:00-1:30)", a *ParseError.
//
// By default such text is kept as part of the title.
func WithStrictTimestamps() Option {
	return func(o *options) {
		o.strictTimestamps = true
	}
}

func (o *options) psidOptions(path string) []psid.Option {
	return []psid.Option{
		psid.WithPath(path),
		psid.WithDecoder(o.decoder),
		psid.WithLogger(o.logger.Named("psid")),
	}
}

func (o *options) stilOptions() []stil.Option {
	return []stil.Option{
		stil.WithLogger(o.logger.Named("stil")),
		stil.WithDecoder(o.decoder),
		stil.WithStrictTimestamps(o.strictTimestamps),
	}
}

func (o *options) sldbOptions() []sldb.Option {
	return []sldb.Option{
		sldb.WithLogger(o.logger.Named("sldb")),
	}
}
