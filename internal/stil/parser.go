package stil

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/go-hclog"

	"github.com/simonhull/hvscmeta/internal/charset"
	"github.com/simonhull/hvscmeta/internal/parsing"
	"github.com/simonhull/hvscmeta/internal/types"
)

const (
	// labelWidth is the width of the right-justified label including the colon.
	labelWidth = 8

	// textColumn is where field text starts: label plus one space.
	textColumn = labelWidth + 1

	// continuationIndent marks a COMMENT continuation line.
	continuationIndent = "         "
)

var labels = map[string]types.FieldKind{
	" ARTIST:": types.FieldArtist,
	" AUTHOR:": types.FieldAuthor,
	"    BUG:": types.FieldBug,
	"COMMENT:": types.FieldComment,
	"   NAME:": types.FieldName,
	"  TITLE:": types.FieldTitle,
}

// Option configures parsing.
type Option func(*options)

type options struct {
	logger  hclog.Logger
	decoder *charset.Decoder
	strict  bool
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDecoder sets the decoder Lookup applies to the paragraph lines read
// from the catalog. The default is ISO-8859-1. Parse expects decoded lines.
func WithDecoder(d *charset.Decoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithStrictTimestamps makes a trailing TITLE parenthetical that starts like
// a timestamp but does not parse (e.g. "(2:00-1:30)") a *types.ParseError
// instead of plain title text.
func WithStrictTimestamps(strict bool) Option {
	return func(o *options) {
		o.strict = strict
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

// parser turns the lines of one paragraph into an Entry.
//
// The block being filled is kept by value in builder and moved into the
// entry when a new tune starts.
type parser struct {
	opts  *options
	entry *types.Entry
	lines []string

	builder    types.Block
	pos        int
	markerSeen bool
}

// Parse builds the Entry for key from the lines of its paragraph.
//
// Lines are handled in this order of precedence:
//
//   - "(#N)" tune markers start the block of tune N.
//   - Lines starting with a known label become fields. COMMENT fields absorb
//     the lines indented by nine spaces that follow them. A COMMENT seen
//     before any tune is the file-wide comment.
//   - Any other line is appended to the previous field of the current block.
//
// Fields that appear before any tune marker belong to tune 1. Parse always
// returns at least one block.
func Parse(key string, lines []string, opts ...Option) (*types.Entry, error) {
	p := &parser{
		opts:  applyOptions(opts),
		entry: &types.Entry{Key: key},
		lines: lines,
	}

	for p.pos < len(p.lines) {
		if err := p.step(); err != nil {
			return nil, err
		}
	}
	p.seal()

	p.opts.logger.Trace("parsed catalog entry", "key", key, "lines", len(lines), "blocks", len(p.entry.Blocks))
	return p.entry, nil
}

// step consumes one line, or a COMMENT with its continuation lines.
func (p *parser) step() error {
	line := p.lines[p.pos]
	p.pos++

	if tune, ok := tuneMarker(line); ok {
		p.switchTune(tune)
		return nil
	}

	if len(line) >= labelWidth {
		if kind, ok := labels[line[:labelWidth]]; ok {
			return p.labeled(kind, fieldText(line))
		}
	}

	p.unlabeled(strings.TrimSpace(line))
	return nil
}

func (p *parser) labeled(kind types.FieldKind, text string) error {
	field := types.Field{Kind: kind, Text: text, Timestamp: types.NoTimestamp}

	switch kind {
	case types.FieldComment:
		field.Text = p.continuation(text)
		if p.builder.Tune == 0 {
			p.setGlobalComment(field.Text)
			return nil
		}
	case types.FieldTitle:
		if err := p.titleTimestamp(&field); err != nil {
			return err
		}
	}

	p.add(field)
	return nil
}

// continuation joins the lines indented by nine spaces that follow a COMMENT
// onto its text. Indentation past the ninth space is kept.
func (p *parser) continuation(text string) string {
	var sb strings.Builder
	sb.WriteString(text)
	for p.pos < len(p.lines) {
		next := p.lines[p.pos]
		if !isContinuation(next) {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(next[len(continuationIndent):])
		p.pos++
	}
	return sb.String()
}

func (p *parser) titleTimestamp(field *types.Field) error {
	ts, text := parsing.TrailingTimestamp(field.Text)
	if ts.Valid() {
		field.Timestamp = ts
		field.Text = text
		return nil
	}

	if p.opts.strict {
		if token, ok := timestampLike(field.Text); ok {
			return &types.ParseError{
				Path:   p.entry.Key,
				Line:   p.pos,
				Token:  token,
				Reason: "malformed title timestamp",
			}
		}
	}
	return nil
}

func (p *parser) setGlobalComment(text string) {
	if p.entry.Comment != "" {
		p.entry.Comment += " " + text
		return
	}
	p.entry.Comment = text
}

// unlabeled appends text to the last field of the current block, or starts
// an untyped field when there is none. Before any tune it continues the
// file-wide comment.
func (p *parser) unlabeled(text string) {
	if text == "" {
		return
	}
	if p.builder.Tune == 0 && len(p.builder.Fields) == 0 && p.entry.Comment != "" {
		p.entry.Comment += " " + text
		return
	}
	if n := len(p.builder.Fields); n > 0 {
		last := &p.builder.Fields[n-1]
		if last.Text == "" {
			last.Text = text
		} else {
			last.Text += " " + text
		}
		return
	}
	p.add(types.Field{Kind: types.FieldUntyped, Text: text, Timestamp: types.NoTimestamp})
}

// add appends a field to the current block. A field seen before any tune
// marker belongs to tune 1.
func (p *parser) add(field types.Field) {
	if p.builder.Tune == 0 && !p.markerSeen {
		p.opts.logger.Trace("implicit tune 1", "key", p.entry.Key, "line", p.pos)
		p.builder.Tune = 1
	}
	p.builder.Fields = append(p.builder.Fields, field)
}

func (p *parser) switchTune(tune int) {
	p.markerSeen = true
	switch {
	case tune == p.builder.Tune:
		return
	case len(p.builder.Fields) == 0 && p.builder.Tune == 0:
		// nothing to keep yet; the builder becomes the block of this tune
		p.builder.Tune = tune
		return
	}
	p.seal()
	p.builder = types.Block{Tune: tune}
}

// seal moves the builder into the entry. A tune that already has a block
// gets the new fields appended to it, keeping tunes unique.
func (p *parser) seal() {
	for i := range p.entry.Blocks {
		if p.entry.Blocks[i].Tune == p.builder.Tune {
			p.entry.Blocks[i].Fields = append(p.entry.Blocks[i].Fields, p.builder.Fields...)
			p.builder = types.Block{}
			return
		}
	}
	p.entry.Blocks = append(p.entry.Blocks, p.builder)
	p.builder = types.Block{}
}

// tuneMarker recognizes "(#N)" after optional leading whitespace.
func tuneMarker(line string) (int, bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(s, "(#") {
		return 0, false
	}
	s = s[2:]
	end := strings.IndexByte(s, ')')
	if end <= 0 {
		return 0, false
	}
	digits := s[:end]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func fieldText(line string) string {
	if len(line) <= textColumn {
		return ""
	}
	return line[textColumn:]
}

func isContinuation(line string) bool {
	return strings.HasPrefix(line, continuationIndent)
}

// timestampLike returns the trailing parenthetical of text when it starts
// with a digit and holds a colon, as "(1:30)" or "(2:00-1:30)" do.
func timestampLike(text string) (string, bool) {
	if !strings.HasSuffix(text, ")") {
		return "", false
	}
	open := strings.LastIndexByte(text, '(')
	if open < 0 || open+1 >= len(text)-1 {
		return "", false
	}
	inner := text[open+1 : len(text)-1]
	if inner[0] < '0' || inner[0] > '9' || !strings.Contains(inner, ":") {
		return "", false
	}
	return inner, true
}
