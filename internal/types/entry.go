package types

import (
	"fmt"
	"io"
	"iter"
)

// FieldKind identifies the label of a catalog field.
type FieldKind int

const (
	// FieldUntyped is text that did not start with a known label.
	FieldUntyped FieldKind = iota
	// FieldArtist is the original artist of a cover tune.
	FieldArtist
	// FieldAuthor is the author of the file or of a tune.
	FieldAuthor
	// FieldBug is a bug note, only found in BUGlist.txt.
	FieldBug
	// FieldComment is a free-text comment.
	FieldComment
	// FieldName is the name of a (sub)tune.
	FieldName
	// FieldTitle is the title of the covered work, optionally with a timestamp.
	FieldTitle
)

var fieldKindNames = [...]string{
	FieldUntyped: "untyped",
	FieldArtist:  "artist",
	FieldAuthor:  "author",
	FieldBug:     "bug",
	FieldComment: "comment",
	FieldName:    "name",
	FieldTitle:   "title",
}

// String returns the lower-case name of the kind.
func (k FieldKind) String() string {
	if k < 0 || int(k) >= len(fieldKindNames) {
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
	return fieldKindNames[k]
}

// Field is a single labeled piece of catalog text.
type Field struct {
	Text      string
	Kind      FieldKind
	Timestamp Timestamp
}

// Block groups the fields of one tune, in document order.
//
// Tune 0 holds data that applies to the whole file.
type Block struct {
	Fields []Field
	Tune   int
}

// Entry is the parsed catalog paragraph of one SID file.
type Entry struct {
	// Key is the catalog key, the path of the SID file relative to the
	// collection root (e.g. "/MUSICIANS/H/Hubbard_Rob/Commando.sid").
	Key string

	// Comment is the file-wide comment, empty when there is none.
	Comment string

	// Blocks holds one block per tune number, in first-seen order.
	Blocks []Block
}

// Tune returns the block for tune n.
func (e *Entry) Tune(n int) (*Block, bool) {
	for i := range e.Blocks {
		if e.Blocks[i].Tune == n {
			return &e.Blocks[i], true
		}
	}
	return nil, false
}

// Fields returns an iterator over every field of the entry, paired with the
// tune number of the block it belongs to.
//
// Example:
//
//	for tune, field := range entry.Fields() {
//		fmt.Printf("#%d %s: %s\n", tune, field.Kind, field.Text)
//	}
func (e *Entry) Fields() iter.Seq2[int, Field] {
	return func(yield func(int, Field) bool) {
		for _, block := range e.Blocks {
			for _, field := range block.Fields {
				if !yield(block.Tune, field) {
					return
				}
			}
		}
	}
}

// Dump writes a human-readable rendition of the entry to w.
func (e *Entry) Dump(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("{File: %s}\n", e.Key)
	if e.Comment != "" {
		ew.printf("\n{SID-wide comment}\n%s\n", e.Comment)
	}

	ew.printf("\n{Per-tune info}\n\n")
	for _, block := range e.Blocks {
		ew.printf("  {#%d}\n", block.Tune)
		for _, field := range block.Fields {
			ew.printf("    {%7s} %s\n", field.Kind, field.Text)
			if field.Timestamp.Valid() {
				ew.printf("      {timestamp} %s\n", field.Timestamp)
			}
		}
		ew.printf("\n")
	}
	return ew.err
}

// errWriter keeps the first write error so Dump can print unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
