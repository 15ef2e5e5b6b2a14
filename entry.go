package hvscmeta

import (
	"github.com/simonhull/hvscmeta/internal/types"
)

// Entry is an alias to types.Entry, a parsed STIL or BUGlist paragraph.
type Entry = types.Entry

// Block is an alias to types.Block, the fields of one tune.
type Block = types.Block

// Field is an alias to types.Field.
type Field = types.Field

// FieldKind is an alias to types.FieldKind.
type FieldKind = types.FieldKind

// Re-export all field kinds.
const (
	FieldUntyped = types.FieldUntyped
	FieldArtist  = types.FieldArtist
	FieldAuthor  = types.FieldAuthor
	FieldBug     = types.FieldBug
	FieldComment = types.FieldComment
	FieldName    = types.FieldName
	FieldTitle   = types.FieldTitle
)

// Timestamp is an alias to types.Timestamp.
type Timestamp = types.Timestamp

// NoTimestamp marks a field without a timestamp.
var NoTimestamp = types.NoTimestamp

// DurationRecord is an alias to types.DurationRecord.
type DurationRecord = types.DurationRecord

// FormatSeconds renders seconds as M:SS, or H:MM:SS from one hour on.
func FormatSeconds(secs int) string {
	return types.FormatSeconds(secs)
}
