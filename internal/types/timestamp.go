package types

import (
	"fmt"
	"time"
)

// Timestamp is a point or range inside a tune, in seconds.
//
// From is -1 when the timestamp is absent. To is -1 when the timestamp is a
// single point rather than a range.
//
// Examples:
//
//	no timestamp   -> {-1, -1}
//	"(0:30)"       -> {30, -1}
//	"(0:30-2:15)"  -> {30, 135}
type Timestamp struct {
	From int
	To   int
}

// NoTimestamp is the absent timestamp.
var NoTimestamp = Timestamp{From: -1, To: -1}

// Valid reports whether the timestamp is present.
func (t Timestamp) Valid() bool {
	return t.From >= 0
}

// IsRange reports whether the timestamp spans a range.
func (t Timestamp) IsRange() bool {
	return t.Valid() && t.To >= 0
}

// Start returns the start of the timestamp as a duration.
func (t Timestamp) Start() time.Duration {
	if !t.Valid() {
		return 0
	}
	return time.Duration(t.From) * time.Second
}

// End returns the end of a range, or zero for a point or absent timestamp.
func (t Timestamp) End() time.Duration {
	if !t.IsRange() {
		return 0
	}
	return time.Duration(t.To) * time.Second
}

// String renders the timestamp the way it is written in STIL.txt.
// Example output: "1:30" or "1:30-2:00". Absent timestamps render as "".
func (t Timestamp) String() string {
	if !t.Valid() {
		return ""
	}
	if t.To < 0 {
		return FormatSeconds(t.From)
	}
	return FormatSeconds(t.From) + "-" + FormatSeconds(t.To)
}

// FormatSeconds renders a number of seconds as M:SS, or H:MM:SS for an hour
// or more.
func FormatSeconds(secs int) string {
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
