// Package parsing holds the small text grammars shared by the HVSC
// document parsers: play-time tokens and catalog keys.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/simonhull/hvscmeta/internal/types"
)

var (
	// "M:SS", "MM:SS" or "H:MM:SS"
	clockPattern = regexp.MustCompile(`^(\d+):(\d{2})(?::(\d{2}))?$`)

	// Song-length tokens add an optional millisecond fraction and an
	// optional attribute suffix such as "(G)" or "(M)".
	lengthPattern = regexp.MustCompile(`^(\d+):(\d{2})(?::(\d{2}))?(?:\.(\d{1,3}))?(?:\(([A-Z]+)\))?$`)
)

// ParseSeconds parses a "[H:]MM:SS" or "M:SS" token into seconds.
func ParseSeconds(token string) (int, error) {
	m := clockPattern.FindStringSubmatch(token)
	if m == nil {
		return -1, fmt.Errorf("not a timestamp: %q", token)
	}
	return clockSeconds(m[1], m[2], m[3], token)
}

// ParseLength parses a song-length database token into whole seconds.
//
// Besides the plain clock form it accepts a millisecond fraction, which is
// truncated, and a trailing attribute in parentheses, which is ignored.
func ParseLength(token string) (int, error) {
	m := lengthPattern.FindStringSubmatch(token)
	if m == nil {
		return -1, fmt.Errorf("not a song length: %q", token)
	}
	return clockSeconds(m[1], m[2], m[3], token)
}

// clockSeconds combines the captured groups of a clock token. When the third
// group is present the token was H:MM:SS, otherwise M:SS.
func clockSeconds(a, b, c, token string) (int, error) {
	first, err := strconv.Atoi(a)
	if err != nil {
		return -1, fmt.Errorf("number out of range in %q", token)
	}
	second, _ := strconv.Atoi(b) // two digits, always valid
	if c == "" {
		if second >= 60 {
			return -1, fmt.Errorf("seconds out of range in %q", token)
		}
		return first*60 + second, nil
	}

	third, _ := strconv.Atoi(c)
	if second >= 60 || third >= 60 {
		return -1, fmt.Errorf("minutes or seconds out of range in %q", token)
	}
	return first*3600 + second*60 + third, nil
}

// ParseTimestamp parses "A" or "A-B" into a Timestamp.
//
// A lone value yields {A, -1}; a range yields {A, B}. Ranges that end before
// they start are rejected.
func ParseTimestamp(s string) (types.Timestamp, error) {
	from, to, isRange := strings.Cut(s, "-")

	start, err := ParseSeconds(strings.TrimSpace(from))
	if err != nil {
		return types.NoTimestamp, err
	}
	if !isRange {
		return types.Timestamp{From: start, To: -1}, nil
	}

	end, err := ParseSeconds(strings.TrimSpace(to))
	if err != nil {
		return types.NoTimestamp, err
	}
	if end < start {
		return types.NoTimestamp, fmt.Errorf("range %q ends before it starts", s)
	}
	return types.Timestamp{From: start, To: end}, nil
}

// TrailingTimestamp looks for a parenthesized timestamp at the very end of
// text, e.g. "Ghostbusters (1:30-2:00)".
//
// When one is found it returns the timestamp and text with the parenthetical
// (and the whitespace before it) removed. Otherwise it returns NoTimestamp and
// text unchanged: parentheticals such as "(lyrics)" are not an error.
func TrailingTimestamp(text string) (types.Timestamp, string) {
	if !strings.HasSuffix(text, ")") {
		return types.NoTimestamp, text
	}
	open := strings.LastIndexByte(text, '(')
	if open < 0 {
		return types.NoTimestamp, text
	}

	ts, err := ParseTimestamp(text[open+1 : len(text)-1])
	if err != nil {
		return types.NoTimestamp, text
	}
	return ts, strings.TrimRight(text[:open], " \t")
}
