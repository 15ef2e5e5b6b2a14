package hvscmeta

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestOutOfBoundsError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OutOfBoundsError
		contains []string
	}{
		{
			name: "offset beyond file size",
			err: &OutOfBoundsError{
				Path:   "Commando.sid",
				Offset: 1000,
				Length: 2,
				Size:   500,
				What:   "embedded load address",
			},
			contains: []string{"Commando.sid", "offset 1000 out of bounds", "file size: 500", "embedded load address"},
		},
		{
			name: "read would exceed file size",
			err: &OutOfBoundsError{
				Path:   "Commando.sid",
				Offset: 124,
				Length: 2,
				Size:   125,
				What:   "embedded load address",
			},
			contains: []string{"read of 2 bytes", "offset 124", "exceed file size 125"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{Path: "broken.sid", Offset: 4, Reason: "unsupported version 9"}

	msg := err.Error()
	for _, want := range []string{"broken.sid", "offset 4", "unsupported version 9"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("InvalidFormatError should match ErrInvalidFormat")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("InvalidFormatError should not match ErrNotFound")
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Path: "STIL.txt", Key: "/GAMES/A-F/Commando.sid"}

	if !strings.Contains(err.Error(), "/GAMES/A-F/Commando.sid") {
		t.Errorf("error should contain key, got: %s", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}
}

func TestParseError(t *testing.T) {
	withLine := &ParseError{Path: "Songlengths.md5", Line: 12, Token: "1:xx", Reason: "not a song length"}
	if !strings.Contains(withLine.Error(), "Songlengths.md5:12") {
		t.Errorf("error should contain path and line, got: %s", withLine)
	}

	noLine := &ParseError{Path: "/x.sid", Token: "2:00-1:30", Reason: "malformed title timestamp"}
	if strings.Contains(noLine.Error(), ":0:") {
		t.Errorf("error should omit a zero line, got: %s", noLine)
	}
	if !errors.Is(noLine, ErrParse) {
		t.Error("ParseError should match ErrParse")
	}
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "open", Path: "STIL.txt", Err: fs.ErrNotExist}

	if !strings.Contains(err.Error(), "open STIL.txt") {
		t.Errorf("error should contain op and path, got: %s", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("IOError should unwrap to its cause")
	}
}
