package parsing

import (
	"testing"

	"github.com/simonhull/hvscmeta/internal/types"
)

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minutes and seconds", input: "1:30", want: 90},
		{name: "zero", input: "0:00", want: 0},
		{name: "two digit minutes", input: "12:05", want: 725},
		{name: "hours", input: "1:02:03", want: 3723},
		{name: "single digit seconds", input: "1:3", wantErr: true},
		{name: "seconds overflow", input: "1:60", wantErr: true},
		{name: "minutes overflow with hours", input: "1:60:00", wantErr: true},
		{name: "letters", input: "1:xx", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "90", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeconds(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSeconds(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeconds(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "plain", input: "2:45", want: 165},
		{name: "milliseconds truncated", input: "2:45.987", want: 165},
		{name: "attribute suffix", input: "0:12(G)", want: 12},
		{name: "fraction and suffix", input: "3:01.5(M)", want: 181},
		{name: "garbage", input: "1:xx", wantErr: true},
		{name: "long fraction", input: "1:00.1234", wantErr: true},
		{name: "lowercase suffix", input: "1:00(g)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLength(%q) = %d, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLength(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input   string
		want    types.Timestamp
		wantErr bool
	}{
		{input: "1:30", want: types.Timestamp{From: 90, To: -1}},
		{input: "1:30-2:00", want: types.Timestamp{From: 90, To: 120}},
		{input: "0:00 - 0:10", want: types.Timestamp{From: 0, To: 10}},
		{input: "2:00-1:30", wantErr: true},
		{input: "1:30-", wantErr: true},
		{input: "lyrics", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) = %+v, want error", tt.input, got)
				}
				if got != types.NoTimestamp {
					t.Errorf("ParseTimestamp(%q) on error = %+v, want NoTimestamp", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrailingTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTS   types.Timestamp
		wantText string
	}{
		{
			name:     "single point",
			input:    "Ghostbusters (1:30)",
			wantTS:   types.Timestamp{From: 90, To: -1},
			wantText: "Ghostbusters",
		},
		{
			name:     "range",
			input:    "Ghostbusters (1:30-2:00)",
			wantTS:   types.Timestamp{From: 90, To: 120},
			wantText: "Ghostbusters",
		},
		{
			name:     "non-timestamp parenthetical",
			input:    "Ghostbusters (lyrics)",
			wantTS:   types.NoTimestamp,
			wantText: "Ghostbusters (lyrics)",
		},
		{
			name:     "no parenthetical",
			input:    "Ghostbusters",
			wantTS:   types.NoTimestamp,
			wantText: "Ghostbusters",
		},
		{
			name:     "parenthetical not at end",
			input:    "Ghostbusters (1:30) remix",
			wantTS:   types.NoTimestamp,
			wantText: "Ghostbusters (1:30) remix",
		},
		{
			name:     "last parenthetical wins",
			input:    "Theme (from Ghostbusters) (0:45)",
			wantTS:   types.Timestamp{From: 45, To: -1},
			wantText: "Theme (from Ghostbusters)",
		},
		{
			name:     "unbalanced",
			input:    "Ghostbusters 1:30)",
			wantTS:   types.NoTimestamp,
			wantText: "Ghostbusters 1:30)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, text := TrailingTimestamp(tt.input)
			if ts != tt.wantTS {
				t.Errorf("TrailingTimestamp(%q) timestamp = %+v, want %+v", tt.input, ts, tt.wantTS)
			}
			if text != tt.wantText {
				t.Errorf("TrailingTimestamp(%q) text = %q, want %q", tt.input, text, tt.wantText)
			}
		})
	}
}
