package types

import (
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		ts        Timestamp
		wantValid bool
		wantRange bool
		wantStart time.Duration
		wantEnd   time.Duration
		wantStr   string
	}{
		{name: "absent", ts: NoTimestamp, wantStr: ""},
		{name: "point", ts: Timestamp{From: 90, To: -1}, wantValid: true, wantStart: 90 * time.Second, wantStr: "1:30"},
		{
			name: "range", ts: Timestamp{From: 90, To: 120},
			wantValid: true, wantRange: true,
			wantStart: 90 * time.Second, wantEnd: 120 * time.Second,
			wantStr: "1:30-2:00",
		},
		{name: "hours", ts: Timestamp{From: 3723, To: -1}, wantValid: true, wantStart: 3723 * time.Second, wantStr: "1:02:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ts.Valid(); got != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", got, tt.wantValid)
			}
			if got := tt.ts.IsRange(); got != tt.wantRange {
				t.Errorf("IsRange() = %v, want %v", got, tt.wantRange)
			}
			if got := tt.ts.Start(); got != tt.wantStart {
				t.Errorf("Start() = %v, want %v", got, tt.wantStart)
			}
			if got := tt.ts.End(); got != tt.wantEnd {
				t.Errorf("End() = %v, want %v", got, tt.wantEnd)
			}
			if got := tt.ts.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}
