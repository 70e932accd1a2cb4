package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "-"},
		{0, "0s"},
		{45 * time.Second, "45s"},
		{61 * time.Second, "1m 1s"},
		{3661 * time.Second, "1h 1m 1s"},
	}

	for _, tt := range tests {
		if got := Duration(tt.in); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUntil(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if got := Until(time.Time{}, now); got != "-" {
		t.Errorf("zero due = %q", got)
	}
	if got := Until(now, now); got != "overdue" {
		t.Errorf("due now = %q", got)
	}
	if got := Until(now.Add(90*time.Second), now); got != "1m 30s" {
		t.Errorf("due in 90s = %q", got)
	}
}

func TestDurationMins(t *testing.T) {
	if got := DurationMins(0); got != "none" {
		t.Errorf("DurationMins(0) = %q", got)
	}
	if got := DurationMins(90); got != "1h 30m 0s" {
		t.Errorf("DurationMins(90) = %q", got)
	}
}

func TestDateTimeShort(t *testing.T) {
	if got := DateTimeShort(""); got != "-" {
		t.Errorf("empty = %q", got)
	}
	if got := DateTimeShort("yesterday"); got != "yesterday" {
		t.Errorf("unparsable = %q", got)
	}
	ts := time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)
	want := ts.Local().Format("01-02 15:04")
	if got := DateTimeShort(ts.Format(time.RFC3339)); got != want {
		t.Errorf("DateTimeShort = %q, want %q", got, want)
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"0x0123456789", 10, "0x0...6789"},
		{"abcdefgh", 4, "abcd"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateMiddle(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateMiddle(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
