package lyric

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1:05.250", 65.25},
		{"12.5", 12.5},
		{"01:00:01.5", 3601.5},
		{" 2:03 ", 123},
		{"0", 0},
		{"abc", 0},
		{"1:2:3:4", 0},
		{"1.5:03", 0},
		{"inf", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseTime(tt.in); got != tt.want {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimeStrict(t *testing.T) {
	if _, err := ParseTimeStrict("x:10"); !errors.Is(err, ErrTimeParse) {
		t.Errorf("ParseTimeStrict error = %v, want ErrTimeParse", err)
	}

	var tpe *TimeParseError
	if _, err := ParseTimeStrict("nope"); !errors.As(err, &tpe) || tpe.Value != "nope" {
		t.Errorf("ParseTimeStrict error = %v, want TimeParseError for nope", err)
	}

	got, err := ParseTimeStrict("1:05.250")
	if err != nil || got != 65.25 {
		t.Errorf("ParseTimeStrict(1:05.250) = %v, %v", got, err)
	}
}

func TestFormatLRCTimestamp(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{65.25, "01:05.25"},
		{0, "00:00.00"},
		{1.13, "00:01.13"},
		{1.1299999, "00:01.12"},
		{1.1299995, "00:01.12"},
		{600, "10:00.00"},
		{3599.999, "59:59.99"},
		{-3, "00:00.00"},
	}

	for _, tt := range tests {
		if got := FormatLRCTimestamp(tt.in); got != tt.want {
			t.Errorf("FormatLRCTimestamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	if got := FormatLRCTimestamp(ParseTime("1:05.250")); got != "01:05.25" {
		t.Errorf("round trip = %q, want 01:05.25", got)
	}
}
