package lyric

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when no lyric markup can be extracted.
	ErrFormat = errors.New("unrecognized lyric format")

	// ErrTimeParse is returned by ParseTimeStrict for malformed time codes.
	ErrTimeParse = errors.New("invalid time code")
)

// FormatError reports why TTML extraction failed as a whole.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFormat, e.Err}
	}
	return []error{ErrFormat}
}

// TimeParseError reports a time code that is not SS.fff, MM:SS.fff or
// HH:MM:SS.fff.
type TimeParseError struct {
	Value string
	Err   error
}

func (e *TimeParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid time code %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid time code %q", e.Value)
}

func (e *TimeParseError) Unwrap() error {
	return ErrTimeParse
}
