// Package lyric reads and writes timed lyric sources: line-timed LRC files
// and word-timed TTML markup, optionally wrapped in a JSON envelope.
package lyric

import (
	"path/filepath"
	"strings"
)

// one word-level timed fragment of TTML
type Span struct {
	Start float64
	End   float64
	Text  string

	// LineID groups spans into phrases. HasLineID distinguishes an absent
	// id from an empty one.
	LineID    string
	HasLineID bool

	// whitespace followed the span in the source markup
	SpaceAfter bool
}

// reports whether s and other belong to the same phrase
func (s Span) SameLine(other Span) bool {
	return s.HasLineID == other.HasLineID && s.LineID == other.LineID
}

// one line of an LRC file
type Line struct {
	Timestamp string // bracketed, verbatim, e.g. "[01:05.25]"
	Text      string // everything after the timestamp, verbatim
	Raw       string
	Timed     bool
}

// supported lyric source formats
type Format string

const (
	FormatLRC  Format = "lrc"
	FormatTTML Format = "ttml"
)

// lyric format based on file extension
func FormatFromExtension(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lrc", ".txt":
		return FormatLRC, true
	case ".ttml", ".xml", ".json":
		return FormatTTML, true
	default:
		return "", false
	}
}
