package lyric

import (
	"fmt"
	"path/filepath"
	"strings"
)

// parsed lyric source viewed as LRC lines
type File interface {
	Format() Format
	Lines() []Line
	SetLine(index int, raw string) error
	Write(path string) error
}

// Open parses path according to its extension. TTML sources are converted
// to LRC lines.
func Open(path string) (File, error) {
	format, ok := FormatFromExtension(path)
	if !ok {
		return nil, fmt.Errorf(
			"unsupported lyric format: %s",
			strings.ToLower(filepath.Ext(path)),
		)
	}

	switch format {
	case FormatTTML:
		spans, err := ExtractFile(path)
		if err != nil {
			return nil, err
		}
		return &TTMLFile{spans: spans, lineSet: newLineSet(SpansToLRC(spans))}, nil
	default:
		lines, err := ReadLRCFile(path)
		if err != nil {
			return nil, err
		}
		return &LRCFile{lineSet{lines: lines}}, nil
	}
}

type lineSet struct {
	lines []Line
}

func newLineSet(raw []string) lineSet {
	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = ParseLine(r)
	}
	return lineSet{lines: lines}
}

func (s *lineSet) Lines() []Line {
	return s.lines
}

func (s *lineSet) SetLine(index int, raw string) error {
	if index < 0 || index >= len(s.lines) {
		return fmt.Errorf(
			"index %d out of range (0-%d)",
			index,
			len(s.lines)-1,
		)
	}
	s.lines[index] = ParseLine(raw)
	return nil
}

func (s *lineSet) Write(path string) error {
	return WriteLRC(path, s.lines)
}

type LRCFile struct {
	lineSet
}

func (f *LRCFile) Format() Format {
	return FormatLRC
}

type TTMLFile struct {
	spans []Span
	lineSet
}

func (f *TTMLFile) Format() Format {
	return FormatTTML
}

// word-timed spans the lines were built from
func (f *TTMLFile) Spans() []Span {
	return f.spans
}
