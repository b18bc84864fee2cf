package lyric

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var timestampRegex = regexp.MustCompile(`^(\[.*?\])(.*)`)

// ParseLine splits a leading bracketed timestamp from the lyric text.
// Lines without one are returned untimed.
func ParseLine(line string) Line {
	m := timestampRegex.FindStringSubmatch(line)
	if m == nil {
		return Line{Raw: line}
	}
	return Line{
		Timestamp: m[1],
		Text:      m[2],
		Raw:       line,
		Timed:     true,
	}
}

// ReadLRC reads LRC lines from r. A leading byte order mark is dropped and
// each line is NFC-normalized.
func ReadLRC(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		lines = append(lines, ParseLine(norm.NFC.String(line)))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading LRC: %w", err)
	}
	return lines, nil
}

func ReadLRCFile(path string) ([]Line, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open LRC file: %w", err)
	}
	defer file.Close()

	return ReadLRC(file)
}

// raw text of each line
func RawLines(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Raw
	}
	return out
}
