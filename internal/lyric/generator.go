package lyric

import (
	"fmt"
	"strings"
)

// SpansToLRC groups consecutive spans of the same phrase into LRC lines
// stamped with the first span's start time.
func SpansToLRC(spans []Span) []string {
	var lines []string

	var current []Span
	flush := func() {
		if len(current) == 0 {
			return
		}
		var sb strings.Builder
		for _, s := range current {
			sb.WriteString(s.Text)
			if s.SpaceAfter {
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, fmt.Sprintf(
			"[%s] %s",
			FormatLRCTimestamp(current[0].Start),
			strings.TrimSpace(sb.String()),
		))
		current = current[:0]
	}

	for _, s := range spans {
		if len(current) > 0 && !current[0].SameLine(s) {
			flush()
		}
		current = append(current, s)
	}
	flush()

	return lines
}
