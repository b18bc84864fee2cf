package lyric

import (
	"strings"

	"github.com/Elevatorisbest/Lyridan/internal/fsutil"
)

// WriteText writes lines joined by newlines, with a trailing newline.
func WriteText(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return fsutil.AtomicWrite(path, []byte(sb.String()))
}

// WriteLRC writes the raw form of each line.
func WriteLRC(path string, lines []Line) error {
	return WriteText(path, RawLines(lines))
}
