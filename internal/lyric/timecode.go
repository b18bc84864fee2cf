package lyric

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseTime converts a TTML clock value to seconds. Malformed values yield 0.
func ParseTime(s string) float64 {
	t, err := ParseTimeStrict(s)
	if err != nil {
		return 0
	}
	return t
}

// ParseTimeStrict accepts SS.fff, MM:SS.fff and HH:MM:SS.fff with integer
// hour and minute fields.
func ParseTimeStrict(s string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 3 {
		return 0, &TimeParseError{Value: s}
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[len(parts)-1]), 64)
	if err != nil {
		return 0, &TimeParseError{Value: s, Err: err}
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, &TimeParseError{Value: s}
	}

	scale := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, &TimeParseError{Value: s, Err: err}
		}
		seconds += float64(n) * scale
		scale *= 60
	}

	return seconds, nil
}

// FormatLRCTimestamp renders seconds as mm:ss.cc with truncated
// centiseconds. Negative values clamp to zero.
func FormatLRCTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	minutes := int(seconds / 60)
	rest := seconds - float64(minutes)*60
	whole := int(rest)
	// tolerance for binary fractions like 1.13 that sit just below the cent
	centis := int((rest-float64(whole))*100 + 1e-9)
	if centis > 99 {
		centis = 99
	}

	return fmt.Sprintf("%02d:%02d.%02d", minutes, whole, centis)
}
