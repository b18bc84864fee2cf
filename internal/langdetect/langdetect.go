package langdetect

import (
	"fmt"
	"strings"
)

// script family of a piece of lyric text
type Language int

const (
	Other Language = iota
	Japanese
	Russian
	Mixed
)

func (l Language) String() string {
	switch l {
	case Japanese:
		return "japanese"
	case Russian:
		return "russian"
	case Mixed:
		return "mixed"
	default:
		return "other"
	}
}

// parses a language name as accepted by the --language flag
func Parse(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "japanese", "ja", "jp":
		return Japanese, nil
	case "russian", "ru":
		return Russian, nil
	case "mixed":
		return Mixed, nil
	case "other", "english", "en":
		return Other, nil
	default:
		return Other, fmt.Errorf(
			"unsupported language %q: use japanese, russian, mixed, or other",
			s,
		)
	}
}

// Detect classifies text by the scripts it contains. Kana and CJK
// ideographs mark Japanese, the basic Cyrillic alphabet marks Russian.
func Detect(text string) Language {
	var hasJapanese, hasRussian bool
	for _, r := range text {
		switch {
		case isJapanese(r):
			hasJapanese = true
		case isCyrillic(r):
			hasRussian = true
		}
		if hasJapanese && hasRussian {
			return Mixed
		}
	}

	switch {
	case hasJapanese:
		return Japanese
	case hasRussian:
		return Russian
	default:
		return Other
	}
}

// detects over the first n lines joined together
func DetectSample(lines []string, n int) Language {
	if n > len(lines) || n < 0 {
		n = len(lines)
	}
	return Detect(strings.Join(lines[:n], ""))
}

func isJapanese(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || // hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // katakana
		(r >= 0x4E00 && r <= 0x9FAF) // CJK unified ideographs
}

// а-я and А-Я only; ё and Ё sit outside that block
func isCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я')
}
