package syllable

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuation prefix, word core, punctuation suffix
var affixRegex = regexp.MustCompile(`^([^\p{L}\p{N}_]*)(.*?)([^\p{L}\p{N}_]*)$`)

// EnglishSegmenter splits words found in its dictionary and returns every
// other word whole. There is no rule-based fallback.
type EnglishSegmenter struct {
	dict *Dictionary
}

func NewEnglishSegmenter(dict *Dictionary) *EnglishSegmenter {
	return &EnglishSegmenter{dict: dict}
}

func (s *EnglishSegmenter) Segment(word string) []string {
	if word == "" {
		return nil
	}

	m := affixRegex.FindStringSubmatch(word)
	if m == nil || m[2] == "" {
		return []string{word}
	}
	prefix, core, suffix := m[1], m[2], m[3]

	syllables, ok := s.dict.Lookup(core)
	if !ok {
		return []string{word}
	}

	first, _ := utf8.DecodeRuneInString(core)
	if unicode.IsUpper(first) {
		syllables[0] = upperFirst(syllables[0])
	}
	if utf8.RuneCountInString(core) > 1 && isAllUpper(core) {
		for i := range syllables {
			syllables[i] = toUpper(syllables[i])
		}
	}

	syllables[0] = prefix + syllables[0]
	syllables[len(syllables)-1] += suffix

	return syllables
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return toUpper(string(r)) + s[size:]
}

// casers carry state, so each call gets its own
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// true when s has at least one cased letter and none of them is lower or
// title case
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r) || unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
