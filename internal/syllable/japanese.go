package syllable

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// onset + nucleus at the start of the remaining text. Alternatives are
// tried in order, so "kya" wins over "ky" + "a".
var moraCore = regexp.MustCompile(
	`(?i)^(?:(?:ch|sh|ts|[bcdfghjklmnpqrstvwxyz]y)[aeiou]|(?:ch|sh|ts|[bcdfghjklmnpqrstvwxyz])[aeiouy]|[aeiouy])`,
)

// JapaneseSegmenter splits romanized (Hepburn) Japanese into mora-like
// syllables. Anything that does not start a syllable is emitted as a
// single-rune piece.
type JapaneseSegmenter struct{}

func (JapaneseSegmenter) Segment(word string) []string {
	var syllables []string

	i := 0
	for i < len(word) {
		loc := moraCore.FindStringIndex(word[i:])
		if loc == nil {
			_, size := utf8.DecodeRuneInString(word[i:])
			syllables = append(syllables, word[i:i+size])
			i += size
			continue
		}

		start := i
		i += loc[1]

		if i < len(word) {
			next, size := utf8.DecodeRuneInString(word[i:])
			after, _ := utf8.DecodeRuneInString(word[i+size:])
			hasAfter := i+size < len(word)

			switch {
			case unicode.ToLower(next) == 'n':
				// moraic n closes the syllable unless it opens the next one
				if !hasAfter || !isRomajiVowel(after) {
					i += size
				}
			case isRomajiConsonant(next) && hasAfter:
				// first half of a geminate, or the t of "tch"
				n, a := unicode.ToLower(next), unicode.ToLower(after)
				if n == a || (n == 't' && a == 'c') {
					i += size
				}
			}
		}

		syllables = append(syllables, word[start:i])
	}

	return syllables
}

func isRomajiVowel(r rune) bool {
	return strings.ContainsRune("aeiouy", unicode.ToLower(r))
}

// consonants other than n, which has its own coda rule
func isRomajiConsonant(r rune) bool {
	return strings.ContainsRune("bcdfghjklmpqrstvwxyz", unicode.ToLower(r))
}
