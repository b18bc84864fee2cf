package syllable

import (
	"strings"
	"unicode"
)

const russianVowels = "аеёиоуыэюяАЕЁИОУЫЭЮЯ"

// RussianSegmenter gives every vowel its own syllable. Consonant clusters
// between two vowels are split by onset maximization, with й always
// closing the syllable before it.
type RussianSegmenter struct{}

func (RussianSegmenter) Segment(word string) []string {
	if word == "" {
		return nil
	}

	runes := []rune(word)
	var vowels []int
	for i, r := range runes {
		if strings.ContainsRune(russianVowels, r) {
			vowels = append(vowels, i)
		}
	}
	if len(vowels) == 0 {
		return []string{word}
	}

	syllables := make([]string, 0, len(vowels))
	start := 0
	for k, v := range vowels {
		end := len(runes)
		if k < len(vowels)-1 {
			next := vowels[k+1]
			switch consonants := next - v - 1; {
			case consonants <= 1:
				end = v + 1
			case unicode.ToLower(runes[v+1]) == 'й':
				end = v + 2
			default:
				end = next - 1
			}
		}
		syllables = append(syllables, string(runes[start:end]))
		start = end
	}

	return syllables
}
