// Package syllable splits single words into syllables. Three strategies are
// provided (English dictionary lookup, romanized Japanese morae and Russian
// vowel nuclei) and a Context picks one per detected language.
//
// Every segmenter keeps the reconstruction invariant: joining the returned
// pieces gives back the input word, apart from the case restoration done
// on dictionary hits.
package syllable

import (
	"strings"
	"unicode/utf8"

	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
)

// longest separator accepted from the user
const MaxSeparatorLen = 20

// interface for single-word segmentation
type Segmenter interface {
	Segment(word string) []string
}

// Context bundles the segmenters and the dictionary they share. It is
// safe for concurrent use once built.
type Context struct {
	english  *EnglishSegmenter
	japanese JapaneseSegmenter
	russian  RussianSegmenter
}

// NewContext builds a segmentation context around dict. A nil dictionary
// behaves like an empty one, so English words pass through unsplit.
func NewContext(dict *Dictionary) *Context {
	return &Context{
		english: NewEnglishSegmenter(dict),
	}
}

func (c *Context) SegmenterFor(lang langdetect.Language) Segmenter {
	switch lang {
	case langdetect.Russian:
		return c.russian
	case langdetect.Other:
		return c.english
	default:
		// japanese and mixed text both go through the mora rules
		return c.japanese
	}
}

func (c *Context) Segment(word string, lang langdetect.Language) []string {
	return c.SegmenterFor(lang).Segment(word)
}

// Syllabize segments word and joins the syllables with sep.
func (c *Context) Syllabize(word, sep string, lang langdetect.Language) string {
	return strings.Join(c.Segment(word, lang), sep)
}

// truncates sep to MaxSeparatorLen runes
func ClampSeparator(sep string) string {
	if utf8.RuneCountInString(sep) <= MaxSeparatorLen {
		return sep
	}
	return string([]rune(sep)[:MaxSeparatorLen])
}
