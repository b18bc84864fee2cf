// Package syllabize rewrites LRC lines with every word split into
// syllables, optionally romanizing Japanese and Russian lyrics first.
package syllabize

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/Elevatorisbest/Lyridan/internal/romanize"
	"github.com/Elevatorisbest/Lyridan/internal/syllable"
)

const DefaultSeparator = "+"

type Options struct {
	Separator  string
	Romanize   bool
	Capitalize bool

	// Language overrides per-line detection when set.
	Language *langdetect.Language

	// parallel LLM requests during ProcessLines prefetch
	Concurrency int
}

// Processor syllabizes LRC lines. Romanizer may be nil.
type Processor struct {
	Segmenter *syllable.Context
	Romanizer *romanize.Adapter
}

// ProcessLine syllabizes the text after a line's timestamp. Untimed lines
// are returned verbatim. One space after the timestamp is the delimiter, so
// processing the output again with the same options changes nothing.
func (p *Processor) ProcessLine(ctx context.Context, line string, opts Options) string {
	parsed := lyric.ParseLine(line)
	if !parsed.Timed {
		return line
	}

	text := lineText(parsed)
	lang := p.language(text, opts)

	if lang == langdetect.Japanese && opts.Romanize && p.Romanizer.HasJapanese() {
		text = strings.Join(strings.Fields(p.Romanizer.RomanizeJapanese(ctx, text)), " ")
	}

	if opts.Capitalize {
		text = capitalizeFirst(strings.TrimSpace(text))
	}

	segmenter := p.Segmenter
	if segmenter == nil {
		segmenter = syllable.NewContext(nil)
	}

	sep := opts.Separator
	words := strings.Split(text, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = p.syllabizeWord(segmenter, word, sep, lang, opts.Romanize)
	}

	joined := strings.Join(words, " ")
	if joined == "" {
		return parsed.Timestamp
	}
	return parsed.Timestamp + " " + joined
}

// ProcessLines processes every line in order. With a batch-capable
// romanizer, all Japanese lines are romanized up front in one pass.
func (p *Processor) ProcessLines(ctx context.Context, lines []string, opts Options) []string {
	if opts.Romanize && p.Romanizer.HasJapanese() {
		var texts []string
		for _, line := range lines {
			parsed := lyric.ParseLine(line)
			if !parsed.Timed {
				continue
			}
			text := lineText(parsed)
			if p.language(text, opts) == langdetect.Japanese {
				texts = append(texts, text)
			}
		}
		p.Romanizer.Prefetch(ctx, texts, opts.Concurrency)
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = p.ProcessLine(ctx, line, opts)
	}
	return out
}

// AllCapitalized reports whether at least one timed line has text and every
// such line starts with an upper-case letter.
func AllCapitalized(lines []string) bool {
	hasText := false
	for _, line := range lines {
		parsed := lyric.ParseLine(line)
		if !parsed.Timed {
			continue
		}
		text := strings.TrimSpace(parsed.Text)
		if text == "" {
			continue
		}
		hasText = true
		r, _ := utf8.DecodeRuneInString(text)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasText
}

// existing separators inside word are kept as syllable boundaries, so a
// second pass is a no-op; a hyphenated word like "что-то" under "-" is
// therefore segmented per piece rather than as one word
func (p *Processor) syllabizeWord(
	segmenter *syllable.Context,
	word, sep string,
	lang langdetect.Language,
	translit bool,
) string {
	pieces := []string{word}
	if sep != "" {
		pieces = strings.Split(word, sep)
	}

	var syllables []string
	for _, piece := range pieces {
		if piece == "" {
			syllables = append(syllables, "")
			continue
		}
		for _, syl := range segmenter.Segment(piece, lang) {
			if lang == langdetect.Russian && translit {
				syl = p.Romanizer.TransliterateRussian(syl)
			}
			syllables = append(syllables, syl)
		}
	}

	return strings.Join(syllables, sep)
}

func (p *Processor) language(text string, opts Options) langdetect.Language {
	if opts.Language != nil {
		return *opts.Language
	}
	return langdetect.Detect(text)
}

func lineText(l lyric.Line) string {
	return strings.TrimPrefix(l.Text, " ")
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
