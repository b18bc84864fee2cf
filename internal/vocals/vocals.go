// Package vocals turns word-timed lyric spans into Rocksmith vocal events
// and writes them as a vocals arrangement.
package vocals

import (
	"context"
	"strings"

	"github.com/Elevatorisbest/Lyridan/internal/beatgrid"
	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/Elevatorisbest/Lyridan/internal/romanize"
	"github.com/Elevatorisbest/Lyridan/internal/syllable"
)

const (
	// lead-in silence charted before the song starts
	DefaultOffset = 10.0

	// spacing between consecutive syllables of one span
	SyllableStep = 0.25

	DefaultLength = 0.200
)

// one sung syllable
type Event struct {
	Time   float64
	Note   int
	Length float64
	Lyric  string
}

type Options struct {
	Offset       float64
	Grid         beatgrid.Grid
	EmptyMeasure bool // prepend one measure of silence, estimated from Grid
	Resolution   int  // snap subdivision, DefaultResolution when zero
	Romanize     bool
}

// Exporter segments spans into events. Romanizer may be nil.
type Exporter struct {
	Segmenter *syllable.Context
	Romanizer *romanize.Adapter
}

// Export emits one event per syllable in span order. A syllable followed by
// another of the same word ends in "-"; the last syllable of a word ends in
// "+" when another word of the span follows or when the span closes its
// phrase.
func (e *Exporter) Export(ctx context.Context, spans []lyric.Span, opts Options) []Event {
	segmenter := e.Segmenter
	if segmenter == nil {
		segmenter = syllable.NewContext(nil)
	}

	offset := opts.Offset
	if opts.EmptyMeasure {
		offset += opts.Grid.MeasureDuration()
	}

	resolution := opts.Resolution
	if resolution <= 0 {
		resolution = beatgrid.DefaultResolution
	}

	var events []Event
	for i, span := range spans {
		t := opts.Grid.Snap(span.Start+offset, resolution)
		endOfPhrase := i == len(spans)-1 || !spans[i+1].SameLine(span)

		text := span.Text
		romanized := false
		if opts.Romanize && e.Romanizer.HasJapanese() &&
			langdetect.Detect(text) == langdetect.Japanese {
			text = e.Romanizer.RomanizeJapanese(ctx, text)
			romanized = true
		}

		words := strings.Fields(text)
		for w, word := range words {
			lang := langdetect.Japanese
			if !romanized {
				lang = langdetect.Detect(word)
			}
			// mixed-script words are charted whole, not split per character
			if lang == langdetect.Mixed {
				lang = langdetect.Other
			}
			syllables := segmenter.Segment(word, lang)

			for s, syl := range syllables {
				if opts.Romanize && lang == langdetect.Russian {
					syl = e.Romanizer.TransliterateRussian(syl)
				}

				switch {
				case s < len(syllables)-1:
					syl += "-"
				case w < len(words)-1, endOfPhrase:
					syl += "+"
				}

				events = append(events, Event{
					Time:   t,
					Length: DefaultLength,
					Lyric:  syl,
				})
				t += SyllableStep
			}
		}
	}

	return events
}
