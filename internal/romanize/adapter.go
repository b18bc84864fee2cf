package romanize

import (
	"context"
	"sync"

	"github.com/Elevatorisbest/Lyridan/internal/logging"
)

// Adapter wraps the configured backends so that romanization never fails:
// a missing backend or a backend error yields the input text unchanged and a
// logged warning. A nil *Adapter behaves as one with no backends.
type Adapter struct {
	japanese Japanese
	russian  Russian
	logger   *logging.Logger

	mu    sync.Mutex
	cache map[string]string
}

func NewAdapter(japanese Japanese, russian Russian, logger *logging.Logger) *Adapter {
	return &Adapter{
		japanese: japanese,
		russian:  russian,
		logger:   logging.OrNop(logger),
		cache:    make(map[string]string),
	}
}

func (a *Adapter) HasJapanese() bool {
	if a == nil {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.japanese != nil
}

func (a *Adapter) HasRussian() bool {
	return a != nil && a.russian != nil
}

// RomanizeJapanese returns the romanized text, or text itself when no
// backend is configured or the backend fails.
func (a *Adapter) RomanizeJapanese(ctx context.Context, text string) string {
	if a == nil {
		return text
	}

	a.mu.Lock()
	backend := a.japanese
	cached, ok := a.cache[text]
	a.mu.Unlock()

	if ok {
		return cached
	}
	if backend == nil {
		return text
	}

	out, err := backend.RomanizeJapanese(ctx, text)
	if err != nil {
		a.logger.Warnw("Japanese romanization failed, keeping original text",
			"text", text,
			"error", err,
		)
		return text
	}

	a.mu.Lock()
	a.cache[text] = out
	a.mu.Unlock()
	return out
}

// TransliterateRussian returns the Latin form of text, or text itself when
// no backend is configured or the backend fails.
func (a *Adapter) TransliterateRussian(text string) string {
	if a == nil || a.russian == nil {
		return text
	}
	out, err := a.russian.TransliterateRussian(text, false)
	if err != nil {
		a.logger.Warnw("Russian transliteration failed, keeping original text",
			"text", text,
			"error", err,
		)
		return text
	}
	return out
}

// Prefetch romanizes texts ahead of time with a batch-capable backend so
// later RomanizeJapanese calls hit the cache. A failed batch disables the
// backend for the rest of the run.
func (a *Adapter) Prefetch(ctx context.Context, texts []string, concurrency int) {
	if a == nil {
		return
	}

	a.mu.Lock()
	batcher, ok := a.japanese.(BatchJapanese)
	if !ok {
		a.mu.Unlock()
		return
	}
	var items []Item
	seen := make(map[string]bool)
	for _, t := range texts {
		if _, cached := a.cache[t]; cached || seen[t] || t == "" {
			continue
		}
		seen[t] = true
		items = append(items, Item{Index: len(items), Text: t})
	}
	a.mu.Unlock()

	if len(items) == 0 {
		return
	}

	a.logger.Infow("Prefetching romanizations", "lines", len(items))

	results, err := batcher.RomanizeBatch(ctx, items, concurrency)
	if err != nil {
		a.logger.Warnw("Batch romanization failed, disabling Japanese romanization",
			"error", err,
		)
		a.mu.Lock()
		a.japanese = nil
		a.mu.Unlock()
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range results {
		if r.Index >= 0 && r.Index < len(items) {
			a.cache[items[r.Index].Text] = r.Text
		}
	}
}
