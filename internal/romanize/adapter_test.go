package romanize

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeJapanese struct {
	calls int
	err   error
}

func (f *fakeJapanese) RomanizeJapanese(_ context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "romaji(" + text + ")", nil
}

type fakeBatch struct {
	fakeJapanese
	batches  int
	batchErr error
}

func (f *fakeBatch) RomanizeBatch(_ context.Context, items []Item, _ int) ([]Result, error) {
	f.batches++
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	results := make([]Result, len(items))
	for i, it := range items {
		results[i] = Result{Index: it.Index, Text: "batch(" + it.Text + ")"}
	}
	return results, nil
}

type failingRussian struct{}

func (failingRussian) TransliterateRussian(string, bool) (string, error) {
	return "", errors.New("no table")
}

func TestNilAdapterPassesThrough(t *testing.T) {
	var a *Adapter
	ctx := context.Background()

	if a.HasJapanese() || a.HasRussian() {
		t.Error("nil adapter should report no backends")
	}
	if got := a.RomanizeJapanese(ctx, "さくら"); got != "さくら" {
		t.Errorf("RomanizeJapanese = %q, want input", got)
	}
	if got := a.TransliterateRussian("привет"); got != "привет" {
		t.Errorf("TransliterateRussian = %q, want input", got)
	}
	a.Prefetch(ctx, []string{"x"}, 1)
}

func TestAdapterWithoutBackends(t *testing.T) {
	a := NewAdapter(nil, nil, nil)
	if got := a.RomanizeJapanese(context.Background(), "さくら"); got != "さくら" {
		t.Errorf("RomanizeJapanese = %q, want input", got)
	}
	if got := a.TransliterateRussian("привет"); got != "привет" {
		t.Errorf("TransliterateRussian = %q, want input", got)
	}
}

func TestAdapterDegradesOnError(t *testing.T) {
	a := NewAdapter(&fakeJapanese{err: errors.New("offline")}, failingRussian{}, nil)

	if got := a.RomanizeJapanese(context.Background(), "さくら"); got != "さくら" {
		t.Errorf("RomanizeJapanese = %q, want input", got)
	}
	if got := a.TransliterateRussian("привет"); got != "привет" {
		t.Errorf("TransliterateRussian = %q, want input", got)
	}
}

func TestAdapterCachesResults(t *testing.T) {
	backend := &fakeJapanese{}
	a := NewAdapter(backend, Translit{}, nil)
	ctx := context.Background()

	first := a.RomanizeJapanese(ctx, "さくら")
	second := a.RomanizeJapanese(ctx, "さくら")

	if first != "romaji(さくら)" || second != first {
		t.Errorf("RomanizeJapanese = %q then %q", first, second)
	}
	if backend.calls != 1 {
		t.Errorf("backend calls = %d, want 1", backend.calls)
	}
	if got := a.TransliterateRussian("привет"); got != "privet" {
		t.Errorf("TransliterateRussian = %q, want privet", got)
	}
}

func TestAdapterPrefetch(t *testing.T) {
	backend := &fakeBatch{}
	a := NewAdapter(backend, nil, nil)
	ctx := context.Background()

	a.Prefetch(ctx, []string{"はな", "ゆめ", "はな", ""}, 2)

	if backend.batches != 1 {
		t.Fatalf("batch calls = %d, want 1", backend.batches)
	}
	if got := a.RomanizeJapanese(ctx, "ゆめ"); got != "batch(ゆめ)" {
		t.Errorf("RomanizeJapanese after prefetch = %q", got)
	}
	if backend.calls != 0 {
		t.Errorf("single calls = %d, want 0", backend.calls)
	}

	a.Prefetch(ctx, []string{"はな"}, 2)
	if backend.batches != 1 {
		t.Errorf("cached text should not trigger another batch")
	}
}

func TestAdapterPrefetchFailureDisablesBackend(t *testing.T) {
	backend := &fakeBatch{batchErr: errors.New("quota")}
	a := NewAdapter(backend, nil, nil)
	ctx := context.Background()

	a.Prefetch(ctx, []string{"はな"}, 1)

	if a.HasJapanese() {
		t.Error("backend should be disabled after a failed batch")
	}
	if got := a.RomanizeJapanese(ctx, "はな"); got != "はな" {
		t.Errorf("RomanizeJapanese = %q, want input", got)
	}
	if backend.calls != 0 {
		t.Errorf("disabled backend was called %d times", backend.calls)
	}
}

func TestAdapterPrefetchIgnoresSingleLineBackends(t *testing.T) {
	backend := &fakeJapanese{}
	a := NewAdapter(backend, nil, nil)
	a.Prefetch(context.Background(), []string{"はな"}, 1)

	if backend.calls != 0 {
		t.Errorf("Prefetch called a non-batch backend %d times", backend.calls)
	}
	if !strings.HasPrefix(a.RomanizeJapanese(context.Background(), "はな"), "romaji(") {
		t.Error("single-line backend should still romanize")
	}
}
