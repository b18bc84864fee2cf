package romanize

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestExecRomanizerPipesThroughCommand(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	r, err := NewExecRomanizer([]string{"cat"})
	if err != nil {
		t.Fatalf("NewExecRomanizer error: %v", err)
	}

	got, err := r.RomanizeJapanese(context.Background(), "  sakura   no\thana ")
	if err != nil {
		t.Fatalf("RomanizeJapanese error: %v", err)
	}
	if got != "sakura no hana" {
		t.Errorf("RomanizeJapanese = %q, want %q", got, "sakura no hana")
	}
}

func TestExecRomanizerReportsFailure(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	r, err := NewExecRomanizer([]string{"false"})
	if err != nil {
		t.Fatalf("NewExecRomanizer error: %v", err)
	}
	if _, err := r.RomanizeJapanese(context.Background(), "はな"); err == nil {
		t.Error("expected error from failing command")
	}
}

func TestNewExecRomanizerMissingBinary(t *testing.T) {
	if _, err := NewExecRomanizer([]string{"lyridan-no-such-romanizer"}); err == nil {
		t.Error("expected error for missing binary")
	}
}

func TestFindKakasiFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kakasi")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(kakasiPathEnv, path)

	got, err := findKakasi()
	if err != nil {
		t.Fatalf("findKakasi error: %v", err)
	}
	if got != path {
		t.Errorf("findKakasi = %q, want %q", got, path)
	}
}

func TestFindKakasiMissing(t *testing.T) {
	t.Setenv(kakasiPathEnv, "")
	t.Setenv("PATH", t.TempDir())

	if _, err := findKakasi(); !errors.Is(err, ErrKakasiNotFound) {
		t.Errorf("findKakasi error = %v, want ErrKakasiNotFound", err)
	}
}
