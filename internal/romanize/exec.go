package romanize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

const kakasiPathEnv = "LYRIDAN_KAKASI_PATH"

// kanji, hiragana, katakana and JIS symbols to ASCII, words space separated
var DefaultKakasiArgs = []string{"-i", "utf8", "-o", "utf8", "-Ja", "-Ha", "-Ka", "-Ea", "-s"}

var ErrKakasiNotFound = errors.New("kakasi not found: install it or set " + kakasiPathEnv)

var (
	kakasiOnce sync.Once
	kakasiErr  error
	kakasiPath string
)

// KakasiPath locates the kakasi binary once per process, preferring
// LYRIDAN_KAKASI_PATH over PATH.
func KakasiPath() (string, error) {
	kakasiOnce.Do(func() {
		kakasiPath, kakasiErr = findKakasi()
	})
	return kakasiPath, kakasiErr
}

func findKakasi() (string, error) {
	if p := os.Getenv(kakasiPathEnv); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("%s: %w", kakasiPathEnv, err)
		}
		return p, nil
	}
	if found, err := exec.LookPath("kakasi"); err == nil {
		return found, nil
	}
	return "", ErrKakasiNotFound
}

// ExecRomanizer pipes each line through an external romanizer and reads
// romaji from its stdout.
type ExecRomanizer struct {
	path string
	args []string
}

// NewExecRomanizer uses command[0] as the binary and the rest as arguments.
// An empty command means kakasi with DefaultKakasiArgs.
func NewExecRomanizer(command []string) (*ExecRomanizer, error) {
	if len(command) > 0 {
		path, err := exec.LookPath(command[0])
		if err != nil {
			return nil, fmt.Errorf("failed to find romanizer %q: %w", command[0], err)
		}
		return &ExecRomanizer{path: path, args: command[1:]}, nil
	}

	path, err := KakasiPath()
	if err != nil {
		return nil, err
	}
	return &ExecRomanizer{path: path, args: DefaultKakasiArgs}, nil
}

func (e *ExecRomanizer) RomanizeJapanese(ctx context.Context, text string) (string, error) {
	cmd := exec.CommandContext(ctx, e.path, e.args...)
	cmd.Stdin = strings.NewReader(text + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("romanizer failed: %w: %s", err, msg)
		}
		return "", fmt.Errorf("romanizer failed: %w", err)
	}

	return strings.Join(strings.Fields(stdout.String()), " "), nil
}
