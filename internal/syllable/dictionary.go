package syllable

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// marks syllable boundaries in dictionary entries
const Interpunct = "•"

//go:embed english.txt
var embeddedEnglish string

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Dictionary maps a lower-cased word to its syllables. It is never
// modified after loading.
type Dictionary struct {
	entries map[string][]string
}

// LoadDictionary reads one entry per line, syllables separated by the
// interpunct. Lines without an interpunct are ignored.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		line = norm.NFC.String(strings.TrimSpace(line))
		if line == "" || !strings.Contains(line, Interpunct) {
			continue
		}

		var syllables []string
		for _, part := range strings.Split(line, Interpunct) {
			if part != "" {
				syllables = append(syllables, part)
			}
		}
		if len(syllables) == 0 {
			continue
		}

		key := strings.ToLower(strings.Join(syllables, ""))
		d.entries[key] = syllables
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}

	return d, nil
}

func LoadDictionaryFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	return LoadDictionary(file)
}

// DefaultDictionary returns the embedded English dictionary, parsed on
// first use and shared afterwards.
func DefaultDictionary() (*Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = LoadDictionary(strings.NewReader(embeddedEnglish))
	})
	return defaultDict, defaultErr
}

// Lookup returns a copy of the syllables stored for word, matched
// case-insensitively. The bool is false on a miss.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	if d == nil {
		return nil, false
	}
	syllables, ok := d.entries[strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(syllables))
	copy(out, syllables)
	return out, true
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}
