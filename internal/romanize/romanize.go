// Package romanize turns Japanese and Russian lyric text into Latin script.
//
// The linguistics live in pluggable backends: a kana table, an external
// command such as kakasi, or an LLM. Callers normally go through Adapter,
// which never fails and falls back to the original text.
package romanize

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// single line of text to romanize
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// romanized line, matched to its Item by Index
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Japanese romanizes kana/kanji text into space-delimited Latin words.
type Japanese interface {
	RomanizeJapanese(ctx context.Context, text string) (string, error)
}

// optional interface for backends that romanize many lines per request
type BatchJapanese interface {
	Japanese
	RomanizeBatch(
		ctx context.Context,
		items []Item,
		concurrency int,
	) ([]Result, error)
}

// Russian transliterates between Cyrillic and Latin. reverse=false is
// Cyrillic to Latin.
type Russian interface {
	TransliterateRussian(text string, reverse bool) (string, error)
}

// Japanese romanization backend
type Provider string

const (
	ProviderNone      Provider = "none"
	ProviderKana      Provider = "kana"
	ProviderExec      Provider = "exec"
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

type Options struct {
	Model     string
	BatchSize int      // lines per LLM request (default 50)
	Command   []string // exec provider: binary and arguments
}

// creates a Japanese backend for provider. ProviderNone yields a nil
// backend and no error.
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Japanese, error) {
	switch provider {
	case ProviderNone, "":
		return nil, nil
	case ProviderKana:
		return NewKanaRomanizer(), nil
	case ProviderExec:
		return NewExecRomanizer(opts.Command)
	case ProviderGemini:
		return NewGeminiRomanizer(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAIRomanizer(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicRomanizer(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported romanization provider: %s", provider)
	}
}

// environment variable holding the API key for provider, if it needs one
func APIKeyEnv(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return ""
	}
}

// resolves the API key from the flag value or the provider's env var
func ResolveAPIKey(provider Provider, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := APIKeyEnv(provider); env != "" {
		return os.Getenv(env)
	}
	return ""
}

// ParseProvider accepts a provider name in any case.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProviderNone, ProviderKana, ProviderExec,
		ProviderGemini, ProviderOpenAI, ProviderAnthropic:
		return p, nil
	case "":
		return ProviderNone, nil
	default:
		return "", fmt.Errorf(
			"unsupported romanization provider %q: use none, kana, exec, gemini, openai, or anthropic",
			s,
		)
	}
}
