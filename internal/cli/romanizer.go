package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Elevatorisbest/Lyridan/internal/romanize"
	"github.com/Elevatorisbest/Lyridan/internal/syllable"
	"github.com/spf13/cobra"
)

// romanizer settings shared by syllabize and export
type romanizerConfig struct {
	Provider    string
	APIKey      string
	Model       string
	Command     string
	BatchSize   int
	Concurrency int
}

func addRomanizerFlags(cmd *cobra.Command) {
	cmd.Flags().
		Bool("romanize", false, "Romanize Japanese and transliterate Russian before splitting")
	cmd.Flags().
		String("romanizer", "kana", "Japanese romanizer (none, kana, exec, gemini, openai, anthropic)")
	cmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY env var)")
	cmd.Flags().
		String("model", "", "Model to use for LLM romanization (provider-specific, uses sensible defaults)")
	cmd.Flags().
		String("kakasi", "", "Command line for the exec romanizer (default: kakasi from LYRIDAN_KAKASI_PATH or PATH)")
	cmd.Flags().
		Int("batch-size", romanize.DefaultBatchSize, "Number of lines per LLM request")
	cmd.Flags().
		Int("concurrency", 3, "Number of parallel LLM requests")
	cmd.Flags().
		String("dictionary", "", "Hyphenation dictionary file (default: built-in English list)")
}

func romanizerConfigFromFlags(cmd *cobra.Command) romanizerConfig {
	provider, _ := cmd.Flags().GetString("romanizer")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	command, _ := cmd.Flags().GetString("kakasi")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	return romanizerConfig{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       model,
		Command:     command,
		BatchSize:   batchSize,
		Concurrency: concurrency,
	}
}

// newRomanizer builds the adapter used when --romanize is set. Russian
// transliteration is always available; the Japanese backend depends on
// the provider. Only invalid flag values are errors.
func newRomanizer(ctx context.Context, cfg romanizerConfig) (*romanize.Adapter, error) {
	provider, err := romanize.ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}

	if cfg.Concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be positive, got %d", cfg.Concurrency)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch-size must be positive, got %d", cfg.BatchSize)
	}

	opts := romanize.Options{
		Model:     cfg.Model,
		BatchSize: cfg.BatchSize,
		Command:   strings.Fields(cfg.Command),
	}

	// a backend that cannot be set up leaves Japanese text as is
	var japanese romanize.Japanese
	apiKey := romanize.ResolveAPIKey(provider, cfg.APIKey)
	if env := romanize.APIKeyEnv(provider); env != "" && apiKey == "" {
		logger.Warnw("API key missing, Japanese romanization disabled",
			"provider", provider,
			"env", env,
		)
	} else if japanese, err = romanize.Factory(ctx, provider, apiKey, opts); err != nil {
		logger.Warnw("Failed to create romanizer, Japanese romanization disabled",
			"provider", provider,
			"error", err,
		)
		japanese = nil
	}
	if japanese == nil {
		logger.Warnw("No Japanese romanizer configured, Japanese text will be split as is")
	}

	logger.Debugw("Romanizer ready", "provider", provider)

	return romanize.NewAdapter(japanese, romanize.Translit{}, logger), nil
}

// loads the dictionary at path, or the built-in one when path is empty
func newSegmenter(path string) (*syllable.Context, error) {
	var (
		dict *syllable.Dictionary
		err  error
	)
	if path == "" {
		dict, err = syllable.DefaultDictionary()
	} else {
		dict, err = syllable.LoadDictionaryFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	logger.Debugw("Dictionary loaded", "path", path, "words", dict.Len())

	return syllable.NewContext(dict), nil
}
