package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/Elevatorisbest/Lyridan/internal/romanize"
	"github.com/Elevatorisbest/Lyridan/internal/syllabize"
	"github.com/Elevatorisbest/Lyridan/internal/syllable"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var syllabizeCmd = &cobra.Command{
	Use:   "syllabize [lyric_file]",
	Short: "Split every lyric word of an LRC file into syllables",
	Long: `Split the words of a timed lyric file into syllables joined by a separator.

The input is an LRC file, or a TTML file which is converted to LRC lines
first. Untimed lines are copied unchanged. Running the command again on its
own output changes nothing.

With --romanize, Japanese lines are romanized before splitting and Russian
syllables are transliterated to Latin script. The built-in kana romanizer
needs no setup; kakasi or an LLM provider can be selected with --romanizer.

Examples:
  lyridan syllabize song.lrc
  lyridan syllabize song.lrc -s - --capitalize
  lyridan syllabize song.lrc --romanize --romanizer gemini -k YOUR_KEY
  lyridan syllabize song.lrc --language japanese --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runSyllabize,
}

func init() {
	rootCmd.AddCommand(syllabizeCmd)

	syllabizeCmd.Flags().
		StringP("separator", "s", syllabize.DefaultSeparator, "Separator placed between syllables")
	syllabizeCmd.Flags().
		Bool("capitalize", false, "Capitalize the first letter of every lyric line")
	syllabizeCmd.Flags().
		StringP("language", "l", "", "Force a language instead of detecting it per line (japanese, russian, mixed, other)")
	syllabizeCmd.Flags().
		Bool("watch", false, "Re-run whenever the input file changes")
	addRomanizerFlags(syllabizeCmd)
}

type syllabizeConfig struct {
	Input      string
	Output     string
	Options    syllabize.Options
	Dictionary string
}

func runSyllabize(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ctx := context.Background()

	separator, _ := cmd.Flags().GetString("separator")
	capitalize, _ := cmd.Flags().GetBool("capitalize")
	languageStr, _ := cmd.Flags().GetString("language")
	watch, _ := cmd.Flags().GetBool("watch")
	romanizeText, _ := cmd.Flags().GetBool("romanize")
	dictionary, _ := cmd.Flags().GetString("dictionary")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("lyric file not found: %s", inputPath)
	}

	if clamped := syllable.ClampSeparator(separator); clamped != separator {
		logger.Warnw("Separator too long, truncating",
			"max_runes", syllable.MaxSeparatorLen,
			"separator", clamped,
		)
		separator = clamped
	}

	var language *langdetect.Language
	if languageStr != "" {
		lang, err := langdetect.Parse(languageStr)
		if err != nil {
			return err
		}
		language = &lang
	}

	if outputPath == "" {
		outputPath = syllabizedOutputPath(inputPath)
	}

	rcfg := romanizerConfigFromFlags(cmd)

	cfg := syllabizeConfig{
		Input:      inputPath,
		Output:     outputPath,
		Dictionary: dictionary,
		Options: syllabize.Options{
			Separator:   separator,
			Romanize:    romanizeText,
			Capitalize:  capitalize,
			Language:    language,
			Concurrency: rcfg.Concurrency,
		},
	}

	segmenter, err := newSegmenter(cfg.Dictionary)
	if err != nil {
		return err
	}

	var rom *romanize.Adapter
	if romanizeText {
		rom, err = newRomanizer(ctx, rcfg)
		if err != nil {
			return err
		}
	}

	processor := &syllabize.Processor{Segmenter: segmenter, Romanizer: rom}

	logger.Infow("Starting syllabization",
		"input", cfg.Input,
		"output", cfg.Output,
		"separator", separator,
		"romanize", romanizeText,
		"capitalize", capitalize,
	)

	lines, err := syllabizeFile(ctx, processor, cfg)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(cfg.Output)
	fmt.Printf("Lyrics syllabized successfully: %s\n", absOutput)
	fmt.Printf("  Lines: %d\n", lines)

	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchFile(ctx, cfg.Input, func() {
		if _, err := syllabizeFile(ctx, processor, cfg); err != nil {
			logger.Errorw("Re-run failed", "error", err)
			return
		}
		logger.Infow("Output updated", "output", cfg.Output)
	})
}

// syllabizeFile processes cfg.Input into cfg.Output and returns the number
// of lines written.
func syllabizeFile(ctx context.Context, p *syllabize.Processor, cfg syllabizeConfig) (int, error) {
	file, err := lyric.Open(cfg.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to parse lyric file: %w", err)
	}

	raw := lyric.RawLines(file.Lines())

	if cfg.Options.Language == nil {
		if langdetect.DetectSample(raw, 10) == langdetect.Mixed {
			logger.Warnw("Lyrics mix Japanese and Russian text, results may be unreliable",
				"input", cfg.Input,
			)
		}
	}

	opts := cfg.Options
	if opts.Capitalize && syllabize.AllCapitalized(raw) {
		logger.Infow("Every line is already capitalized, skipping capitalization")
		opts.Capitalize = false
	}

	out := p.ProcessLines(ctx, raw, opts)

	if err := lyric.WriteText(cfg.Output, out); err != nil {
		return 0, fmt.Errorf("failed to write output file: %w", err)
	}

	return len(out), nil
}

// "<dir>/<base> Syllabized.txt" next to the input
func syllabizedOutputPath(inputPath string) string {
	baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return baseName + " Syllabized.txt"
}

// watchFile calls onChange whenever path is written or re-created, until
// ctx is done.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warnw("Failed to close watcher", "error", err)
		}
	}()

	// editors often replace the file, so watch the directory
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	logger.Infow("Watching for changes, press Ctrl+C to stop", "input", absPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.Debugw("Input changed", "op", event.Op.String())
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("File watcher error", "error", err)
		}
	}
}
