package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Elevatorisbest/Lyridan/internal/beatgrid"
	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/Elevatorisbest/Lyridan/internal/romanize"
	"github.com/Elevatorisbest/Lyridan/internal/vocals"
	"github.com/spf13/cobra"
)

const defaultVocalsOutput = "vocals_rs.xml"

var exportCmd = &cobra.Command{
	Use:   "export [ttml_file]",
	Short: "Export word-timed TTML lyrics as a Rocksmith vocals arrangement",
	Long: `Export the word spans of a TTML file (or its JSON envelope) as Rocksmith vocal
events, one event per syllable.

Event times are shifted by an offset (10 seconds by default) and snapped to
the beat grid read from a Rocksmith arrangement file. A beat map that cannot
be read is reported and the times are left unsnapped.

Examples:
  lyridan export lyrics.ttml --beatmap lead.xml
  lyridan export lyrics.json --beatmap lead.xml --empty-measure -o vocals.xml
  lyridan export lyrics.ttml --no-offset --romanize --romanizer openai`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		String("beatmap", "", "Rocksmith arrangement XML providing the beat grid")
	exportCmd.Flags().
		Float64("offset", vocals.DefaultOffset, "Seconds added to every event time")
	exportCmd.Flags().
		Bool("no-offset", false, "Do not shift event times")
	exportCmd.Flags().
		Bool("empty-measure", false, "Prepend one empty measure estimated from the beat grid")
	exportCmd.Flags().
		Int("resolution", beatgrid.DefaultResolution, "Snap subdivisions per beat interval")
	addRomanizerFlags(exportCmd)
}

type exportConfig struct {
	Input   string
	Output  string
	Beatmap string
	Options vocals.Options

	// parallel LLM requests during prefetch
	Concurrency int
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ctx := context.Background()

	beatmapPath, _ := cmd.Flags().GetString("beatmap")
	offset, _ := cmd.Flags().GetFloat64("offset")
	noOffset, _ := cmd.Flags().GetBool("no-offset")
	emptyMeasure, _ := cmd.Flags().GetBool("empty-measure")
	resolution, _ := cmd.Flags().GetInt("resolution")
	romanizeText, _ := cmd.Flags().GetBool("romanize")
	dictionary, _ := cmd.Flags().GetString("dictionary")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("lyric file not found: %s", inputPath)
	}
	if format, ok := lyric.FormatFromExtension(inputPath); !ok || format != lyric.FormatTTML {
		return fmt.Errorf(
			"unsupported lyric format %q: export needs .ttml, .xml, or .json",
			filepath.Ext(inputPath),
		)
	}
	if resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", resolution)
	}
	if noOffset {
		offset = 0
	}
	if outputPath == "" {
		outputPath = defaultVocalsOutput
	}

	segmenter, err := newSegmenter(dictionary)
	if err != nil {
		return err
	}

	rcfg := romanizerConfigFromFlags(cmd)

	var rom *romanize.Adapter
	if romanizeText {
		rom, err = newRomanizer(ctx, rcfg)
		if err != nil {
			return err
		}
	}

	cfg := exportConfig{
		Input:   inputPath,
		Output:  outputPath,
		Beatmap: beatmapPath,
		Options: vocals.Options{
			Offset:       offset,
			EmptyMeasure: emptyMeasure,
			Resolution:   resolution,
			Romanize:     romanizeText,
		},
		Concurrency: rcfg.Concurrency,
	}

	logger.Infow("Starting vocals export",
		"input", cfg.Input,
		"output", cfg.Output,
		"beatmap", cfg.Beatmap,
		"offset", offset,
		"resolution", resolution,
	)

	exporter := &vocals.Exporter{Segmenter: segmenter, Romanizer: rom}
	events, err := exportFile(ctx, exporter, cfg)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(cfg.Output)
	fmt.Printf("Vocals exported successfully: %s\n", absOutput)
	fmt.Printf("  Events: %d\n", events)

	return nil
}

// exportFile writes the vocals arrangement for cfg.Input and returns the
// number of events.
func exportFile(ctx context.Context, e *vocals.Exporter, cfg exportConfig) (int, error) {
	spans, err := lyric.ExtractFile(cfg.Input)
	if err != nil {
		return 0, fmt.Errorf("failed to parse lyric file: %w", err)
	}

	logger.Infow("Parsed lyric file", "spans", len(spans))

	opts := cfg.Options
	opts.Grid = loadGrid(cfg.Beatmap)

	if opts.Romanize && e.Romanizer.HasJapanese() {
		var texts []string
		for _, span := range spans {
			if langdetect.Detect(span.Text) == langdetect.Japanese {
				texts = append(texts, span.Text)
			}
		}
		e.Romanizer.Prefetch(ctx, texts, cfg.Concurrency)
	}

	events := e.Export(ctx, spans, opts)

	if err := vocals.Write(cfg.Output, events); err != nil {
		return 0, err
	}

	return len(events), nil
}

// an unreadable beat map leaves the grid empty, which disables snapping
func loadGrid(path string) beatgrid.Grid {
	if path == "" {
		logger.Infow("No beat map given, event times will not be snapped")
		return nil
	}

	grid, err := beatgrid.ParseFile(path)
	if err != nil {
		logger.Warnw("Failed to read beat map, event times will not be snapped",
			"beatmap", path,
			"error", err,
		)
		return nil
	}

	logger.Infow("Loaded beat grid", "beats", len(grid))
	return grid
}
