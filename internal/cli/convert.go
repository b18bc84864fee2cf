package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [ttml_file]",
	Short: "Convert word-timed TTML lyrics to LRC",
	Long: `Convert a TTML file (or its JSON envelope) to line-timed LRC.

Each TTML line becomes one LRC line stamped with the start time of its first
word. Transliterated lyrics are used when the file carries them.

Examples:
  lyridan convert lyrics.ttml
  lyridan convert lyrics.json -o song.lrc`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("lyric file not found: %s", inputPath)
	}
	if format, ok := lyric.FormatFromExtension(inputPath); !ok || format != lyric.FormatTTML {
		return fmt.Errorf(
			"unsupported lyric format %q: convert needs .ttml, .xml, or .json",
			filepath.Ext(inputPath),
		)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".lrc"
	}

	logger.Infow("Converting lyrics",
		"input", inputPath,
		"output", outputPath,
	)

	lines, err := convertFile(inputPath, outputPath)
	if err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Lyrics converted successfully: %s\n", absOutput)
	fmt.Printf("  Lines: %d\n", lines)

	return nil
}

func convertFile(inputPath, outputPath string) (int, error) {
	file, err := lyric.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to parse lyric file: %w", err)
	}

	if err := file.Write(outputPath); err != nil {
		return 0, fmt.Errorf("failed to write output file: %w", err)
	}

	return len(file.Lines()), nil
}
