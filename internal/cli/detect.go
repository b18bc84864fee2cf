package cli

import (
	"fmt"
	"os"

	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
	"github.com/Elevatorisbest/Lyridan/internal/lyric"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text_or_file]",
	Short: "Print the language detected for a text or lyric file",
	Long: `Print the script family (japanese, russian, mixed, or other) of the given
text. When the argument names an existing lyric file, the first lines of
that file are sampled instead.

Examples:
  lyridan detect "привет"
  lyridan detect song.lrc --sample 20`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().
		Int("sample", 10, "Number of lines sampled from a file (0 for all)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	sample, _ := cmd.Flags().GetInt("sample")

	lang, err := detect(args[0], sample)
	if err != nil {
		return err
	}

	fmt.Println(lang)
	return nil
}

func detect(arg string, sample int) (langdetect.Language, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return langdetect.Detect(arg), nil
	}

	file, err := lyric.Open(arg)
	if err != nil {
		return langdetect.Other, fmt.Errorf("failed to parse lyric file: %w", err)
	}

	lines := file.Lines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}

	if sample <= 0 {
		sample = len(texts)
	}

	logger.Debugw("Sampling lyric file", "path", arg, "lines", min(sample, len(texts)))

	return langdetect.DetectSample(texts, sample), nil
}
