package cli

import (
	"github.com/Elevatorisbest/Lyridan/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lyridan",
	Short: "Syllabify timed lyrics and export Rocksmith vocals",
	Long: `Lyridan is a CLI tool that splits timed lyrics into syllables.

It reads LRC and word-timed TTML lyrics, splits English, Japanese and
Russian words into syllables, optionally romanizes Japanese and Russian
text, and exports Rocksmith vocal arrangements snapped to a beat grid.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose).With("run_id", uuid.NewString())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
