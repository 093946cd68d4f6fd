package cli

import (
	"github.com/mgpai22/srt2xlsx/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srt2xlsx [srt_file]",
	Short: "Convert SubRip subtitles to an Excel spreadsheet",
	Long: `srt2xlsx reads a SubRip (.srt) subtitle file and writes an Excel
workbook with one row per subtitle cue.

The sheet has four columns: Number, Begin, End and Text. Timestamps are
copied exactly as written. Blocks that do not follow the SRT layout are
skipped unless --strict is given.

Examples:
  srt2xlsx movie.srt
  srt2xlsx movie.srt -o cues.xlsx
  srt2xlsx movie.srt --sheet Subtitles --strict`,
	Args:         cobra.ExactArgs(1),
	RunE:         runConvert,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output spreadsheet path (default: input path with .xlsx extension)")
	rootCmd.PersistentFlags().
		StringP("config", "c", "", "Path to a YAML config file")

	rootCmd.Flags().
		Bool("strict", false, "Fail on the first malformed cue block instead of skipping it")
	rootCmd.Flags().
		String("sheet", "", "Worksheet name (default: Sheet1)")
	rootCmd.Flags().
		Bool("verify", false, "Read the written spreadsheet back and check the row count")
}
