package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srt2xlsx/internal/config"
	"github.com/mgpai22/srt2xlsx/internal/logging"
	"github.com/mgpai22/srt2xlsx/internal/sheet"
	"github.com/mgpai22/srt2xlsx/internal/subtitle"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	input  string
	output string
	verify bool
	cfg    *config.Config
}

func runConvert(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	outputPath, _ := cmd.Flags().GetString("output")
	verify, _ := cmd.Flags().GetBool("verify")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("sheet") {
		cfg.Sheet, _ = cmd.Flags().GetString("sheet")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(args[0])
	}

	opts := convertOptions{
		input:  args[0],
		output: outputPath,
		verify: verify,
		cfg:    cfg,
	}
	return convert(cmd.OutOrStdout(), logger, opts)
}

func convert(out io.Writer, log *logging.Logger, opts convertOptions) error {
	if log == nil {
		log = logging.Nop()
	}

	log.Infow("Starting conversion",
		"input", opts.input,
		"output", opts.output,
		"sheet", opts.cfg.Sheet,
		"strict", opts.cfg.Strict,
	)

	doc, err := subtitle.Open(opts.input, subtitle.ParseOptions{
		Strict: opts.cfg.Strict,
	})
	if err != nil {
		return err
	}

	log.Infow("Parsed subtitle file",
		"cues", len(doc.Cues),
	)
	if doc.Skipped > 0 {
		log.Warnw("Skipped malformed cue blocks",
			"count", doc.Skipped,
		)
	}

	writer := sheet.NewWriter(sheet.Options{
		Sheet:  opts.cfg.Sheet,
		Atomic: opts.cfg.AtomicWrite,
	})
	if err := writer.Write(doc.Cues, opts.output); err != nil {
		return err
	}

	if opts.verify {
		rows, err := sheet.ReadRows(opts.output, opts.cfg.Sheet)
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		if len(rows) != len(doc.Cues)+1 {
			return fmt.Errorf(
				"verification failed: expected %d rows, found %d",
				len(doc.Cues)+1,
				len(rows),
			)
		}
		log.Infow("Verified spreadsheet", "rows", len(rows))
	}

	absOutput, err := filepath.Abs(opts.output)
	if err != nil {
		absOutput = opts.output
	}
	fmt.Fprintf(out, "Conversion complete! Excel file saved to %s\n", absOutput)
	fmt.Fprintf(out, "  Cues: %d\n", len(doc.Cues))

	return nil
}

// input path with its extension swapped for .xlsx
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".xlsx"
}
