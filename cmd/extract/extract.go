// Package extract implements the command that writes the page transcript of a PDF
package extract

import (
	"fmt"

	"fjacquet/pdf-transcript/cmd/common"
	"fjacquet/pdf-transcript/cmd/root"
	"fjacquet/pdf-transcript/internal/bootstrap"
	"fjacquet/pdf-transcript/internal/extractor"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/transcript"
	"fjacquet/pdf-transcript/internal/validation"

	"github.com/spf13/cobra"
)

var (
	// Input is the value of --input; a positional argument takes precedence.
	Input string
	// Output is the value of --output; empty or "-" writes to stdout.
	Output string

	// Cmd represents the extract command
	Cmd = &cobra.Command{
		Use:   "extract [file]",
		Short: "Print the text of every page of a PDF",
		Long: `Extract the text of every page of a PDF file, in page order.

The default text format prints one block per page:

  --- Page <n> ---
  <text>

followed by a blank line. The json, yaml and csv formats carry the same pages
as structured records. Layout, tables and images are not reconstructed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: extractFunc,
	}
)

func init() {
	Cmd.Flags().StringVarP(&Input, "input", "i", "", "Input PDF file")
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output file (default stdout, - for stdout)")
	Cmd.Flags().String("engine", "", "Extraction engine (native, pdftotext)")
	Cmd.Flags().String("format", "", "Output format (text, json, yaml, csv)")
	Cmd.Flags().String("normalize", "", "Unicode normalization of page text (none, nfc, nfkc)")
	Cmd.Flags().BoolP("validate", "v", false, "Validate the PDF structure before extraction")
}

func extractFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	cfg := appContainer.GetConfig()

	input, err := common.ResolveInput(args, Input)
	if err != nil {
		return err
	}

	engineType, err := extractor.ParseEngineType(cfg.Extract.Engine)
	if err != nil {
		return err
	}
	format, err := transcript.ParseFormat(cfg.Extract.Format)
	if err != nil {
		return err
	}
	mode, err := validation.ParseMode(cfg.Validation.Mode)
	if err != nil {
		return err
	}

	t, err := appContainer.NewTranscriber(engineType)
	if err != nil {
		return err
	}

	logger := appContainer.GetLogger().WithFields(
		logging.Field{Key: logging.FieldFile, Value: input},
		logging.Field{Key: logging.FieldEngine, Value: engineType},
		logging.Field{Key: logging.FieldFormat, Value: format},
	)
	logger.Debug("Extract command called", logging.Field{Key: logging.FieldOutputFile, Value: Output})

	n, err := common.ProcessFile(t, common.ProcessOptions{
		Input:        input,
		Output:       Output,
		Format:       format,
		Validate:     cfg.Extract.Validate,
		Mode:         mode,
		CSVDelimiter: []rune(cfg.CSV.Delimiter)[0],
	}, cmd.OutOrStdout(), logger)
	if err != nil {
		if shown, werr := bootstrap.Notice(cmd.OutOrStdout(), err); shown && werr != nil {
			logger.WithError(werr).Warn("Failed to print installation notice")
		}
		return err
	}

	logger.Info("Transcript written", logging.Field{Key: logging.FieldPageCount, Value: n})
	return nil
}
