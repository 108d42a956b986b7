// Package info implements the command that describes a PDF file
package info

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/pdf-transcript/cmd/common"
	"fjacquet/pdf-transcript/cmd/root"
	"fjacquet/pdf-transcript/internal/logging"
	"fjacquet/pdf-transcript/internal/validation"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	// Input is the value of --input; a positional argument takes precedence.
	Input string
	// Format selects text, json or yaml output.
	Format string

	// Cmd represents the info command
	Cmd = &cobra.Command{
		Use:   "info [file]",
		Short: "Show the PDF version, page count and size of a file",
		Long: `Show basic information about a PDF file: its path, the PDF version from
the file header, the number of pages and the file size in bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: infoFunc,
	}
)

func init() {
	Cmd.Flags().StringVarP(&Input, "input", "i", "", "Input PDF file")
	Cmd.Flags().StringVarP(&Format, "output-format", "f", "text", "Output format (text, json, yaml)")
}

func infoFunc(cmd *cobra.Command, args []string) error {
	input, err := common.ResolveInput(args, Input)
	if err != nil {
		return err
	}

	logger := root.GetLogger()
	logger.Debug("Info command called", logging.Field{Key: logging.FieldFile, Value: input})

	info, err := validation.Inspect(input)
	if err != nil {
		return err
	}

	return writeInfo(cmd.OutOrStdout(), info, Format)
}

func writeInfo(w io.Writer, info *validation.Info, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		_, err := fmt.Fprintf(w, "File:    %s\nVersion: %s\nPages:   %d\nSize:    %d bytes\n",
			info.Path, info.Version, info.Pages, info.Size)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml'", format)
	}
}
