// Package check implements the command that reports which extraction engines can run
package check

import (
	"fmt"

	"fjacquet/pdf-transcript/cmd/root"
	"fjacquet/pdf-transcript/internal/bootstrap"
	"fjacquet/pdf-transcript/internal/extractor"
	"fjacquet/pdf-transcript/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "List the extraction engines and whether they can run",
	Long: `List the extraction engines and whether each one can run on this system.

When the configured engine is unavailable, an installation notice is printed
and the command exits with status 3.`,
	Args: cobra.NoArgs,
	RunE: checkFunc,
}

// toolEngine is implemented by engines that run an external executable.
type toolEngine interface {
	Binary() string
}

func checkFunc(cmd *cobra.Command, args []string) error {
	appContainer := root.GetContainer()
	if appContainer == nil {
		return fmt.Errorf("container not initialized")
	}
	logger := appContainer.GetLogger()
	out := cmd.OutOrStdout()

	configured, err := extractor.ParseEngineType(appContainer.GetConfig().Extract.Engine)
	if err != nil {
		return err
	}

	var configuredErr error
	for _, et := range extractor.EngineTypes() {
		engine, err := appContainer.GetEngine(et)
		if err != nil {
			return err
		}

		status := "available"
		if aerr := engine.Available(); aerr != nil {
			status = "unavailable (" + aerr.Error() + ")"
			if et == configured {
				configuredErr = aerr
			}
		}

		if te, ok := engine.(toolEngine); ok {
			status += ", tool: " + te.Binary()
		}

		marker := " "
		if et == configured {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %-10s %s\n", marker, et, status); err != nil {
			return err
		}
		logger.Debug("Checked engine",
			logging.Field{Key: logging.FieldEngine, Value: et},
			logging.Field{Key: "status", Value: status})
	}

	if configuredErr != nil {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if _, err := bootstrap.Notice(out, configuredErr); err != nil {
			return err
		}
		return configuredErr
	}
	return nil
}
