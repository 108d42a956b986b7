package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fjacquet/pdf-transcript/cmd/check"
	"fjacquet/pdf-transcript/cmd/extract"
	"fjacquet/pdf-transcript/cmd/info"
	"fjacquet/pdf-transcript/cmd/root"
	"fjacquet/pdf-transcript/internal/bootstrap"
	"fjacquet/pdf-transcript/internal/pdferror"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(info.Cmd)
	root.Cmd.AddCommand(check.Cmd)
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pdferror.ErrCapabilityUnavailable):
		return bootstrap.ExitCode
	default:
		return 1
	}
}

func execute(args []string, stdout, stderr io.Writer) int {
	root.Cmd.SetArgs(args)
	root.Cmd.SetOut(stdout)
	root.Cmd.SetErr(stderr)

	err := root.Cmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
