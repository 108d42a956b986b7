// Package bootstrap reports a missing extraction capability to the user.
//
// Nothing is installed at runtime: the native engine is compiled in, and
// external tools are left to the system package manager. The notice tells
// the user what to install and to run the command again.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/pdf-transcript/internal/pdferror"
)

// ExitCode is the process status used when a capability is unavailable.
const ExitCode = 3

// RerunMessage ends every installation notice.
const RerunMessage = "Please run the command again after installation."

// InstallHint describes how to install an external tool on one platform.
type InstallHint struct {
	Platform string
	Command  string
}

// knownTools maps executable names to their installation hints.
var knownTools = map[string][]InstallHint{
	"pdftotext": {
		{Platform: "Debian/Ubuntu", Command: "sudo apt-get install poppler-utils"},
		{Platform: "Fedora/RHEL", Command: "sudo dnf install poppler-utils"},
		{Platform: "macOS", Command: "brew install poppler"},
		{Platform: "Windows", Command: "choco install poppler"},
	},
}

// Hints returns the installation hints for tool. The lookup uses the base
// name, so a configured path such as /opt/bin/pdftotext is recognised.
func Hints(tool string) []InstallHint {
	return knownTools[filepath.Base(tool)]
}

// Notice writes the installation notice for err to w. It returns false,
// writing nothing, when err does not wrap a *pdferror.CapabilityError.
func Notice(w io.Writer, err error) (bool, error) {
	var capErr *pdferror.CapabilityError
	if !errors.As(err, &capErr) {
		return false, nil
	}

	if _, werr := fmt.Fprintf(w, "%s is not installed; the %s engine cannot run.\n", capErr.Tool, capErr.Engine); werr != nil {
		return true, werr
	}

	hints := Hints(capErr.Tool)
	if len(hints) == 0 {
		if _, werr := fmt.Fprintf(w, "Install %s with your system package manager or choose another engine with --engine native.\n", capErr.Tool); werr != nil {
			return true, werr
		}
	} else {
		if _, werr := fmt.Fprintln(w, "Install it with one of:"); werr != nil {
			return true, werr
		}
		for _, h := range hints {
			if _, werr := fmt.Fprintf(w, "  %-14s %s\n", h.Platform+":", h.Command); werr != nil {
				return true, werr
			}
		}
		if _, werr := fmt.Fprintln(w, "or choose another engine with --engine native."); werr != nil {
			return true, werr
		}
	}

	_, werr := fmt.Fprintln(w, RerunMessage)
	return true, werr
}
