package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"game-manager/pkg/gmclient"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func printExecution(w io.Writer, exec *gmclient.Execution) {
	okColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, "%s task %s executed", exec.Kind, exec.TaskID)
	dimColor.Fprintf(w, " (run %s)\n", exec.RunID)
	dimColor.Fprintf(w, "  %s\n", exec.Detail)
}

func printFailure(w io.Writer, label string, err error) {
	failColor.Fprint(w, "✗ ")
	fmt.Fprintf(w, "%s: %v\n", label, err)
}
