// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs after --examples printed its
// text; the app exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples writes "<name> examples:", the tool's body, and a pointer to --help.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s examples:\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintf(out, "\nSee '%s --help' for every flag.\n", name)
}
