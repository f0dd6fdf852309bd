// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCancelled is returned when SIGINT/SIGTERM stopped a run.
const ExitCancelled = 130

// RunFunc is the signature shared by every tool's RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main wires signals and process exit around run.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	os.Exit(Exec(ctx, stop, os.Args[1:], run))
}

// Exec runs one invocation; no arguments means help.
func Exec(ctx context.Context, stop context.CancelFunc, argv []string, run RunFunc) int {
	defer stop()
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = ExitCancelled
	}
	return code
}
