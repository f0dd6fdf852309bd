// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"vpcr-core/fasta"
	"vpcr-core/oligo"
	"vpcr/internal/cmdutil"
	"vpcr/internal/pipeline"
	"vpcr/internal/writers"
)

// Exit codes shared by every tool.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// Options are the run-level settings shared by the FASTA-scanning tools.
type Options struct {
	SeqFiles []string
	Threads  int

	// CheckTemplate skips records outside oligo.DefaultTemplateLimits.
	CheckTemplate bool

	Quiet           bool
	Verbose         bool
	NoMatchExitCode int
}

// WriterFactory starts the output goroutine for one result kind.
type WriterFactory[T any] interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Threads resolves the --threads value (0 = all CPUs).
func Threads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// Run scans o.SeqFiles with work and writes every result through wf.
// It returns the process exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	work func(pipeline.Job) []T,
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	thr := Threads(o.Threads)

	cfg := pipeline.Config{Threads: thr, NeedSeq: wf.NeedSeq()}
	records, skipped := 0, 0
	cfg.Accept = func(file string, rec fasta.Record) bool {
		if o.CheckTemplate {
			if err := oligo.CheckTemplate(rec.Seq, oligo.DefaultTemplateLimits); err != nil {
				cmdutil.Warnf(stderr, o.Quiet, "skipping %s:%s: %v", file, rec.ID, err)
				skipped++
				return false
			}
		}
		records++
		return true
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cmdutil.Infof(stderr, o.Verbose, "scanning %d input(s) with %d worker(s)", len(o.SeqFiles), thr)
	total, perr := cmdutil.RunStream(
		ctx,
		cfg,
		o.SeqFiles,
		work,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)
	cmdutil.Infof(stderr, o.Verbose, "%d record(s) scanned, %d skipped, %d result(s)", records, skipped, total)

	return finish(outw, stderr, <-writeErr, perr, total, o.NoMatchExitCode)
}

// Emit writes an in-memory result list through wf; used by tools that do not
// scan FASTA input.
func Emit[T any](stdout, stderr io.Writer, items []T, wf WriterFactory[T], noMatchExitCode int) int {
	outw := bufio.NewWriter(stdout)
	inCh, writeErr := wf.Start(outw, len(items)+1)
	for _, it := range items {
		inCh <- it
	}
	close(inCh)
	return finish(outw, stderr, <-writeErr, nil, len(items), noMatchExitCode)
}

func finish(outw *bufio.Writer, stderr io.Writer, werr, perr error, total, noMatch int) int {
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		fmt.Fprintln(stderr, perr)
		return ExitIO
	}
	if total == 0 {
		return noMatch
	}
	return ExitOK
}
