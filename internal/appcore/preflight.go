package appcore

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"vpcr/internal/clibase"
	"vpcr/internal/version"
	"vpcr/internal/writers"
)

// Preflight handles the outcomes of ParseArgs that end the run before any
// work: --help, --examples, --version and usage errors. done is false when
// the caller should continue.
func Preflight(
	name string,
	fs *flag.FlagSet,
	parseErr error,
	showVersion bool,
	examples func(io.Writer),
	stdout, stderr io.Writer,
) (code int, done bool) {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) (int, bool) {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return ExitOK, true
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitIO, true
		}
		return code, true
	}

	switch {
	case errors.Is(parseErr, clibase.ErrPrintedAndExitOK):
		examples(outw)
		return flush(ExitOK)
	case errors.Is(parseErr, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(ExitOK)
	case parseErr != nil:
		_, _ = fmt.Fprintln(stderr, parseErr)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(ExitUsage)
	case showVersion:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(ExitOK)
	}
	return 0, false
}
