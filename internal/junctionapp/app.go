// internal/junctionapp/app.go
package junctionapp

import (
	"context"
	"fmt"
	"io"
	"os"

	"vpcr-core/junction"
	"vpcr/internal/appcore"
	"vpcr/internal/cmdutil"
	"vpcr/internal/junctioncli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext annotates designed primer pairs against an exon layout. The work
// is in-memory and short, so ctx is only checked once before writing.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := junctioncli.NewFlagSet("vpcr-junction")
	fs.SetOutput(io.Discard)

	opts, err := junctioncli.ParseArgs(fs, argv)
	if code, done := appcore.Preflight("vpcr-junction", fs, err, opts.Version, junctioncli.PrintExamples, stdout, stderr); done {
		return code
	}

	pairs, err := loadPairs(opts.PairsFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	exons, err := loadExons(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	if len(exons) < 2 {
		cmdutil.Warnf(stderr, opts.Quiet, "%d exon(s) given: no junctions to span", len(exons))
	}

	anns := junction.Annotate(pairs, exons, opts.MinTail)
	if opts.OnlyJunction {
		anns = junction.FilterAtJunction(anns)
	}
	cmdutil.Infof(stderr, opts.Verbose, "%d pair(s), %d junction(s), %d reported", len(pairs), len(junction.Junctions(exons)), len(anns))

	if ctx.Err() != nil {
		return appcore.ExitCancelled
	}
	return appcore.Emit(stdout, stderr, anns, appcore.NewJunctionWriterFactory(opts.Output, opts.Header), opts.NoMatchExitCode)
}

func loadPairs(path string) ([]junction.DesignedPair, error) {
	if path == "-" {
		return junction.ReadPairsTSV(os.Stdin, "stdin")
	}
	return junction.LoadPairsTSV(path)
}

func loadExons(o junctioncli.Options) ([]junction.Exon, error) {
	text := o.Exons
	if o.ExonsFile != "" {
		b, err := os.ReadFile(o.ExonsFile)
		if err != nil {
			return nil, err
		}
		text = string(b)
	}
	exons, err := junction.ParseExons(text)
	if err != nil {
		return nil, err
	}
	if err := junction.ValidateExons(exons); err != nil {
		return nil, err
	}
	return exons, nil
}
