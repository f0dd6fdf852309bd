// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"vpcr-core/engine"
	"vpcr-core/primer"
	"vpcr/internal/appcore"
	"vpcr/internal/cli"
	"vpcr/internal/cmdutil"
	"vpcr/internal/common"
	"vpcr/internal/pipeline"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("vpcr")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if code, done := appcore.Preflight("vpcr", fs, err, opts.Version, cli.PrintExamples, stdout, stderr); done {
		return code
	}

	var pairs []primer.Pair
	if opts.PrimerFile != "" {
		pairs, err = primer.LoadTSV(opts.PrimerFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return appcore.ExitUsage
		}
	} else {
		pairs = []primer.Pair{{ID: "manual", Forward: opts.Fwd, Reverse: opts.Rev}}
	}
	if pairs, err = common.NormalizePairs(pairs); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	if len(pairs) == 0 {
		_, _ = fmt.Fprintln(stderr, "no primer pairs in", opts.PrimerFile)
		return appcore.ExitUsage
	}
	for _, id := range common.DuplicateIDs(pairs) {
		cmdutil.Warnf(stderr, opts.Quiet, "duplicate primer pair id %q", id)
	}

	thr := appcore.Threads(opts.Threads)
	eng := engine.New(engine.Config{
		MaxMM:          opts.Mismatches,
		MaxProductSize: opts.MaxLen,
		HitCap:         opts.HitCap,
		Threads:        thr,
	})
	wf := appcore.NewProductWriterFactory(opts.Output, opts.Header, opts.Products)
	coreOpts := appcore.Options{
		SeqFiles: opts.SeqFiles, Threads: thr, CheckTemplate: opts.CheckTemplate,
		Quiet: opts.Quiet, Verbose: opts.Verbose, NoMatchExitCode: opts.NoMatchExitCode,
	}
	cmdutil.Infof(stderr, opts.Verbose, "%d primer pair(s), ≤%d mismatches, max product %d bp", len(pairs), opts.Mismatches, opts.MaxLen)
	return appcore.Run[engine.Product](parent, stdout, stderr, coreOpts, pipeline.ProductWork(pairs, eng, wf.NeedSeq()), wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
