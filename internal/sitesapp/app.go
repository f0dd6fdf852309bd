// internal/sitesapp/app.go
package sitesapp

import (
	"context"
	"fmt"
	"io"

	"vpcr-core/oligo"
	"vpcr-core/primer"
	"vpcr/internal/appcore"
	"vpcr/internal/cmdutil"
	"vpcr/internal/pipeline"
	"vpcr/internal/siteoutput"
	"vpcr/internal/sitescli"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := sitescli.NewFlagSet("vpcr-sites")
	fs.SetOutput(io.Discard)

	opts, err := sitescli.ParseArgs(fs, argv)
	if code, done := appcore.Preflight("vpcr-sites", fs, err, opts.Version, sitescli.PrintExamples, stdout, stderr); done {
		return code
	}

	probe, err := oligo.Validate(opts.Probe)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "--probe: %v\n", err)
		return appcore.ExitUsage
	}
	// Reverse searches the reverse complement, so the 3' tail is its first bases.
	pattern := []byte(probe)
	if opts.Orientation == primer.Reverse {
		pattern = []byte(oligo.RevComp(probe))
	}

	thr := appcore.Threads(opts.Threads)
	work := func(j pipeline.Job) []siteoutput.Hit {
		sites := primer.FindSitesParallel(j.Rec.Seq, pattern, opts.Mismatches, opts.Orientation, thr)
		if len(sites) == 0 {
			return nil
		}
		out := make([]siteoutput.Hit, len(sites))
		for i, s := range sites {
			out[i] = siteoutput.Hit{
				SourceFile:  j.SourceFile,
				SequenceID:  j.Rec.ID,
				Probe:       probe,
				Orientation: opts.Orientation,
				Site:        s,
			}
		}
		return out
	}

	cmdutil.Infof(stderr, opts.Verbose, "probe %s (%d nt, %s), ≤%d mismatches", probe, len(probe), opts.Orientation, opts.Mismatches)
	return appcore.Run[siteoutput.Hit](parent, stdout, stderr, appcore.Options{
		SeqFiles: opts.SeqFiles, Threads: thr, CheckTemplate: opts.CheckTemplate,
		Quiet: opts.Quiet, Verbose: opts.Verbose, NoMatchExitCode: opts.NoMatchExitCode,
	}, work, appcore.NewSiteWriterFactory(opts.Output, opts.Header))
}
