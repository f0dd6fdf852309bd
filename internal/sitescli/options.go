package sitescli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"vpcr-core/primer"
	"vpcr/internal/clibase"
	"vpcr/internal/cliutil"
	"vpcr/internal/output"
)

// Formats offered by vpcr-sites.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL}

type Options struct {
	clibase.Common

	Probe       string
	Orientation primer.Orientation
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "text | json | jsonl", func(out io.Writer, def clibase.Def) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --probe SEQ ref.fa\n", name)

		fmt.Fprintln(out, "\nProbe:")
		fmt.Fprintln(out, "  -P, --probe string          Oligo sequence (5'→3') [required]")
		fmt.Fprintf(out, "      --orientation string    forward | reverse (reverse searches the reverse complement) [%s]\n", def("orientation"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vpcr-sites.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vpcr-sites", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Binding sites: every window within the mismatch budget.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vpcr-sites --probe GGTTACCTTGTTACGACTT --orientation reverse -m 1 genome.fna")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool
	var orient string

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.Probe, "probe", "", "oligo (5'→3') [required]")
	fs.StringVar(&o.Probe, "P", "", "alias of --probe")
	fs.StringVar(&orient, "orientation", "forward", "forward | reverse [forward]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(&o.Common, noHeader, posArgs, Formats); err != nil {
		return o, err
	}
	if o.Probe == "" {
		return o, errors.New("--probe is required")
	}
	ori, err := primer.ParseOrientation(orient)
	if err != nil {
		return o, err
	}
	o.Orientation = ori
	return o, nil
}
