// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"vpcr/internal/clibase"
	"vpcr/internal/cliutil"
	"vpcr/internal/output"
)

// Formats offered by vpcr.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL, output.FormatFASTA}

// Options holds all vpcr flags and arguments.
type Options struct {
	clibase.Common

	// Primer input
	PrimerFile string
	Fwd        string
	Rev        string

	// PCR
	MaxLen int
	HitCap int

	// Output
	Products bool
}

// NewFlagSet returns a FlagSet with the vpcr help text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "text | json | jsonl | fasta", func(out io.Writer, def clibase.Def) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --forward FWD --reverse REV ref.fa [more.fa ...]\n", name)
		fmt.Fprintf(out, "  %s [options] --primers pairs.tsv ref.fa.gz\n", name)

		fmt.Fprintln(out, "\nPrimers:")
		fmt.Fprintln(out, "  -f, --forward string        Forward primer sequence (5'→3') [*]")
		fmt.Fprintln(out, "  -r, --reverse string        Reverse primer sequence (5'→3') [*]")
		fmt.Fprintln(out, "  -p, --primers string        Primer TSV (id fwd rev [max_len])")

		fmt.Fprintln(out, "\nPCR:")
		fmt.Fprintf(out, "  -l, --max-length int        Maximum product length [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --hit-cap int           Max sites kept per primer (0=unlimited) [%s]\n", def("hit-cap"))
		fmt.Fprintf(out, "      --products              Attach amplicon sequences [%s]\n", def("products"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vpcr.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vpcr", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Virtual PCR: amplicons of one primer pair, up to 2 mismatches per primer.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vpcr \\")
		_, _ = fmt.Fprintln(w, "    -f AGAGTTTGATCCTGGCTCAG \\")
		_, _ = fmt.Fprintln(w, "    -r GGTTACCTTGTTACGACTT \\")
		_, _ = fmt.Fprintln(w, "    --max-length 2000 --products --output json \\")
		_, _ = fmt.Fprintln(w, "    genome.fna.gz")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.StringVar(&o.PrimerFile, "primers", "", "TSV primer file")
	fs.StringVar(&o.Fwd, "forward", "", "forward primer (5'→3')")
	fs.StringVar(&o.Rev, "reverse", "", "reverse primer (5'→3')")
	fs.StringVar(&o.PrimerFile, "p", "", "alias of --primers")
	fs.StringVar(&o.Fwd, "f", "", "alias of --forward")
	fs.StringVar(&o.Rev, "r", "", "alias of --reverse")

	fs.IntVar(&o.MaxLen, "max-length", 5000, "maximum product length [5000]")
	fs.IntVar(&o.MaxLen, "l", 5000, "alias of --max-length")
	fs.IntVar(&o.HitCap, "hit-cap", 10000, "max sites kept per primer (0=unlimited) [10000]")
	fs.BoolVar(&o.Products, "products", false, "attach amplicon sequences [false]")

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
	return o, validate(o)
}

func validate(o Options) error {
	usingFile := o.PrimerFile != ""
	usingInline := o.Fwd != "" || o.Rev != ""
	switch {
	case usingFile && usingInline:
		return errors.New("--primers conflicts with --forward/--reverse")
	case usingInline && (o.Fwd == "" || o.Rev == ""):
		return errors.New("--forward and --reverse must be supplied together")
	case !usingFile && !usingInline:
		return errors.New("provide --primers or --forward/--reverse")
	}
	if o.MaxLen <= 0 {
		return errors.New("--max-length must be > 0")
	}
	if o.HitCap < 0 {
		return errors.New("--hit-cap must be ≥ 0")
	}
	return nil
}
