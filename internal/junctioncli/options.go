// internal/junctioncli/options.go
package junctioncli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"vpcr/internal/clibase"
	"vpcr/internal/cliutil"
	"vpcr/internal/output"
)

// Formats offered by vpcr-junction.
var Formats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL}

type Options struct {
	clibase.Report

	PairsFile    string
	Exons        string
	ExonsFile    string
	MinTail      int
	OnlyJunction bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageHeader(fs, name, "exon-junction primer annotation", func(out io.Writer, def clibase.Def) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] --pairs pairs.tsv --exons \"1-120,121-300,301-450\"\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --pairs file            Designed pairs TSV (id left right left_start left_len right_start right_len [size]) or '-'")
		fmt.Fprintln(out, "  -e, --exons string          Exon intervals, e.g. \"1-120, 121..300; 301:450\"")
		fmt.Fprintln(out, "      --exons-file file       Read exon intervals from a file")
		fmt.Fprintln(out, "                              Every interval must parse as start-end with 0 < start <= end;")
		fmt.Fprintln(out, "                              a malformed or overlapping interval is an error, not skipped")

		fmt.Fprintln(out, "\nAnnotation:")
		fmt.Fprintf(out, "      --min-tail int          Bases required on each side of a junction [%s]\n", def("min-tail"))
		fmt.Fprintf(out, "      --only-junction         Keep pairs with a primer across a junction [%s]\n", def("only-junction"))

		clibase.PrintReportUsage(out, def, "text | json | jsonl")
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for vpcr-junction.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "vpcr-junction", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "qPCR design check: which primers straddle an exon-exon junction.")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintln(w, "  vpcr-junction --pairs primer3_pairs.tsv --exons \"1-120,121-300,301-450\" --only-junction")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.RegisterReport(fs, &o.Report)

	fs.StringVar(&o.PairsFile, "pairs", "", "designed pairs TSV [required]")
	fs.StringVar(&o.Exons, "exons", "", "exon intervals")
	fs.StringVar(&o.Exons, "e", "", "alias of --exons")
	fs.StringVar(&o.ExonsFile, "exons-file", "", "file with exon intervals")
	fs.IntVar(&o.MinTail, "min-tail", 4, "bases required on each side of a junction [4]")
	fs.BoolVar(&o.OnlyJunction, "only-junction", false, "keep only pairs at a junction [false]")

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

	// A single positional may stand in for --pairs.
	if o.PairsFile == "" && len(posArgs) == 1 {
		o.PairsFile, posArgs = posArgs[0], nil
	}
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", posArgs)
	}
	if err := clibase.FinishReport(&o.Report, noHeader, Formats); err != nil {
		return o, err
	}
	switch {
	case o.PairsFile == "":
		return o, errors.New("--pairs is required")
	case o.Exons != "" && o.ExonsFile != "":
		return o, errors.New("--exons conflicts with --exons-file")
	case o.Exons == "" && o.ExonsFile == "":
		return o, errors.New("provide --exons or --exons-file")
	case o.MinTail < 1:
		return o, errors.New("--min-tail must be ≥ 1")
	}
	return o, nil
}
