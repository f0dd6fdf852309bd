// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"vpcr/internal/cliutil"
)

// Report holds the output and misc flags every tool shares.
type Report struct {
	Output          string // text|json|jsonl|fasta (tool-dependent)
	Header          bool
	NoMatchExitCode int
	Quiet           bool
	Verbose         bool
	Version         bool
}

// Common holds CLI fields shared by the FASTA-scanning tools (vpcr, vpcr-sites).
type Common struct {
	Report

	// Input
	SeqFiles []string

	// Matching
	Mismatches    int
	CheckTemplate bool

	// Performance
	Threads int
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// RegisterReport wires the output/misc flags onto fs and returns a pointer to
// the "no-header" bool; FinishReport turns it into Report.Header.
func RegisterReport(fs *flag.FlagSet, r *Report) *bool {
	fs.StringVar(&r.Output, "output", "text", "output format [text]")
	fs.StringVar(&r.Output, "o", "text", "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&r.NoMatchExitCode, "no-match-exit-code", 1, "exit code when nothing is found [1]")

	fs.BoolVar(&r.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&r.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&r.Verbose, "verbose", false, "print progress to stderr [false]")
	fs.BoolVar(&r.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&r.Version, "version", false, "print version and exit [false]")
	return &noHeader
}

// Register wires the scanning flags (plus RegisterReport) onto fs.
func Register(fs *flag.FlagSet, c *Common) *bool {
	seqVal := &sliceValue{dst: &c.SeqFiles}
	fs.Var(seqVal, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seqVal, "s", "alias of --sequences")

	fs.IntVar(&c.Mismatches, "mismatches", 2, "max mismatches per primer [2]")
	fs.IntVar(&c.Mismatches, "m", 2, "alias of --mismatches")
	fs.BoolVar(&c.CheckTemplate, "check-template", false, "skip records outside 50..200000 bp or >10% N [false]")

	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	return RegisterReport(fs, &c.Report)
}

// FinishReport finalizes header and validates the report flags against the
// formats the tool supports.
func FinishReport(r *Report, noHeader *bool, formats []string) error {
	r.Header = !*noHeader
	ok := false
	for _, f := range formats {
		if r.Output == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid --output %q (want %s)", r.Output, strings.Join(formats, " | "))
	}
	if r.NoMatchExitCode < 0 || r.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string, formats []string) error {
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.SeqFiles = append(c.SeqFiles, exp...)
	}
	if err := FinishReport(&c.Report, noHeader, formats); err != nil {
		return err
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by the scanning tools.
func Validate(c *Common) error {
	if len(c.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	if c.Mismatches < 0 {
		return errors.New("--mismatches must be ≥ 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	return nil
}
