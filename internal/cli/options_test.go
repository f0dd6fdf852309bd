// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"vpcr/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestPrimersFileOK(t *testing.T) {
	o := mustParse(t,
		"--primers", "p.tsv",
		"--sequences", "ref.fa",
	)
	if o.PrimerFile != "p.tsv" || o.Fwd != "" {
		t.Errorf("want primers file only, got %+v", o)
	}
}

func TestInlinePrimersOK(t *testing.T) {
	o := mustParse(t,
		"--forward", "AAA",
		"--reverse", "TTT",
		"--sequences", "ref.fa", "extra.fa",
	)
	if o.Fwd != "AAA" || len(o.SeqFiles) != 2 {
		t.Errorf("bad inline parse %+v", o)
	}
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-f", "AAA", "-r", "TTT", "ref.fa")
	if o.Mismatches != 2 || o.MaxLen != 5000 || o.HitCap != 10000 || o.Threads != 0 ||
		o.Output != "text" || !o.Header || o.Products || o.CheckTemplate {
		t.Fatalf("defaults changed: %+v", o)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "ref.fa", "-f", "AAA", "-r", "TTT", "-o", "fasta", "-l", "300", "--products")
	if o.Output != "fasta" || o.MaxLen != 300 || !o.Products || o.SeqFiles[0] != "ref.fa" {
		t.Fatalf("got %+v", o)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"missing reverse":  {"--forward", "AAA", "--sequences", "ref.fa"},
		"mutual exclusion": {"--primers", "p.tsv", "--forward", "AAA", "--reverse", "TTT", "ref.fa"},
		"no primer input":  {"--sequences", "ref.fa"},
		"no sequences":     {"--forward", "AAA", "--reverse", "TTT"},
		"zero max length":  {"-f", "AAA", "-r", "TTT", "--max-length", "0", "ref.fa"},
		"negative hit cap": {"-f", "AAA", "-r", "TTT", "--hit-cap", "-1", "ref.fa"},
		"bad output":       {"-f", "AAA", "-r", "TTT", "-o", "xml", "ref.fa"},
	}
	for name, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("want ErrPrintedAndExitOK, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}
