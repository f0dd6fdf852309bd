package junctioncli

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestParseOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--pairs", "p.tsv", "-e", "1-10,11-20", "--only-junction", "-o", "jsonl"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.PairsFile != "p.tsv" || o.Exons != "1-10,11-20" || !o.OnlyJunction || o.MinTail != 4 || o.Output != "jsonl" || !o.Header {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestPositionalPairs(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"p.tsv", "--exons-file", "ex.txt", "--min-tail", "6"})
	if err != nil || o.PairsFile != "p.tsv" || o.ExonsFile != "ex.txt" || o.MinTail != 6 {
		t.Fatalf("err=%v o=%+v", err, o)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-e", "1-10"},
		{"p.tsv"},
		{"p.tsv", "-e", "1-10", "--exons-file", "x"},
		{"p.tsv", "-e", "1-10", "--min-tail", "0"},
		{"p.tsv", "-e", "1-10", "-o", "fasta"},
		{"p.tsv", "extra.tsv", "-e", "1-10"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestUsageStatesStrictExons(t *testing.T) {
	fs := NewFlagSet("vpcr-junction")
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()
	if !strings.Contains(buf.String(), "is an error, not skipped") {
		t.Fatalf("usage does not describe exon parsing:\n%s", buf.String())
	}
}
