package sitescli

import (
	"flag"
	"testing"

	"vpcr-core/primer"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func TestProbeFlagsOK(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"-P", "ACGT", "--orientation", "rev", "-m", "1", "ref.fa"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Probe != "ACGT" || o.Orientation != primer.Reverse || o.Mismatches != 1 || o.SeqFiles[0] != "ref.fa" {
		t.Fatalf("bad parse: %+v", o)
	}
}

func TestDefaultOrientationForward(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--probe", "ACGT", "ref.fa"})
	if err != nil || o.Orientation != primer.Forward {
		t.Fatalf("err=%v o=%+v", err, o)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{"ref.fa"},
		{"--probe", "ACGT", "--orientation", "sideways", "ref.fa"},
		{"--probe", "ACGT", "-o", "fasta", "ref.fa"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
