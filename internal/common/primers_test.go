package common

import (
	"errors"
	"testing"

	"vpcr-core/oligo"
	"vpcr-core/primer"
)

func TestNormalizePairs(t *testing.T) {
	in := []primer.Pair{{ID: "p1", Forward: " acgt nn ", Reverse: "1 ttgc", MaxProduct: 300}}
	got, err := NormalizePairs(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got[0].Forward != "ACGTNN" || got[0].Reverse != "TTGC" || got[0].MaxProduct != 300 {
		t.Fatalf("got %+v", got[0])
	}
	if in[0].Forward != " acgt nn " {
		t.Fatal("input must not be modified")
	}
}

func TestNormalizePairs_Errors(t *testing.T) {
	_, err := NormalizePairs([]primer.Pair{{ID: "bad", Forward: "ACGX", Reverse: "ACGT"}})
	if !errors.Is(err, oligo.ErrInvalidBase) {
		t.Fatalf("want ErrInvalidBase, got %v", err)
	}
	_, err = NormalizePairs([]primer.Pair{{ID: "empty", Forward: "ACGT", Reverse: "  "}})
	if !errors.Is(err, oligo.ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
}

func TestDuplicateIDs(t *testing.T) {
	got := DuplicateIDs([]primer.Pair{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "a"}, {ID: "b"}})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}
