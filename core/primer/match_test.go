// core/primer/match_test.go
package primer

import (
	"bytes"
	"reflect"
	"testing"
)

func starts(ss []Site) []int {
	out := make([]int, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Start)
	}
	return out
}

func TestFindSites(t *testing.T) {
	seq := []byte("ACGTACGTACGT")

	tests := []struct {
		name       string
		probe      string
		maxMM      int
		wantStarts []int
	}{
		{"perfect match", "ACG", 0, []int{1, 5, 9}},
		{"one mismatch allowed", "AGG", 1, []int{1, 5, 9}},
		{"exceed mismatch threshold", "AGG", 0, []int{}},
		{"ambiguity compared literally", "ACN", 0, []int{}},
		{"ambiguity counts as mismatch", "ACN", 1, []int{1, 5, 9}},
		{"probe longer than template", "ACGTACGTACGTA", 3, []int{}},
		{"negative budget never matches", "ACG", -1, []int{}},
		{"empty probe", "", 0, []int{}},
	}

	for _, tc := range tests {
		got := starts(FindSites(seq, []byte(tc.probe), tc.maxMM, Forward))
		if !reflect.DeepEqual(got, tc.wantStarts) {
			t.Errorf("%s: starts %v, want %v", tc.name, got, tc.wantStarts)
		}
	}
}

func TestFindSites_ExactMatchesOracle(t *testing.T) {
	templates := []string{
		"AAAAACCCCCAAAAACCCCC",
		"AAAAAAAA",
		"ACGTNNACGTRYACGT",
		"GATTACAGATTACA",
	}
	probes := []string{"A", "AA", "ACGT", "AAAAACCCCC", "GATTACA", "NN", "RY", "TTT"}

	for _, tpl := range templates {
		for _, pr := range probes {
			var want []int
			for i := 0; i+len(pr) <= len(tpl); i++ {
				if tpl[i:i+len(pr)] == pr {
					want = append(want, i+1)
				}
			}
			got := FindSites([]byte(tpl), []byte(pr), 0, Forward)
			if len(got) != len(want) {
				t.Fatalf("FindSites(%q,%q): %d sites, want %d", tpl, pr, len(got), len(want))
			}
			for i, s := range got {
				if s.Start != want[i] || s.End != want[i]+len(pr)-1 || s.Mismatches != 0 || s.Seq != pr {
					t.Fatalf("FindSites(%q,%q)[%d] = %+v, want start %d", tpl, pr, i, s, want[i])
				}
			}
		}
	}
}

func TestFindSites_SiteFields(t *testing.T) {
	tpl := []byte("AAAAACCCCCAAAAACCCCC")
	got := FindSites(tpl, []byte("AAAAACCCCC"), 0, Forward)
	want := []Site{
		{Start: 1, End: 10, Seq: "AAAAACCCCC"},
		{Start: 11, End: 20, Seq: "AAAAACCCCC"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
	for _, s := range got {
		if n := s.End - s.Start + 1; n != 10 || len(s.Seq) != n {
			t.Fatalf("site length %d, want 10", n)
		}
	}
}

func TestFindSites_ThreePrimeTailAsymmetry(t *testing.T) {
	tpl := []byte("ACGTACGTAC")
	probe := []byte("TCGTACGTAC") // mismatch only at position 0

	fwd := FindSites(tpl, probe, 1, Forward)
	rev := FindSites(tpl, probe, 1, Reverse)
	if len(fwd) != 1 || len(rev) != 1 {
		t.Fatalf("want one site per orientation, got fwd=%d rev=%d", len(fwd), len(rev))
	}
	if fwd[0].Mismatches != 1 || fwd[0].ThreePrimeMismatches != 0 {
		t.Errorf("forward: %+v, want mm=1 3'mm=0", fwd[0])
	}
	if rev[0].Mismatches != 1 || rev[0].ThreePrimeMismatches != 1 {
		t.Errorf("reverse: %+v, want mm=1 3'mm=1", rev[0])
	}

	// Mirror image: last base mismatched.
	probe = []byte("ACGTACGTAA")
	fwd = FindSites(tpl, probe, 1, Forward)
	rev = FindSites(tpl, probe, 1, Reverse)
	if fwd[0].ThreePrimeMismatches != 1 || rev[0].ThreePrimeMismatches != 0 {
		t.Errorf("mirror: fwd 3'mm=%d rev 3'mm=%d, want 1 and 0",
			fwd[0].ThreePrimeMismatches, rev[0].ThreePrimeMismatches)
	}
}

func TestFindSites_ShortProbeTailCoversWholeProbe(t *testing.T) {
	got := FindSites([]byte("ACG"), []byte("TCA"), 3, Forward)
	if len(got) != 1 || got[0].Mismatches != 2 || got[0].ThreePrimeMismatches != 2 {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestFindSites_Deterministic(t *testing.T) {
	tpl := bytes.Repeat([]byte("ACGTTGCAAC"), 50)
	a := FindSites(tpl, []byte("ACGTAGCA"), 2, Reverse)
	b := FindSites(tpl, []byte("ACGTAGCA"), 2, Reverse)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("repeated calls differ")
	}
	for i := 1; i < len(a); i++ {
		if a[i-1].Start >= a[i].Start {
			t.Fatalf("sites not ascending at %d: %d then %d", i, a[i-1].Start, a[i].Start)
		}
	}
}

func TestMismatchCount(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"ACGT", "ACGT", 0},
		{"ACGT", "NNNN", 4},
		{"ACGT", "TTTT", 3},
	}
	for _, tc := range tests {
		if got := mismatchCount([]byte(tc.a), []byte(tc.b)); got != tc.want {
			t.Errorf("mismatchCount(%q,%q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on unequal lengths")
		}
	}()
	mismatchCount([]byte("AAA"), []byte("AA"))
}
