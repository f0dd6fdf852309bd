package junction

import "testing"

func TestSpans_Boundary(t *testing.T) {
	const j, minTail = 100, 4
	tests := []struct {
		name          string
		start, length int
		want          bool
	}{
		{"both tails exactly minTail", 96, 8, true},
		{"left tail minTail-1", 97, 7, false},
		{"right tail minTail-1", 96, 7, false},
		{"junction at span start", 100, 20, false},
		{"junction at span end", 80, 20, false},
		{"span before junction", 50, 20, false},
		{"generous tails", 90, 20, true},
	}
	for _, tc := range tests {
		if got := Spans(tc.start, tc.length, j, minTail); got != tc.want {
			t.Errorf("%s: Spans(%d,%d,%d,%d) = %v, want %v", tc.name, tc.start, tc.length, j, minTail, got, tc.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	exons := []Exon{{1, 100}, {101, 250}, {251, 400}}
	pairs := []DesignedPair{
		{ID: "inside", LeftStart: 10, LeftLength: 20, RightStart: 240, RightLength: 20},
		{ID: "fwd", LeftStart: 90, LeftLength: 20, RightStart: 240, RightLength: 20},
		{ID: "rev", LeftStart: 10, LeftLength: 20, RightStart: 260, RightLength: 20},
		{ID: "both", LeftStart: 92, LeftLength: 18, RightStart: 110, RightLength: 20},
		{ID: "short-tail", LeftStart: 98, LeftLength: 20, RightStart: 240, RightLength: 20},
	}
	got := Annotate(pairs, exons, 4)
	want := map[string][2]bool{
		"inside":     {false, false},
		"fwd":        {true, false},
		"rev":        {false, true},
		"both":       {true, true},
		"short-tail": {false, false},
	}
	if len(got) != len(pairs) {
		t.Fatalf("got %d annotations, want %d", len(got), len(pairs))
	}
	for i, a := range got {
		if a.ID != pairs[i].ID || a.DesignedPair != pairs[i] {
			t.Fatalf("annotation %d does not carry its pair: %+v", i, a)
		}
		w := want[a.ID]
		if a.FwdSpansJunction != w[0] || a.RevSpansJunction != w[1] {
			t.Errorf("%s: fwd=%v rev=%v, want %v", a.ID, a.FwdSpansJunction, a.RevSpansJunction, w)
		}
	}

	kept := FilterAtJunction(got)
	if len(kept) != 3 || kept[0].ID != "fwd" || kept[1].ID != "rev" || kept[2].ID != "both" {
		t.Fatalf("FilterAtJunction: %+v", kept)
	}
}

func TestAnnotate_SingleExonNeverSpans(t *testing.T) {
	pairs := []DesignedPair{{ID: "x", LeftStart: 90, LeftLength: 20, RightStart: 110, RightLength: 20}}
	for _, exons := range [][]Exon{nil, {{1, 500}}} {
		got := Annotate(pairs, exons, 1)
		if got[0].AtJunction() {
			t.Fatalf("exons %v: unexpected junction flag %+v", exons, got[0])
		}
	}
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	pairs := []DesignedPair{{ID: "x", LeftStart: 90, LeftLength: 20, RightStart: 110, RightLength: 20}}
	orig := pairs[0]
	_ = Annotate(pairs, []Exon{{1, 100}, {101, 200}}, 4)
	if pairs[0] != orig {
		t.Fatalf("input changed: %+v", pairs[0])
	}
}

func TestDesignedPair_Spans(t *testing.T) {
	p := DesignedPair{LeftStart: 5, LeftLength: 20, RightStart: 200, RightLength: 22}
	if a, b := p.LeftSpan(); a != 5 || b != 25 {
		t.Errorf("LeftSpan = %d,%d", a, b)
	}
	if a, b := p.RightSpan(); a != 178 || b != 200 {
		t.Errorf("RightSpan = %d,%d", a, b)
	}
}
