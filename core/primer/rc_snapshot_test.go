package primer

import "testing"

// Snapshot: RevComp over the full ambiguity alphabet + ACGT.
func TestComplementTable_Snapshot(t *testing.T) {
	in := []byte("RYSWKMBDHVNACGT")
	want := []byte("ACGTNBDHVKMWSRY")

	got := RevComp(in)
	if string(got) != string(want) {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}
