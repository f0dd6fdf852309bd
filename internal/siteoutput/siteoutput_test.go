package siteoutput

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vpcr-core/primer"
	"vpcr/pkg/api"
)

func hits(hs ...Hit) <-chan Hit {
	ch := make(chan Hit, len(hs))
	for _, h := range hs {
		ch <- h
	}
	close(ch)
	return ch
}

var sampleHit = Hit{
	SourceFile: "ref.fa", SequenceID: "chr1", Probe: "ACGTA", Orientation: primer.Reverse,
	Site: primer.Site{Start: 11, End: 15, Mismatches: 1, ThreePrimeMismatches: 0, Seq: "ACGTT"},
}

func TestStreamText(t *testing.T) {
	var b bytes.Buffer
	if err := StreamText(&b, hits(sampleHit), true); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\nref.fa\tchr1\tACGTA\treverse\t11\t15\t1\t0\tACGTT\n"
	if b.String() != want {
		t.Fatalf("got %q\nwant %q", b.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, hits(sampleHit)); err != nil {
		t.Fatal(err)
	}
	var got []api.SiteHitV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("decode: %v %v", err, got)
	}
	if got[0].Orientation != "reverse" || got[0].Start != 11 || got[0].MM != 1 {
		t.Fatalf("bad wire %+v", got[0])
	}
	if !strings.Contains(b.String(), `"site_seq": "ACGTT"`) {
		t.Fatalf("site_seq missing:\n%s", b.String())
	}
}
