package junctionoutput

import (
	"bytes"
	"encoding/json"
	"testing"

	"vpcr-core/junction"
	"vpcr/pkg/api"
)

func anns(as ...junction.Annotation) <-chan junction.Annotation {
	ch := make(chan junction.Annotation, len(as))
	for _, a := range as {
		ch <- a
	}
	close(ch)
	return ch
}

var sampleAnn = junction.Annotation{
	DesignedPair: junction.DesignedPair{
		ID: "p1", LeftSeq: "ACGT", RightSeq: "TTGG",
		LeftStart: 95, LeftLength: 20, RightStart: 300, RightLength: 20, ProductSize: 206,
	},
	FwdSpansJunction: true,
}

func TestStreamText(t *testing.T) {
	var b bytes.Buffer
	if err := StreamText(&b, anns(sampleAnn), true); err != nil {
		t.Fatal(err)
	}
	want := TSVHeader + "\np1\tACGT\tTTGG\t95\t20\t300\t20\t206\ttrue\tfalse\ttrue\n"
	if b.String() != want {
		t.Fatalf("got %q\nwant %q", b.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, anns(sampleAnn)); err != nil {
		t.Fatal(err)
	}
	var got []api.JunctionPairV1
	if err := json.Unmarshal(b.Bytes(), &got); err != nil || len(got) != 1 {
		t.Fatalf("decode: %v %v", err, got)
	}
	if !got[0].AtJunction || !got[0].FwdSpansJunction || got[0].RevSpansJunction || got[0].ProductSize != 206 {
		t.Fatalf("bad wire %+v", got[0])
	}
}
