package junctionoutput

import (
	"io"

	"vpcr-core/junction"
	"vpcr/internal/jsonio"
	"vpcr/pkg/api"
)

// ToAPI converts an annotation to the stable wire schema (v1).
func ToAPI(a junction.Annotation) api.JunctionPairV1 {
	return api.JunctionPairV1{
		ID:               a.ID,
		LeftSeq:          a.LeftSeq,
		RightSeq:         a.RightSeq,
		LeftStart:        a.LeftStart,
		LeftLength:       a.LeftLength,
		RightStart:       a.RightStart,
		RightLength:      a.RightLength,
		ProductSize:      a.ProductSize,
		FwdSpansJunction: a.FwdSpansJunction,
		RevSpansJunction: a.RevSpansJunction,
		AtJunction:       a.AtJunction(),
	}
}

// WriteJSON drains in and writes one JSON array.
func WriteJSON(w io.Writer, in <-chan junction.Annotation) error {
	list := make([]api.JunctionPairV1, 0, 16)
	for a := range in {
		list = append(list, ToAPI(a))
	}
	return jsonio.EncodePretty(w, list)
}
