package siteoutput

import (
	"io"

	"vpcr/internal/jsonio"
	"vpcr/internal/output"
	"vpcr/pkg/api"
)

// ToAPI converts a Hit to the stable wire schema (v1).
func ToAPI(h Hit) api.SiteHitV1 {
	return api.SiteHitV1{
		SequenceID:  h.SequenceID,
		Probe:       h.Probe,
		Orientation: h.Orientation.String(),
		SiteV1:      output.ToAPISite(h.Site),
		SourceFile:  h.SourceFile,
	}
}

// WriteJSON drains in and writes one JSON array.
func WriteJSON(w io.Writer, in <-chan Hit) error {
	list := make([]api.SiteHitV1, 0, 16)
	for h := range in {
		list = append(list, ToAPI(h))
	}
	return jsonio.EncodePretty(w, list)
}
