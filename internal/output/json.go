// internal/output/json.go
package output

import (
	"io"

	"vpcr-core/engine"
	"vpcr-core/primer"
	"vpcr/internal/jsonio"
	"vpcr/pkg/api"
)

// ToAPISite converts a binding site to its wire form.
func ToAPISite(s primer.Site) api.SiteV1 {
	return api.SiteV1{
		Start:   s.Start,
		End:     s.End,
		MM:      s.Mismatches,
		MM3p:    s.ThreePrimeMismatches,
		SiteSeq: s.Seq,
	}
}

// ToAPIAmplicon converts a domain Product to the stable wire schema (v1).
func ToAPIAmplicon(p engine.Product) api.AmpliconV1 {
	return api.AmpliconV1{
		ExperimentID: p.ExperimentID,
		SequenceID:   p.SequenceID,
		Start:        p.Start(),
		End:          p.End(),
		Size:         p.Size,
		FwdPrimer:    p.FwdPrimer,
		RevPrimer:    p.RevPrimer,
		Fwd:          ToAPISite(p.Forward),
		Rev:          ToAPISite(p.Reverse),
		Seq:          p.Seq,
		SourceFile:   p.SourceFile,
	}
}

// WriteJSON drains in and writes a single JSON array of v1 amplicons.
func WriteJSON(w io.Writer, in <-chan engine.Product) error {
	list := make([]api.AmpliconV1, 0, 16)
	for p := range in {
		list = append(list, ToAPIAmplicon(p))
	}
	return jsonio.EncodePretty(w, list)
}
