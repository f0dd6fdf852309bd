package writers

import (
	"io"

	"vpcr/internal/output"
	"vpcr/internal/siteoutput"
)

// Sites holds the binding-site writers.
var Sites = NewRegistry[siteoutput.Hit]("site")

func init() {
	Sites.Register(output.FormatText, func(w io.Writer, in <-chan siteoutput.Hit, o Options) error {
		return siteoutput.StreamText(w, in, o.Header)
	})
	Sites.Register(output.FormatJSON, func(w io.Writer, in <-chan siteoutput.Hit, _ Options) error {
		return siteoutput.WriteJSON(w, in)
	})
	Sites.Register(output.FormatJSONL, func(w io.Writer, in <-chan siteoutput.Hit, _ Options) error {
		return relayJSONL(w, in, siteoutput.ToAPI)
	})
}

// StartSiteWriter spins up a writer goroutine for site hits.
func StartSiteWriter(out io.Writer, format string, o Options, bufSize int) (chan<- siteoutput.Hit, <-chan error) {
	return Sites.Start(out, format, o, bufSize)
}
