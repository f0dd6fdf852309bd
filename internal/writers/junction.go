package writers

import (
	"io"

	"vpcr-core/junction"
	"vpcr/internal/junctionoutput"
	"vpcr/internal/output"
)

// Junctions holds the junction-annotation writers.
var Junctions = NewRegistry[junction.Annotation]("junction")

func init() {
	Junctions.Register(output.FormatText, func(w io.Writer, in <-chan junction.Annotation, o Options) error {
		return junctionoutput.StreamText(w, in, o.Header)
	})
	Junctions.Register(output.FormatJSON, func(w io.Writer, in <-chan junction.Annotation, _ Options) error {
		return junctionoutput.WriteJSON(w, in)
	})
	Junctions.Register(output.FormatJSONL, func(w io.Writer, in <-chan junction.Annotation, _ Options) error {
		return relayJSONL(w, in, junctionoutput.ToAPI)
	})
}

// StartJunctionWriter spins up a writer goroutine for annotations.
func StartJunctionWriter(out io.Writer, format string, o Options, bufSize int) (chan<- junction.Annotation, <-chan error) {
	return Junctions.Start(out, format, o, bufSize)
}
