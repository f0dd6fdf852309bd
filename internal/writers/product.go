package writers

import (
	"io"

	"vpcr-core/engine"
	"vpcr/internal/jsonio"
	"vpcr/internal/output"
)

// Products holds the amplicon writers.
var Products = NewRegistry[engine.Product]("product")

func init() {
	Products.Register(output.FormatText, func(w io.Writer, in <-chan engine.Product, o Options) error {
		return output.StreamText(w, in, o.Header, o.Products)
	})
	Products.Register(output.FormatJSON, func(w io.Writer, in <-chan engine.Product, _ Options) error {
		return output.WriteJSON(w, in)
	})
	Products.Register(output.FormatJSONL, func(w io.Writer, in <-chan engine.Product, _ Options) error {
		return relayJSONL(w, in, output.ToAPIAmplicon)
	})
	Products.Register(output.FormatFASTA, func(w io.Writer, in <-chan engine.Product, _ Options) error {
		return output.StreamFASTA(w, in)
	})
}

// StartProductWriter spins up a writer goroutine for engine.Product items.
func StartProductWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Product, <-chan error) {
	return Products.Start(out, format, o, bufSize)
}

// relayJSONL forwards in to a pooled JSONL encoder, one line per item.
func relayJSONL[T, W any](w io.Writer, in <-chan T, toWire func(T) W) error {
	enc, done := jsonio.StartJSONL(w, cap(in), toWire, IsBrokenPipe)
	for v := range in {
		enc <- v
	}
	close(enc)
	return <-done
}
