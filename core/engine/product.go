// core/engine/product.go
package engine

// Product is an Amplicon tagged with the pair and record it came from.
// Coordinates are 1-based inclusive on the record.
type Product struct {
	ExperimentID string
	SequenceID   string
	SourceFile   string

	FwdPrimer string
	RevPrimer string

	Amplicon

	// Optional amplicon sequence (template slice Forward.Start..Reverse.End)
	Seq string
}

// Start is the first template base of the amplicon.
func (p Product) Start() int { return p.Forward.Start }

// End is the last template base of the amplicon.
func (p Product) End() int { return p.Reverse.End }
