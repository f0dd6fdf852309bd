// core/junction/annotate.go
package junction

// DesignedPair is a primer pair as reported by the designer. LeftStart is the
// forward primer's 5' offset; RightStart is the reverse primer's 3'-most
// coordinate, so its footprint is [RightStart-RightLength, RightStart).
type DesignedPair struct {
	ID          string
	LeftSeq     string
	RightSeq    string
	LeftStart   int
	LeftLength  int
	RightStart  int
	RightLength int
	ProductSize int
}

// LeftSpan is the forward primer's half-open footprint.
func (p DesignedPair) LeftSpan() (int, int) { return p.LeftStart, p.LeftStart + p.LeftLength }

// RightSpan is the reverse primer's half-open footprint.
func (p DesignedPair) RightSpan() (int, int) { return p.RightStart - p.RightLength, p.RightStart }

// Annotation is a DesignedPair plus its junction flags.
type Annotation struct {
	DesignedPair
	FwdSpansJunction bool
	RevSpansJunction bool
}

// AtJunction reports whether either primer crosses a junction.
func (a Annotation) AtJunction() bool { return a.FwdSpansJunction || a.RevSpansJunction }

// Spans reports whether the primer footprint [start, start+length) has
// junction j strictly inside it with at least minTail bases on both sides.
func Spans(start, length, j, minTail int) bool {
	a, b := start, start+length
	return a < j && j < b && j-a >= minTail && b-j >= minTail
}

func spansAny(start, length int, junctions []int, minTail int) bool {
	for _, j := range junctions {
		if Spans(start, length, j, minTail) {
			return true
		}
	}
	return false
}

// Annotate returns one Annotation per pair, in input order. Exons are assumed
// sorted and non-overlapping (see ValidateExons); minTail should be >= 1.
func Annotate(pairs []DesignedPair, exons []Exon, minTail int) []Annotation {
	js := Junctions(exons)
	out := make([]Annotation, len(pairs))
	for i, p := range pairs {
		out[i] = Annotation{DesignedPair: p}
		if len(js) == 0 {
			continue
		}
		out[i].FwdSpansJunction = spansAny(p.LeftStart, p.LeftLength, js, minTail)
		out[i].RevSpansJunction = spansAny(p.RightStart-p.RightLength, p.RightLength, js, minTail)
	}
	return out
}

// FilterAtJunction keeps the annotations where either primer crosses a junction.
func FilterAtJunction(list []Annotation) []Annotation {
	out := make([]Annotation, 0, len(list))
	for _, a := range list {
		if a.AtJunction() {
			out = append(out, a)
		}
	}
	return out
}
