// core/junction/exon.go
package junction

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrBadExon marks malformed or inconsistent exon intervals.
var ErrBadExon = errors.New("bad exon interval")

// Exon is one exon's template coordinates, 1-based inclusive.
type Exon struct {
	Start int
	End   int
}

// Len is the exon length in bases.
func (e Exon) Len() int { return e.End - e.Start + 1 }

func (e Exon) String() string { return fmt.Sprintf("%d-%d", e.Start, e.End) }

var exonRe = regexp.MustCompile(`^(\d+)\s*[-:.]{1,2}\s*(\d+)$`)

// ParseExons reads intervals such as "1-120, 121..300; 301:450" (also one per
// line) and returns them sorted by Start then End. Every non-blank token must
// parse, and coordinates must be positive with End >= Start.
func ParseExons(text string) ([]Exon, error) {
	text = strings.NewReplacer(",", "\n", ";", "\n").Replace(text)
	var out []Exon
	for _, tok := range strings.Split(text, "\n") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		m := exonRe.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("%w: cannot parse %q (want start-end)", ErrBadExon, tok)
		}
		s, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadExon, tok, err)
		}
		e, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadExon, tok, err)
		}
		if s <= 0 || e <= 0 {
			return nil, fmt.Errorf("%w: %q: coordinates must be positive", ErrBadExon, tok)
		}
		if e < s {
			return nil, fmt.Errorf("%w: %q: end before start", ErrBadExon, tok)
		}
		out = append(out, Exon{Start: s, End: e})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out, nil
}

// ValidateExons checks that exons are positive, well-formed, sorted by Start
// and non-overlapping. Annotate assumes this has already passed.
func ValidateExons(exons []Exon) error {
	for i, e := range exons {
		if e.Start <= 0 || e.End < e.Start {
			return fmt.Errorf("%w: exon %d (%s)", ErrBadExon, i+1, e)
		}
		if i > 0 && e.Start <= exons[i-1].End {
			return fmt.Errorf("%w: exon %d (%s) overlaps or precedes %s", ErrBadExon, i+1, e, exons[i-1])
		}
	}
	return nil
}

// Junctions returns the End of every exon except the last. Fewer than two
// exons give none.
func Junctions(exons []Exon) []int {
	if len(exons) < 2 {
		return nil
	}
	out := make([]int, 0, len(exons)-1)
	for _, e := range exons[:len(exons)-1] {
		out = append(out, e.End)
	}
	return out
}
