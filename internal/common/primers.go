// internal/common/primers.go
package common

import (
	"fmt"

	"vpcr-core/oligo"
	"vpcr-core/primer"
)

// NormalizePairs validates and normalizes both primers of every pair
// (whitespace/digits stripped, upper-cased, IUPAC alphabet only).
// The input slice is not modified.
func NormalizePairs(pairs []primer.Pair) ([]primer.Pair, error) {
	out := make([]primer.Pair, 0, len(pairs))
	for _, p := range pairs {
		fwd, err := oligo.Validate(p.Forward)
		if err != nil {
			return nil, fmt.Errorf("pair %q forward primer: %w", p.ID, err)
		}
		rev, err := oligo.Validate(p.Reverse)
		if err != nil {
			return nil, fmt.Errorf("pair %q reverse primer: %w", p.ID, err)
		}
		p.Forward, p.Reverse = fwd, rev
		out = append(out, p)
	}
	return out, nil
}

// DuplicateIDs returns pair IDs seen more than once, in first-repeat order.
func DuplicateIDs(pairs []primer.Pair) []string {
	seen := make(map[string]int, len(pairs))
	var dups []string
	for _, p := range pairs {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}
