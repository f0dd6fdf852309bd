// core/primer/match.go
package primer

import "bytes"

// ThreePrimeWindow is the number of 3'-terminal bases whose mismatches are
// reported separately in Site.ThreePrimeMismatches.
const ThreePrimeWindow = 5

// Site is one accepted placement of a probe on the template.
// Start and End are 1-based inclusive template-forward coordinates.
type Site struct {
	Start                int
	End                  int
	Mismatches           int
	ThreePrimeMismatches int
	Seq                  string // matched template substring
}

// FindSites returns every window of template whose literal Hamming distance to
// probe is at most maxMM, in ascending start order. Ambiguity letters are
// compared byte-for-byte. Empty inputs, a probe longer than the template or a
// negative budget yield nil.
func FindSites(template, probe []byte, maxMM int, o Orientation) []Site {
	pl := len(probe)
	if pl == 0 || len(template) < pl || maxMM < 0 {
		return nil
	}
	return scanRange(template, probe, maxMM, o, 0, len(template)-pl)
}

// scanRange scans window starts lo..hi (0-based, inclusive).
func scanRange(template, probe []byte, maxMM int, o Orientation, lo, hi int) []Site {
	pl := len(probe)
	out := make([]Site, 0, 8)

	// Exact fast path: literal comparison makes bytes.Index equivalent.
	if maxMM == 0 {
		for i := lo; i <= hi; {
			j := bytes.Index(template[i:hi+pl], probe)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, newSite(template, pos, pl, 0, 0))
			i = pos + 1
		}
		return out
	}

window:
	for pos := lo; pos <= hi; pos++ {
		mm := 0
		w := template[pos : pos+pl]
		for j := 0; j < pl; j++ {
			if w[j] != probe[j] {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		tail := 0
		if mm > 0 {
			tail = threePrimeMismatches(w, probe, o)
		}
		out = append(out, newSite(template, pos, pl, mm, tail))
	}
	return out
}

func newSite(template []byte, pos, pl, mm, tail int) Site {
	return Site{
		Start:                pos + 1,
		End:                  pos + pl,
		Mismatches:           mm,
		ThreePrimeMismatches: tail,
		Seq:                  string(template[pos : pos+pl]),
	}
}

// threePrimeMismatches counts mismatches in the 3'-terminal window: the last
// bases for Forward, the first bases for Reverse.
func threePrimeMismatches(w, probe []byte, o Orientation) int {
	n := ThreePrimeWindow
	if n > len(probe) {
		n = len(probe)
	}
	lo := len(probe) - n
	if o == Reverse {
		lo = 0
	}
	return mismatchCount(w[lo:lo+n], probe[lo:lo+n])
}

// mismatchCount is the literal Hamming distance of two equal-length sequences.
func mismatchCount(a, b []byte) int {
	if len(a) != len(b) {
		panic("mismatchCount: length mismatch")
	}
	mm := 0
	for i := range a {
		if a[i] != b[i] {
			mm++
		}
	}
	return mm
}
