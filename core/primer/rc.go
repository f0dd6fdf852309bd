// core/primer/rc.go
package primer

// complement maps every accepted IUPAC symbol to its partner. Zero entries are
// unknown symbols and complement to 'N'.
var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'G', 'C'}, {'N', 'N'},
		{'R', 'Y'}, {'S', 'S'}, {'W', 'W'},
		{'K', 'M'}, {'B', 'V'}, {'D', 'H'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
	}
}

// RevComp returns the reverse complement of seq. The input is expected to be
// upper-case; any symbol outside the table comes back as 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
