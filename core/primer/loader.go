// core/primer/loader.go
package primer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTSV reads primer pairs from a whitespace-separated file:
//
//	id  forward  reverse  [max_product]
//
// Blank lines and lines starting with '#' are skipped.
func LoadTSV(path string) ([]Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadTSV(fh, path)
}

// ReadTSV is LoadTSV over an io.Reader; name is used in error messages.
func ReadTSV(r io.Reader, name string) ([]Pair, error) {
	var list []Pair
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 || len(f) > 4 {
			return nil, fmt.Errorf("%s:%d bad field count %d (want id fwd rev [max])", name, ln, len(f))
		}
		p := Pair{
			ID:      f[0],
			Forward: strings.ToUpper(f[1]),
			Reverse: strings.ToUpper(f[2]),
		}
		if len(f) == 4 {
			if _, err := fmt.Sscan(f[3], &p.MaxProduct); err != nil {
				return nil, fmt.Errorf("%s:%d bad max: %v", name, ln, err)
			}
			if p.MaxProduct < 0 {
				return nil, fmt.Errorf("%s:%d max must be ≥ 0", name, ln)
			}
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
