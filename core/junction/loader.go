// core/junction/loader.go
package junction

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadPairsTSV reads designed pairs from a whitespace-separated file:
//
//	id left_seq right_seq left_start left_len right_start right_len [product_size]
//
// Blank lines and '#' comments are skipped.
func LoadPairsTSV(path string) ([]DesignedPair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadPairsTSV(fh, path)
}

// ReadPairsTSV is LoadPairsTSV over an io.Reader; name is used in errors.
func ReadPairsTSV(r io.Reader, name string) ([]DesignedPair, error) {
	var list []DesignedPair
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 7 || len(f) > 8 {
			return nil, fmt.Errorf("%s:%d bad field count %d (want 7 or 8)", name, ln, len(f))
		}
		nums := make([]int, len(f)-3)
		for i, s := range f[3:] {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%s:%d column %d: %v", name, ln, i+4, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s:%d column %d must be ≥ 0", name, ln, i+4)
			}
			nums[i] = v
		}
		p := DesignedPair{
			ID:          f[0],
			LeftSeq:     strings.ToUpper(f[1]),
			RightSeq:    strings.ToUpper(f[2]),
			LeftStart:   nums[0],
			LeftLength:  nums[1],
			RightStart:  nums[2],
			RightLength: nums[3],
		}
		if len(nums) == 5 {
			p.ProductSize = nums[4]
		}
		list = append(list, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
