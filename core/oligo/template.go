// core/oligo/template.go
package oligo

import (
	"bytes"
	"fmt"
)

// TemplateLimits bounds what is accepted as an amplification template.
type TemplateLimits struct {
	MinLen       int
	MaxLen       int
	MaxNFraction float64
}

// DefaultTemplateLimits: 50 bp .. 200 kb with at most 10% N.
var DefaultTemplateLimits = TemplateLimits{MinLen: 50, MaxLen: 200_000, MaxNFraction: 0.1}

// CheckTemplate validates the alphabet of seq and then applies lim.
// Zero-valued limits are not enforced.
func CheckTemplate(seq []byte, lim TemplateLimits) error {
	if err := ValidateBytes(seq); err != nil {
		return err
	}
	n := len(seq)
	if lim.MinLen > 0 && n < lim.MinLen {
		return fmt.Errorf("%w: %d bp (minimum %d)", ErrTooShort, n, lim.MinLen)
	}
	if lim.MaxLen > 0 && n > lim.MaxLen {
		return fmt.Errorf("%w: %d bp (maximum %d)", ErrTooLong, n, lim.MaxLen)
	}
	if lim.MaxNFraction > 0 {
		if f := float64(bytes.Count(seq, []byte{'N'})) / float64(n); f > lim.MaxNFraction {
			return fmt.Errorf("%w: %.1f%% (maximum %.1f%%)", ErrTooManyN, f*100, lim.MaxNFraction*100)
		}
	}
	return nil
}
