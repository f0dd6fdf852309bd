// core/oligo/validate.go
package oligo

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"vpcr-core/primer"
)

// Alphabet lists every accepted symbol: A C G T plus the IUPAC ambiguity codes.
const Alphabet = "ATGCNRYSWKMBDHV"

var (
	ErrEmpty       = errors.New("empty sequence")
	ErrInvalidBase = errors.New("invalid base")
	ErrTooShort    = errors.New("sequence too short")
	ErrTooLong     = errors.New("sequence too long")
	ErrTooManyN    = errors.New("too many N bases")
)

var allowed [256]bool

func init() {
	for i := 0; i < len(Alphabet); i++ {
		allowed[Alphabet[i]] = true
	}
}

// Normalize removes whitespace, digits and quotes and upper-cases the rest,
// which accepts pasted GenBank-style blocks ("1 acgt acgt").
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsDigit(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Validate returns a normalized sequence or an error if any symbol is outside
// Alphabet. Positions in errors are 1-based.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, ErrEmpty
	}
	if i := firstInvalid(s); i >= 0 {
		return "", fmt.Errorf("%w %q at %d; allowed: A C G T R Y S W K M B D H V N", ErrInvalidBase, rune(s[i]), i+1)
	}
	return s, nil
}

// ValidateBytes checks an already upper-cased sequence in place.
func ValidateBytes(seq []byte) error {
	if len(seq) == 0 {
		return ErrEmpty
	}
	for i, c := range seq {
		if !allowed[c] {
			return fmt.Errorf("%w %q at %d", ErrInvalidBase, rune(c), i+1)
		}
	}
	return nil
}

func firstInvalid(s string) int {
	for i := 0; i < len(s); i++ {
		if !allowed[s[i]] {
			return i
		}
	}
	return -1
}

// RevComp returns the reverse complement of a normalized IUPAC sequence.
func RevComp(seq string) string {
	return string(primer.RevComp([]byte(Normalize(seq))))
}
