// internal/output/rows.go
package output

import (
	"strconv"
	"strings"

	"vpcr-core/engine"
)

// FormatRowTSV returns the amplicon columns of TSVHeader (no trailing newline).
func FormatRowTSV(p engine.Product) string {
	var b strings.Builder
	b.Grow(96)
	b.WriteString(p.SourceFile)
	b.WriteByte('\t')
	b.WriteString(p.SequenceID)
	b.WriteByte('\t')
	b.WriteString(p.ExperimentID)
	for _, n := range [...]int{
		p.Start(), p.End(), p.Size,
		p.Forward.Start, p.Forward.End, p.Forward.Mismatches, p.Forward.ThreePrimeMismatches,
		p.Reverse.Start, p.Reverse.End, p.Reverse.Mismatches, p.Reverse.ThreePrimeMismatches,
	} {
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
