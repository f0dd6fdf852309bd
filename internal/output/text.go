// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"vpcr-core/engine"
)

// StreamText writes one TSV row per product as products arrive.
// withSeq appends the amplicon sequence column.
func StreamText(w io.Writer, in <-chan engine.Product, header, withSeq bool) error {
	bw := bufio.NewWriter(w)
	if header {
		h := TSVHeader
		if withSeq {
			h += "\t" + SeqColumn
		}
		if _, err := bw.WriteString(h + "\n"); err != nil {
			return err
		}
	}
	for p := range in {
		row := FormatRowTSV(p)
		if withSeq {
			row += "\t" + p.Seq
		}
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
