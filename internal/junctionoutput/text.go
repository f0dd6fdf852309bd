// internal/junctionoutput/text.go
package junctionoutput

import (
	"bufio"
	"fmt"
	"io"

	"vpcr-core/junction"
)

// TSVHeader is the header row for junction annotation text output.
const TSVHeader = "id\tleft_seq\tright_seq\tleft_start\tleft_length\tright_start\tright_length\tproduct_size\tfwd_spans_junction\trev_spans_junction\tat_junction"

// StreamText writes one TSV row per annotated pair.
func StreamText(w io.Writer, in <-chan junction.Annotation, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for a := range in {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%t\t%t\t%t\n",
			a.ID, a.LeftSeq, a.RightSeq,
			a.LeftStart, a.LeftLength, a.RightStart, a.RightLength, a.ProductSize,
			a.FwdSpansJunction, a.RevSpansJunction, a.AtJunction(),
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
