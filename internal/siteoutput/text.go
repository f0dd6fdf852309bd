package siteoutput

import (
	"bufio"
	"fmt"
	"io"
)

// StreamText writes one TSV row per hit.
func StreamText(w io.Writer, in <-chan Hit, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for h := range in {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			h.SourceFile, h.SequenceID, h.Probe, h.Orientation,
			h.Start, h.End, h.Mismatches, h.ThreePrimeMismatches, h.Seq,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
