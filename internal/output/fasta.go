package output

import (
	"bufio"
	"fmt"
	"io"

	"vpcr-core/engine"
)

// StreamFASTA streams amplicon sequences as FASTA records; products without
// a sequence are skipped. Records are numbered per experiment in arrival order.
func StreamFASTA(w io.Writer, in <-chan engine.Product) error {
	bw := bufio.NewWriter(w)
	idx := map[string]int{}
	for p := range in {
		if p.Seq == "" {
			continue
		}
		idx[p.ExperimentID]++
		if _, err := fmt.Fprintf(bw,
			">%s_%d seq=%s start=%d end=%d size=%d source_file=%s\n%s\n",
			p.ExperimentID, idx[p.ExperimentID], p.SequenceID, p.Start(), p.End(), p.Size, p.SourceFile, p.Seq,
		); err != nil {
			return err
		}
	}
	return bw.Flush()
}
