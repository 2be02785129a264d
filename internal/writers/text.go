package writers

import (
	"bufio"
	"fmt"
	"io"
)

func init() { Register("text", WriteText) }

// WriteText prints the human-readable report: run header, then one
// tab-separated line per sequence (motif, start-end, name).
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nGibbs motif sampler output:\n\n")
	fmt.Fprintf(bw, "\tInput file          : %s\n", r.InputFile)
	fmt.Fprintf(bw, "\tInitial motif length: %d\n", r.RequestedLen)
	fmt.Fprintf(bw, "\tFinal motif length  : %d\n", r.MotifLen)
	fmt.Fprintf(bw, "\tFinal score         : %.6f\n\n", r.Best().Score)

	fmt.Fprintf(bw, "Motif sequences and locations:\n\n")
	for _, m := range r.Motifs() {
		fmt.Fprintf(bw, "%s\t%d-%d\t%s\n", m.Seq, m.Start, m.End, m.SequenceID)
	}
	fmt.Fprint(bw, "\n\n")
	return bw.Flush()
}
