// Package report writes digest results as TSV.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vdtoorn/msgfplus/internal/digest"
)

// Header writes the column header once per output stream.
func Header(w io.Writer) error {
	_, err := fmt.Fprintln(w, "protein\tstart\tend\tlength\tmissed\tpeptide")
	return err
}

// Write streams one protein's peptides, one TSV row each. Coordinates are
// converted to 1-based closed on output.
func Write(w io.Writer, protein string, seq []byte, peps []digest.Peptide) error {
	bw := bufio.NewWriter(w)
	for _, p := range peps {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\t%s\n",
			protein, p.Start+1, p.End, p.End-p.Start, p.Missed, seq[p.Start:p.End]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes one protein's peptides to path, header included.
// Creates or truncates the file.
func WriteFile(path, protein string, seq []byte, peps []digest.Peptide) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Header(f); err != nil {
		return err
	}
	return Write(f, protein, seq, peps)
}
