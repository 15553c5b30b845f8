// Package collector serializes per-protein digest results from concurrent
// workers into a single TSV stream, in deterministic input order.
package collector

import (
	"bufio"
	"io"

	"github.com/vdtoorn/msgfplus/internal/digest"
	"github.com/vdtoorn/msgfplus/internal/report"
)

// Msg delivers one protein's peptides. Idx is the job index assigned by the
// producer; output is emitted strictly in Idx order.
type Msg struct {
	Idx     int
	Protein string
	Seq     []byte
	Peps    []digest.Peptide
}

type ProteinStats struct {
	Peptides int `json:"peptides"`
	Residues int `json:"residues"`
}

// Stats is emitted after the input channel closes.
type Stats struct {
	TotalPeptides int                     `json:"total_peptides"`
	TotalResidues int                     `json:"total_residues"`
	PerProtein    map[string]ProteinStats `json:"per_protein"`
}

// New starts the collector goroutine.
//   - send Msg values on the returned chan (any Idx order)
//   - close the chan when workers are done
//   - read the final Stats from the second chan
func New(w io.Writer) (chan<- Msg, <-chan Stats) {
	in := make(chan Msg)
	out := make(chan Stats, 1)

	go func() {
		defer close(out)

		bw := bufio.NewWriter(w)
		report.Header(bw)

		stats := Stats{PerProtein: make(map[string]ProteinStats)}
		write := func(msg Msg) {
			report.Write(bw, msg.Protein, msg.Seq, msg.Peps)
			for _, p := range msg.Peps {
				ln := p.End - p.Start
				stats.TotalPeptides++
				stats.TotalResidues += ln
				ps := stats.PerProtein[msg.Protein]
				ps.Peptides++
				ps.Residues += ln
				stats.PerProtein[msg.Protein] = ps
			}
		}

		next := 0
		pending := make(map[int]Msg)
		for msg := range in {
			if msg.Idx != next {
				pending[msg.Idx] = msg
				continue
			}
			write(msg)
			next++
			for {
				m, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				write(m)
				next++
			}
		}
		// Anything still pending had gaps in the index sequence; flush in
		// index order rather than dropping it.
		for len(pending) > 0 {
			min := -1
			for idx := range pending {
				if min < 0 || idx < min {
					min = idx
				}
			}
			write(pending[min])
			delete(pending, min)
		}
		bw.Flush()
		out <- stats
	}()

	return in, out
}
