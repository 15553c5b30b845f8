// Package digest performs in-silico proteolytic digestion of protein
// sequences using the enzyme definitions from internal/enzyme.
package digest

import (
	"sync"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

// Peptide is half-open, 0-based [Start, End) over the protein sequence.
// Missed is the number of internal cleavage sites the peptide spans.
type Peptide struct {
	Start  int
	End    int
	Missed int
}

type Options struct {
	MissedCleavages int // internal sites a peptide may span
	MinLen          int // residues; 0 = no lower bound
	MaxLen          int // residues; <=0 = no upper bound
}

// Plan precompiles up to two enzymes for reuse across sequences.
type Plan struct {
	enzymes []*enzyme.Enzyme
	opt     Options
}

func NewPlanWithOptions(ens []*enzyme.Enzyme, opt Options) Plan {
	if opt.MissedCleavages < 0 {
		opt.MissedCleavages = 0
	}
	es := make([]*enzyme.Enzyme, 0, 2)
	for i := 0; i < len(ens) && i < 2; i++ {
		if ens[i] != nil {
			es = append(es, ens[i])
		}
	}
	return Plan{enzymes: es, opt: opt}
}

func NewPlan(ens ...*enzyme.Enzyme) Plan {
	return NewPlanWithOptions(ens, Options{})
}

var cutPool = sync.Pool{
	New: func() any { return make([]int, 0, 1024) },
}

// cuts returns every cleavage position in ascending order, deduplicated.
// Protein start and end are always cut positions. A C-terminal enzyme cuts
// after its residue, an N-terminal enzyme before it.
func (p Plan) cuts(seq []byte, buf []int) []int {
	buf = append(buf[:0], 0)
	push := func(pos int) {
		if buf[len(buf)-1] != pos {
			buf = append(buf, pos)
		}
	}
	for i := 0; i < len(seq); i++ {
		var cutN, cutC bool
		for _, e := range p.enzymes {
			if !e.IsCleavable(seq[i]) {
				continue
			}
			if e.IsNTerm() {
				cutN = true
			} else {
				cutC = true
			}
		}
		// before-the-residue cut first so positions stay sorted
		if cutN && i > 0 {
			push(i)
		}
		if cutC && i+1 < len(seq) {
			push(i + 1)
		}
	}
	push(len(seq))
	return buf
}

// Digest returns the peptides the plan's enzymes produce from seq, including
// peptides spanning up to MissedCleavages internal sites, filtered by length.
// Returns nil for an empty sequence or an empty plan.
func (p Plan) Digest(seq []byte) []Peptide {
	if len(seq) == 0 || len(p.enzymes) == 0 {
		return nil
	}

	cuts := p.cuts(seq, cutPool.Get().([]int))
	defer cutPool.Put(cuts[:0])

	out := make([]Peptide, 0, len(cuts))
	for i := 0; i+1 < len(cuts); i++ {
		last := i + 1 + p.opt.MissedCleavages
		if last > len(cuts)-1 {
			last = len(cuts) - 1
		}
		for j := i + 1; j <= last; j++ {
			ln := cuts[j] - cuts[i]
			if p.opt.MaxLen > 0 && ln > p.opt.MaxLen {
				break // only gets longer with larger j
			}
			if ln < p.opt.MinLen {
				continue
			}
			out = append(out, Peptide{Start: cuts[i], End: cuts[j], Missed: j - i - 1})
		}
	}
	return out
}

// Digest is a convenience that compiles a plan per call.
func Digest(seq []byte, ens []*enzyme.Enzyme, opt Options) []Peptide {
	return NewPlanWithOptions(ens, opt).Digest(seq)
}
