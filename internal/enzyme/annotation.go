package enzyme

import (
	"fmt"
	"strings"
)

// Annotation is a peptide with its flanking protein context, written
// "X.PEPTIDE.Y". X and Y are single characters; a character outside the
// amino-acid set (conventionally '_' or '-') marks a protein terminus.
type Annotation struct {
	Prev    byte
	Peptide string
	Next    byte
}

func (a Annotation) String() string {
	return fmt.Sprintf("%c.%s.%c", a.Prev, a.Peptide, a.Next)
}

// ParseAnnotation splits "X.PEPTIDE.Y". The peptide is the text strictly
// between the first and the last dot; the flanks are the first and last
// characters of the whole string. Anything else is rejected.
func ParseAnnotation(s string) (Annotation, error) {
	first := strings.IndexByte(s, '.')
	last := strings.LastIndexByte(s, '.')
	if first < 0 || last == first {
		return Annotation{}, fmt.Errorf("annotation %q: want X.PEPTIDE.Y", s)
	}
	if first != 1 || last != len(s)-2 {
		return Annotation{}, fmt.Errorf("annotation %q: flanking residues must be single characters", s)
	}
	pep := s[first+1 : last]
	if pep == "" {
		return Annotation{}, fmt.Errorf("annotation %q: %w", s, ErrEmptyPeptide)
	}
	return Annotation{Prev: s[0], Peptide: pep, Next: s[len(s)-1]}, nil
}

// NumCleavedTermini counts how many of the annotated peptide's two termini
// are consistent with this enzyme's cleavage rule: one for the peptide's own
// cleavage-side residue, and one for the flanking residue outside the peptide
// on the enzyme's side (a protein terminus always counts). Result is 0..2.
func (e *Enzyme) NumCleavedTermini(annotation string, set AminoAcidSet) (int, error) {
	ann, err := ParseAnnotation(annotation)
	if err != nil {
		return 0, err
	}
	peptide, err := set.Peptide(ann.Peptide)
	if err != nil {
		return 0, fmt.Errorf("annotation %q: %w", annotation, err)
	}

	n := 0
	cleaved, err := e.IsCleaved(peptide)
	if err != nil {
		return 0, err
	}
	if cleaved {
		n++
	}

	flank := ann.Prev
	if e.terminus == NTerm {
		flank = ann.Next
	}
	if aa, ok := set.Lookup(flank); !ok || e.IsCleavableAA(aa) {
		n++
	}
	return n, nil
}
