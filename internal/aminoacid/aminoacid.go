// Package aminoacid provides a minimal table of the 20 standard amino acids,
// enough to satisfy the enzyme package's collaborator interfaces. Masses and
// modifications are out of scope here.
package aminoacid

import (
	"fmt"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

// AminoAcid is one standard residue.
type AminoAcid struct {
	residue byte
	code    string // three-letter code
	name    string
}

func (a AminoAcid) UnmodResidue() byte { return a.residue }
func (a AminoAcid) Code() string       { return a.code }
func (a AminoAcid) String() string     { return a.name }

// Residues of the 20 standard amino acids, alphabetical by letter.
const Residues = "ACDEFGHIKLMNPQRSTVWY"

var standard = []AminoAcid{
	{'A', "Ala", "Alanine"},
	{'C', "Cys", "Cysteine"},
	{'D', "Asp", "Aspartate"},
	{'E', "Glu", "Glutamate"},
	{'F', "Phe", "Phenylalanine"},
	{'G', "Gly", "Glycine"},
	{'H', "His", "Histidine"},
	{'I', "Ile", "Isoleucine"},
	{'K', "Lys", "Lysine"},
	{'L', "Leu", "Leucine"},
	{'M', "Met", "Methionine"},
	{'N', "Asn", "Asparagine"},
	{'P', "Pro", "Proline"},
	{'Q', "Gln", "Glutamine"},
	{'R', "Arg", "Arginine"},
	{'S', "Ser", "Serine"},
	{'T', "Thr", "Threonine"},
	{'V', "Val", "Valine"},
	{'W', "Trp", "Tryptophan"},
	{'Y', "Tyr", "Tyrosine"},
}

// Set maps residue letters to amino acids.
type Set struct {
	byResidue [26]*AminoAcid
}

var standardSet = func() *Set {
	s := &Set{}
	for i := range standard {
		aa := &standard[i]
		s.byResidue[aa.residue-'A'] = aa
	}
	return s
}()

// Standard returns the shared set of the 20 standard amino acids.
func Standard() *Set { return standardSet }

// Lookup resolves a residue letter. Sentinel characters such as '_', '-' or
// '*' (protein terminus markers) and anything else outside the set report
// ok=false.
func (s *Set) Lookup(residue byte) (enzyme.AminoAcid, bool) {
	if residue < 'A' || residue > 'Z' {
		return nil, false
	}
	aa := s.byResidue[residue-'A']
	if aa == nil {
		return nil, false
	}
	return aa, true
}

// Peptide decomposes a peptide string into its amino acids. Any character
// outside the set is an error.
func (s *Set) Peptide(seq string) ([]enzyme.AminoAcid, error) {
	if seq == "" {
		return nil, enzyme.ErrEmptyPeptide
	}
	out := make([]enzyme.AminoAcid, len(seq))
	for i := 0; i < len(seq); i++ {
		aa, ok := s.Lookup(seq[i])
		if !ok {
			return nil, fmt.Errorf("peptide %q: unknown residue %q at position %d", seq, seq[i], i)
		}
		out[i] = aa
	}
	return out, nil
}
