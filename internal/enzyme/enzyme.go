// Package enzyme models proteolytic enzymes used in MS/MS peptide
// identification: which residues an enzyme cleaves, on which peptide
// terminus, and with what empirical efficiency.
package enzyme

import (
	"errors"
	"fmt"
)

// Terminus is the peptide end an enzyme cleaves.
type Terminus uint8

const (
	NTerm Terminus = iota
	CTerm
)

func (t Terminus) String() string {
	if t == NTerm {
		return "N"
	}
	return "C"
}

// ParseTerminus accepts "N"/"C" and the long forms "nterm"/"cterm".
func ParseTerminus(s string) (Terminus, error) {
	switch s {
	case "N", "n", "nterm", "NTerm", "n-term":
		return NTerm, nil
	case "C", "c", "cterm", "CTerm", "c-term":
		return CTerm, nil
	}
	return 0, fmt.Errorf("invalid terminus %q (want N or C)", s)
}

// residueSet is a 26-bit mask over 'A'..'Z'.
type residueSet uint32

func (s residueSet) has(r byte) bool {
	return r >= 'A' && r <= 'Z' && s&(1<<(r-'A')) != 0
}

var (
	ErrNoResidues   = errors.New("enzyme: residue set is empty")
	ErrEmptyPeptide = errors.New("enzyme: peptide has no residues")
)

// AminoAcid is the identity an enzyme needs from an amino acid. The full
// amino-acid model (mass, modifications) belongs to the caller.
type AminoAcid interface {
	// UnmodResidue is the uppercase residue letter, ignoring modifications.
	UnmodResidue() byte
}

// AminoAcidSet resolves residue characters and decomposes peptide strings.
type AminoAcidSet interface {
	// Lookup reports ok=false for protein-terminus sentinels and any
	// character outside the set.
	Lookup(residue byte) (AminoAcid, bool)
	// Peptide turns a peptide string into its ordered amino acids.
	Peptide(s string) ([]AminoAcid, error)
}

// Enzyme is immutable after construction.
type Enzyme struct {
	name     string
	residues string // uppercase, construction order
	set      residueSet
	terminus Terminus

	// Probability that a peptide generated by this enzyme follows the
	// cleavage rule, e.g. for trypsin that a peptide ends with K or R.
	peptideCleavageEfficiency float64
	// Probability that the amino acid neighboring the peptide follows the
	// rule, e.g. for trypsin that the preceding amino acid is K or R.
	neighboringAACleavageEfficiency float64
}

// Option sets an optional Enzyme parameter at construction.
type Option func(*Enzyme) error

func WithPeptideCleavageEfficiency(p float64) Option {
	return func(e *Enzyme) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("enzyme %s: peptide cleavage efficiency %v outside [0,1]", e.name, p)
		}
		e.peptideCleavageEfficiency = p
		return nil
	}
}

func WithNeighboringAACleavageEfficiency(p float64) Option {
	return func(e *Enzyme) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("enzyme %s: neighboring AA cleavage efficiency %v outside [0,1]", e.name, p)
		}
		e.neighboringAACleavageEfficiency = p
		return nil
	}
}

// New builds an enzyme cleaving the given residues on the given terminus.
// Residues must be uppercase ASCII letters; efficiencies default to 0.
func New(name, residues string, terminus Terminus, opts ...Option) (*Enzyme, error) {
	if residues == "" {
		return nil, fmt.Errorf("enzyme %s: %w", name, ErrNoResidues)
	}
	e := &Enzyme{name: name, residues: residues, terminus: terminus}
	for i := 0; i < len(residues); i++ {
		r := residues[i]
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("enzyme %s: residue %q must be an uppercase letter", name, r)
		}
		e.set |= 1 << (r - 'A')
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func must(e *Enzyme, err error) *Enzyme {
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Enzyme) Name() string       { return e.name }
func (e *Enzyme) Residues() string   { return e.residues }
func (e *Enzyme) Terminus() Terminus { return e.terminus }
func (e *Enzyme) IsNTerm() bool      { return e.terminus == NTerm }
func (e *Enzyme) IsCTerm() bool      { return e.terminus == CTerm }

func (e *Enzyme) PeptideCleavageEfficiency() float64 { return e.peptideCleavageEfficiency }

func (e *Enzyme) NeighboringAACleavageEfficiency() float64 {
	return e.neighboringAACleavageEfficiency
}

// IsCleavable reports whether the residue letter is cleaved by this enzyme.
func (e *Enzyme) IsCleavable(residue byte) bool { return e.set.has(residue) }

// IsCleavableAA tests the amino acid's unmodified residue identity.
func (e *Enzyme) IsCleavableAA(aa AminoAcid) bool { return e.set.has(aa.UnmodResidue()) }

// IsCleaved reports whether the peptide ends (or starts, for an N-terminal
// enzyme) at a cleavable residue.
func (e *Enzyme) IsCleaved(peptide []AminoAcid) (bool, error) {
	if len(peptide) == 0 {
		return false, ErrEmptyPeptide
	}
	aa := peptide[len(peptide)-1]
	if e.terminus == NTerm {
		aa = peptide[0]
	}
	return e.IsCleavableAA(aa), nil
}
