package enzyme_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vdtoorn/msgfplus/internal/aminoacid"
	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

func TestNew_RejectsLowercaseResidues(t *testing.T) {
	for r := byte('a'); r <= 'z'; r++ {
		_, err := enzyme.New("bad", string(r), enzyme.CTerm)
		require.Error(t, err, "lowercase residue %q must be rejected", r)
	}
}

func TestNew_RejectsNonLetters(t *testing.T) {
	for _, residues := range []string{"K*", "1", " ", "K R", "é"} {
		_, err := enzyme.New("bad", residues, enzyme.CTerm)
		require.Error(t, err, "residues %q", residues)
	}
}

func TestNew_RejectsEmptyResidues(t *testing.T) {
	_, err := enzyme.New("empty", "", enzyme.NTerm)
	require.ErrorIs(t, err, enzyme.ErrNoResidues)
}

func TestNew_RejectsEfficiencyOutsideUnitInterval(t *testing.T) {
	_, err := enzyme.New("e", "K", enzyme.CTerm, enzyme.WithPeptideCleavageEfficiency(1.5))
	require.Error(t, err)
	_, err = enzyme.New("e", "K", enzyme.CTerm, enzyme.WithNeighboringAACleavageEfficiency(-0.1))
	require.Error(t, err)
}

func TestTrypsin_Cleavability(t *testing.T) {
	require.True(t, enzyme.Trypsin.IsCleavable('K'))
	require.True(t, enzyme.Trypsin.IsCleavable('R'))
	require.False(t, enzyme.Trypsin.IsCleavable('A'))
	require.False(t, enzyme.Trypsin.IsCleavable('k'), "membership is case-sensitive")
}

func TestTerminusSides(t *testing.T) {
	require.True(t, enzyme.LysN.IsNTerm())
	require.False(t, enzyme.LysN.IsCTerm())
	require.True(t, enzyme.Trypsin.IsCTerm())
	require.False(t, enzyme.Trypsin.IsNTerm())

	for _, name := range enzyme.Names() {
		e, ok := enzyme.Get(name)
		require.True(t, ok)
		require.NotEqual(t, e.IsNTerm(), e.IsCTerm(), "%s: sides must be mutually exclusive", name)
	}
}

func TestIsCleaved(t *testing.T) {
	set := aminoacid.Standard()

	pep, err := set.Peptide("ACDK")
	require.NoError(t, err)
	cleaved, err := enzyme.Trypsin.IsCleaved(pep)
	require.NoError(t, err)
	require.True(t, cleaved, "tryptic peptide ends in K")

	pep, err = set.Peptide("KACD")
	require.NoError(t, err)
	cleaved, err = enzyme.Trypsin.IsCleaved(pep)
	require.NoError(t, err)
	require.False(t, cleaved, "C-terminal enzyme looks at the last residue only")

	cleaved, err = enzyme.LysN.IsCleaved(pep)
	require.NoError(t, err)
	require.True(t, cleaved, "N-terminal enzyme looks at the first residue")
}

func TestIsCleaved_EmptyPeptide(t *testing.T) {
	_, err := enzyme.Trypsin.IsCleaved(nil)
	require.ErrorIs(t, err, enzyme.ErrEmptyPeptide)
}

func TestIsCleavable_AllRegisteredEnzymes(t *testing.T) {
	for _, name := range enzyme.Names() {
		e, ok := enzyme.Get(name)
		require.True(t, ok)
		for r := byte('A'); r <= 'z'; r++ {
			want := strings.IndexByte(e.Residues(), r) >= 0
			require.Equal(t, want, e.IsCleavable(r), "%s: residue %q", name, r)
		}
	}
}

func TestIsCleavable_MatchesConfiguredSet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		residues := rapid.StringOfN(rapid.RuneFrom([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")), 1, 10, -1).Draw(rt, "residues")
		e, err := enzyme.New("gen", residues, enzyme.CTerm)
		if err != nil {
			rt.Fatalf("New(%q): %v", residues, err)
		}
		for r := 0; r < 128; r++ {
			want := strings.IndexByte(residues, byte(r)) >= 0
			if got := e.IsCleavable(byte(r)); got != want {
				rt.Fatalf("IsCleavable(%q) = %v, want %v (set %q)", byte(r), got, want, residues)
			}
		}
	})
}
