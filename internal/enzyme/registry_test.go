package enzyme_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

func TestRegistry_RegisterGet(t *testing.T) {
	r := enzyme.NewRegistry()

	e, err := enzyme.New("X", "KR", enzyme.CTerm)
	require.NoError(t, err)
	r.Register(e)

	got, ok := r.Get("X")
	require.True(t, ok)
	require.Same(t, e, got, "lookup returns the registered instance")

	_, ok = r.Get("ImaginaryI")
	require.False(t, ok)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := enzyme.NewRegistry()
	first, err := enzyme.New("X", "K", enzyme.CTerm)
	require.NoError(t, err)
	second, err := enzyme.New("X", "R", enzyme.CTerm)
	require.NoError(t, err)

	r.Register(first)
	r.Register(second)
	got, ok := r.Get("X")
	require.True(t, ok)
	require.Same(t, second, got)
}

func TestDefaultRegistry_Builtins(t *testing.T) {
	cases := []struct {
		name        string
		residues    string
		terminus    enzyme.Terminus
		peptideEff  float64
		neighborEff float64
	}{
		{"Tryp", "KR", enzyme.CTerm, 0.99999, 0.99999},
		{"CHYMOTRYPSIN", "FYWL", enzyme.CTerm, 0, 0},
		{"LysC", "K", enzyme.CTerm, 0.999, 0.999},
		{"LysN", "K", enzyme.NTerm, 0.89, 0.79},
		{"GluC", "E", enzyme.CTerm, 0, 0},
		{"ArgC", "R", enzyme.CTerm, 0, 0},
		{"AspN", "D", enzyme.NTerm, 0, 0},
	}
	require.Len(t, enzyme.Names(), len(cases))

	for _, tc := range cases {
		e, ok := enzyme.Get(tc.name)
		require.True(t, ok, tc.name)
		require.Equal(t, tc.name, e.Name())
		require.Equal(t, tc.residues, e.Residues(), tc.name)
		require.Equal(t, tc.terminus, e.Terminus(), tc.name)
		require.Equal(t, tc.peptideEff, e.PeptideCleavageEfficiency(), tc.name)
		require.Equal(t, tc.neighborEff, e.NeighboringAACleavageEfficiency(), tc.name)
	}
}

func TestNames_Sorted(t *testing.T) {
	names := enzyme.Names()
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}
