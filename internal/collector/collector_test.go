package collector_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vdtoorn/msgfplus/internal/collector"
	"github.com/vdtoorn/msgfplus/internal/digest"
)

func TestCollector_WritesRowsAndStats(t *testing.T) {
	var buf bytes.Buffer
	in, done := collector.New(&buf)

	seq := []byte("AAKAAR")
	in <- collector.Msg{
		Idx:     0,
		Protein: "sp1",
		Seq:     seq,
		Peps: []digest.Peptide{
			{Start: 0, End: 3},
			{Start: 3, End: 6},
		},
	}
	close(in)
	stats := <-done

	require.Equal(t, 2, stats.TotalPeptides)
	require.Equal(t, 6, stats.TotalResidues)
	require.Equal(t, collector.ProteinStats{Peptides: 2, Residues: 6}, stats.PerProtein["sp1"])

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "protein\tstart\tend\tlength\tmissed\tpeptide", lines[0])
	require.Equal(t, "sp1\t1\t3\t3\t0\tAAK", lines[1])
	require.Equal(t, "sp1\t4\t6\t3\t0\tAAR", lines[2])
}

func TestCollector_OrdersByIdx(t *testing.T) {
	var buf bytes.Buffer
	in, done := collector.New(&buf)

	msg := func(idx int, protein string) collector.Msg {
		return collector.Msg{
			Idx:     idx,
			Protein: protein,
			Seq:     []byte("KK"),
			Peps:    []digest.Peptide{{Start: 0, End: 2}},
		}
	}
	// Deliver out of order.
	in <- msg(2, "third")
	in <- msg(0, "first")
	in <- msg(1, "second")
	close(in)
	<-done

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[1], "first\t"))
	require.True(t, strings.HasPrefix(lines[2], "second\t"))
	require.True(t, strings.HasPrefix(lines[3], "third\t"))
}

func TestCollector_EmptyMsgAdvancesOrder(t *testing.T) {
	var buf bytes.Buffer
	in, done := collector.New(&buf)

	in <- collector.Msg{Idx: 1, Protein: "second", Seq: []byte("K"),
		Peps: []digest.Peptide{{Start: 0, End: 1}}}
	in <- collector.Msg{Idx: 0, Protein: "first"} // no peptides
	close(in)
	stats := <-done

	require.Equal(t, 1, stats.TotalPeptides)
	_, ok := stats.PerProtein["first"]
	require.False(t, ok, "proteins without peptides do not appear in stats")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "second\t"))
}

func TestCollector_FlushesGappedIndices(t *testing.T) {
	var buf bytes.Buffer
	in, done := collector.New(&buf)

	in <- collector.Msg{Idx: 5, Protein: "late", Seq: []byte("K"),
		Peps: []digest.Peptide{{Start: 0, End: 1}}}
	close(in)
	stats := <-done

	require.Equal(t, 1, stats.TotalPeptides)
	require.Contains(t, buf.String(), "late\t")
}
