package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vdtoorn/msgfplus/internal/collector"
	"github.com/vdtoorn/msgfplus/internal/digest"
	"github.com/vdtoorn/msgfplus/internal/enzyme"
	"github.com/vdtoorn/msgfplus/internal/fasta"
)

var digestOpts struct {
	enzymes   string
	fastaPath string
	missed    int
	minLen    int
	maxLen    int
	outPath   string
	jsonPath  string
	threads   int
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "In-silico digest of a protein FASTA",
	Long: `Digests every protein in the FASTA with the given enzyme(s) and writes
the resulting peptides as TSV. Peptides spanning up to --missed internal
cleavage sites are included.`,
	RunE: runDigest,
}

func init() {
	digestCmd.Flags().StringVarP(&digestOpts.enzymes, "enzymes", "e", "Tryp",
		"comma-separated enzyme names (at most two)")
	digestCmd.Flags().StringVar(&digestOpts.fastaPath, "fasta", "",
		"protein FASTA file ('-' for stdin; required)")
	digestCmd.Flags().IntVar(&digestOpts.missed, "missed", 0, "maximum missed cleavages")
	digestCmd.Flags().IntVar(&digestOpts.minLen, "min", 0, "minimum peptide length (residues)")
	digestCmd.Flags().IntVar(&digestOpts.maxLen, "max", 0, "maximum peptide length (0 = unbounded)")
	digestCmd.Flags().StringVarP(&digestOpts.outPath, "out", "o", "-",
		"TSV output (path or '-' for stdout)")
	digestCmd.Flags().StringVar(&digestOpts.jsonPath, "json", "",
		"optional: write run summary JSON here")
	digestCmd.Flags().IntVar(&digestOpts.threads, "threads", runtime.NumCPU(),
		"number of worker goroutines")
	_ = digestCmd.MarkFlagRequired("fasta")
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	var ens []*enzyme.Enzyme
	for _, name := range strings.Split(digestOpts.enzymes, ",") {
		n := strings.TrimSpace(name) // forgive spaces
		e, ok := enzyme.Get(n)
		if !ok {
			return fmt.Errorf("unknown enzyme %q (try 'list')", n)
		}
		ens = append(ens, e)
	}
	if len(ens) > 2 {
		return fmt.Errorf("at most two enzymes (got %d)", len(ens))
	}
	if len(ens) == 2 && ens[0].Name() == ens[1].Name() {
		return fmt.Errorf("enzymes must differ (got %s,%s)", ens[0].Name(), ens[1].Name())
	}
	if digestOpts.maxLen > 0 && digestOpts.minLen > digestOpts.maxLen {
		return fmt.Errorf("invalid range: --min (%d) > --max (%d)", digestOpts.minLen, digestOpts.maxLen)
	}
	threads := digestOpts.threads
	if threads < 1 {
		threads = 1
	}

	// Compile the plan once.
	plan := digest.NewPlanWithOptions(ens, digest.Options{
		MissedCleavages: digestOpts.missed,
		MinLen:          digestOpts.minLen,
		MaxLen:          digestOpts.maxLen,
	})

	var out io.Writer = cmd.OutOrStdout()
	if digestOpts.outPath != "-" && digestOpts.outPath != "" {
		f, err := os.Create(digestOpts.outPath)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}
	cIn, done := collector.New(out)

	// Worker pool; deterministic output order via job idx.
	type job struct {
		idx int
		rec fasta.Record
	}
	jobs := make(chan job, threads)
	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				peps := plan.Digest(j.rec.Seq)
				// send even if empty to advance the output order
				cIn <- collector.Msg{Idx: j.idx, Protein: j.rec.ID, Seq: j.rec.Seq, Peps: peps}
				log.Debug().Str("protein", j.rec.ID).Int("peptides", len(peps)).Msg("digested")
			}
		}()
	}

	// Stream FASTA and feed jobs.
	faCh := make(chan fasta.Record)
	errCh := make(chan error, 1)
	go func() {
		errCh <- fasta.Stream(digestOpts.fastaPath, faCh)
		// Stream closes faCh when done.
	}()
	idx := 0
	for rec := range faCh {
		jobs <- job{idx: idx, rec: rec} // whole protein per job
		idx++
	}
	close(jobs)
	wg.Wait()
	close(cIn)

	stats := <-done
	if err := <-errCh; err != nil {
		return fmt.Errorf("fasta stream: %w", err)
	}

	// Summary goes to stderr so stdout stays pure TSV.
	fmt.Fprintf(cmd.ErrOrStderr(), "Peptides: %d\nResidues covered: %d\nProteins: %d\n",
		stats.TotalPeptides, stats.TotalResidues, len(stats.PerProtein))
	if digestOpts.jsonPath == "" {
		return nil
	}
	summary := struct {
		Enzymes         []string `json:"enzymes"`
		MissedCleavages int      `json:"missed_cleavages"`
		MinLength       int      `json:"min_length"`
		MaxLength       int      `json:"max_length"`
		collector.Stats
	}{
		MissedCleavages: digestOpts.missed,
		MinLength:       digestOpts.minLen,
		MaxLength:       digestOpts.maxLen,
		Stats:           stats,
	}
	for _, e := range ens {
		summary.Enzymes = append(summary.Enzymes, e.Name())
	}
	f, err := os.Create(digestOpts.jsonPath)
	if err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(summary)
}
