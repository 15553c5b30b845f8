// Package sim generates random protein sequences for tests and benchmarks.
package sim

import (
	"math/rand"
	"time"
)

const residues = "ACDEFGHIKLMNPQRSTVWY"

// Make returns an upper-case protein sequence of the given length. A bias
// fraction of positions is drawn from the enrich residues (e.g. "KR" to get
// tryptic-looking sequences); the rest come from all 20 standard residues.
// If seed==0 a time-based seed is used; otherwise results are reproducible.
func Make(length int, enrich string, bias float64, seed int64) []byte {
	if length <= 0 {
		return []byte{}
	}
	if enrich == "" {
		bias = 0
	}
	if bias < 0 {
		bias = 0
	}
	if bias > 1 {
		bias = 1
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	enriched := int(float64(length)*bias + 0.5) // nearest integer
	if enriched > length {
		enriched = length
	}

	seq := make([]byte, length)
	for i := 0; i < enriched; i++ {
		seq[i] = enrich[r.Intn(len(enrich))]
	}
	for i := enriched; i < length; i++ {
		seq[i] = residues[r.Intn(len(residues))]
	}

	// Shuffle to disperse the enriched residues.
	for i := length - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
	return seq
}
