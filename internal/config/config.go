// Package config loads user configuration, most importantly custom enzyme
// definitions merged into the registry at startup.
package config

import (
	"fmt"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

// EnzymeConfig is one user-defined enzyme.
type EnzymeConfig struct {
	Name     string `mapstructure:"name" yaml:"name"`
	Residues string `mapstructure:"residues" yaml:"residues"`
	Terminus string `mapstructure:"terminus" yaml:"terminus"` // "N" or "C"

	PeptideCleavageEfficiency       float64 `mapstructure:"peptide_cleavage_efficiency" yaml:"peptide_cleavage_efficiency"`
	NeighboringAACleavageEfficiency float64 `mapstructure:"neighboring_aa_cleavage_efficiency" yaml:"neighboring_aa_cleavage_efficiency"`
}

// Config holds all configuration options.
type Config struct {
	Enzymes []EnzymeConfig `mapstructure:"enzymes" yaml:"enzymes"`
}

// Build turns the definition into an Enzyme, surfacing any validation error
// (bad residues, terminus, or efficiency range).
func (c EnzymeConfig) Build() (*enzyme.Enzyme, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("custom enzyme with residues %q: name is required", c.Residues)
	}
	term, err := enzyme.ParseTerminus(c.Terminus)
	if err != nil {
		return nil, fmt.Errorf("custom enzyme %s: %w", c.Name, err)
	}
	return enzyme.New(c.Name, c.Residues, term,
		enzyme.WithPeptideCleavageEfficiency(c.PeptideCleavageEfficiency),
		enzyme.WithNeighboringAACleavageEfficiency(c.NeighboringAACleavageEfficiency))
}

// Apply registers every configured enzyme, overwriting built-ins of the same
// name. Call once during startup.
func (c Config) Apply(r *enzyme.Registry) error {
	for _, ec := range c.Enzymes {
		e, err := ec.Build()
		if err != nil {
			return err
		}
		r.Register(e)
	}
	return nil
}
