package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultHeader = `# msgfplus enzyme configuration.
# Enzymes listed here are registered at startup; an entry with the same name
# as a built-in replaces it. Residues are uppercase single-letter codes,
# terminus is "N" or "C", efficiencies are probabilities in [0,1].
`

// WriteDefault writes a commented starter config to path, creating parent
// directories as needed. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	starter := Config{
		Enzymes: []EnzymeConfig{{
			Name:                            "PepsinA",
			Residues:                        "FL",
			Terminus:                        "C",
			PeptideCleavageEfficiency:       0.5,
			NeighboringAACleavageEfficiency: 0.5,
		}},
	}
	body, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(defaultHeader)
	buf.Write(body)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
