package enzyme

import "sort"

// Registry maps enzyme names to definitions. It is populated during startup
// and read-only afterwards, so unsynchronized concurrent reads are fine.
type Registry struct {
	byName map[string]*Enzyme
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Enzyme)}
}

// Register inserts the enzyme under its name, overwriting any previous entry.
func (r *Registry) Register(e *Enzyme) {
	r.byName[e.Name()] = e
}

// Get looks an enzyme up by name.
func (r *Registry) Get(name string) (*Enzyme, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Built-in enzymes. Names and parameters follow the values MS-GF+ ships
// with; in particular Trypsin's near-1 efficiencies are a deliberate tuning
// override, not measured data.
var (
	Trypsin = must(New("Tryp", "KR", CTerm,
		WithPeptideCleavageEfficiency(0.99999),
		WithNeighboringAACleavageEfficiency(0.99999)))
	Chymotrypsin = must(New("CHYMOTRYPSIN", "FYWL", CTerm))
	LysC         = must(New("LysC", "K", CTerm,
		WithPeptideCleavageEfficiency(0.999),
		WithNeighboringAACleavageEfficiency(0.999)))
	LysN = must(New("LysN", "K", NTerm,
		WithPeptideCleavageEfficiency(0.89),
		WithNeighboringAACleavageEfficiency(0.79)))
	GluC = must(New("GluC", "E", CTerm))
	ArgC = must(New("ArgC", "R", CTerm))
	AspN = must(New("AspN", "D", NTerm))
)

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	for _, e := range []*Enzyme{Trypsin, Chymotrypsin, LysC, LysN, GluC, ArgC, AspN} {
		r.Register(e)
	}
	return r
}()

// Default returns the process-wide registry holding the built-in enzymes.
func Default() *Registry { return defaultRegistry }

// Get looks a name up in the default registry.
func Get(name string) (*Enzyme, bool) { return defaultRegistry.Get(name) }

// Register adds an enzyme to the default registry. Call during startup only.
func Register(e *Enzyme) { defaultRegistry.Register(e) }

// Names lists the default registry, sorted.
func Names() []string { return defaultRegistry.Names() }
