// Package knowledge holds the curated marker definitions the matching
// engine runs against: an immutable in-memory base assembled at startup
// from the built-in tables and, optionally, a local SQLite store.
package knowledge

import (
	"fmt"

	"github.com/genome-annotator/internal/domain"
)

// Base is the assembled knowledge base. Categories keep registration
// order and definitions keep insertion order within a category; that
// order drives report layout. Once built the base is read-only.
type Base struct {
	categories []string
	defs       map[string][]domain.MarkerDefinition
	byRSID     map[string]map[string]int // category -> rsid -> index into defs
	compounds  map[string][]domain.CompoundRule
	panels     map[string][]domain.TraitScorePanel
}

// NewBase creates an empty knowledge base.
func NewBase() *Base {
	return &Base{
		defs:      make(map[string][]domain.MarkerDefinition),
		byRSID:    make(map[string]map[string]int),
		compounds: make(map[string][]domain.CompoundRule),
		panels:    make(map[string][]domain.TraitScorePanel),
	}
}

// Register validates and adds definitions to a category, preserving order.
// Genotype mapping keys are normalized to their order-independent form so
// the engine can look observed calls up directly. The same rsid may appear
// in several categories, but only once per category.
func (b *Base) Register(category string, defs ...domain.MarkerDefinition) error {
	if category == "" {
		return fmt.Errorf("registering definitions: category is required")
	}

	for _, def := range defs {
		def.Category = category
		if err := def.Validate(); err != nil {
			return fmt.Errorf("registering definitions in %s: %w", category, err)
		}

		if _, ok := b.byRSID[category]; !ok {
			b.byRSID[category] = make(map[string]int)
		}
		if _, dup := b.byRSID[category][def.RSID]; dup {
			return fmt.Errorf("registering %s in %s: %w", def.RSID, category, domain.ErrDuplicateMarker)
		}

		normalized := make(map[string]domain.Interpretation, len(def.Genotypes))
		for genotype, interp := range def.Genotypes {
			normalized[domain.NormalizeGenotype(genotype)] = interp
		}
		def.Genotypes = normalized

		if _, ok := b.defs[category]; !ok {
			b.categories = append(b.categories, category)
		}
		b.byRSID[category][def.RSID] = len(b.defs[category])
		b.defs[category] = append(b.defs[category], def)
	}

	return nil
}

// RegisterCompound validates and adds a compound rule to its category.
// Entry genotypes are normalized the same way as marker definitions.
func (b *Base) RegisterCompound(rule domain.CompoundRule) error {
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("registering compound rule: %w", err)
	}
	for i, entry := range rule.Entries {
		for j, g := range entry.Genotypes {
			rule.Entries[i].Genotypes[j] = domain.NormalizeGenotype(g)
		}
	}
	b.compounds[rule.Category] = append(b.compounds[rule.Category], rule)
	return nil
}

// RegisterPanel adds a trait-score panel to its category. Weight keys are
// normalized like genotype mapping keys.
func (b *Base) RegisterPanel(panel domain.TraitScorePanel) error {
	if panel.Name == "" || panel.Category == "" {
		return fmt.Errorf("registering trait panel: name and category are required")
	}
	for i, m := range panel.Markers {
		if !m.Orientation.IsValid() {
			return fmt.Errorf("registering trait panel %s, marker %s: %w", panel.Name, m.RSID, domain.ErrInvalidOrientation)
		}
		normalized := make(map[string]float64, len(m.Weights))
		for genotype, w := range m.Weights {
			normalized[domain.NormalizeGenotype(genotype)] = w
		}
		panel.Markers[i].Weights = normalized
	}
	b.panels[panel.Category] = append(b.panels[panel.Category], panel)
	return nil
}

// Categories returns the category names in registration order.
func (b *Base) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// Definitions returns the ordered definitions of a category.
func (b *Base) Definitions(category string) []domain.MarkerDefinition {
	defs := b.defs[category]
	out := make([]domain.MarkerDefinition, len(defs))
	copy(out, defs)
	return out
}

// Lookup finds a definition by rsid within one category in O(1).
func (b *Base) Lookup(category, rsid string) (domain.MarkerDefinition, bool) {
	idx, ok := b.byRSID[category]
	if !ok {
		return domain.MarkerDefinition{}, false
	}
	i, ok := idx[rsid]
	if !ok {
		return domain.MarkerDefinition{}, false
	}
	return b.defs[category][i], true
}

// Compounds returns the compound rules of a category.
func (b *Base) Compounds(category string) []domain.CompoundRule {
	rules := b.compounds[category]
	out := make([]domain.CompoundRule, len(rules))
	copy(out, rules)
	return out
}

// Panels returns the trait-score panels of a category.
func (b *Base) Panels(category string) []domain.TraitScorePanel {
	panels := b.panels[category]
	out := make([]domain.TraitScorePanel, len(panels))
	copy(out, panels)
	return out
}

// Size returns the total number of marker definitions across categories.
func (b *Base) Size() int {
	n := 0
	for _, defs := range b.defs {
		n += len(defs)
	}
	return n
}
