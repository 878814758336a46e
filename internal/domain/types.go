// Package domain contains the core entities for annotating raw consumer
// genotyping exports against curated marker knowledge: genome records,
// marker definitions, findings and the severity vocabulary shared by the
// loader, matching engine and aggregator.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Severity is the coarse classification of a finding's informational weight.
type Severity string

const (
	SeverityNormal       Severity = "normal"
	SeverityModerate     Severity = "moderate"
	SeverityRisk         Severity = "risk"
	SeverityInfo         Severity = "info"
	SeverityNotAvailable Severity = "not-available"
)

// Orientation records which DNA strand convention a definition's alleles
// were written against, relative to the genotyping export.
type Orientation string

const (
	// OrientationForward means the definition's genotype keys use the same
	// strand as the export; observed calls are compared directly.
	OrientationForward Orientation = "forward"
	// OrientationReverse means the definition was curated on the opposite
	// strand; observed alleles must be complemented before comparison.
	OrientationReverse Orientation = "reverse"
)

// NoCall is the sentinel genotype for positions the platform failed to
// resolve. The loader normalizes "", "-" and "--" to this value.
const NoCall = "--"

// Validation errors shared across packages.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidSeverity    = errors.New("invalid severity")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrDuplicateMarker    = errors.New("duplicate marker in category")
)

// IsValid reports whether the severity is one of the known tags.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityNormal, SeverityModerate, SeverityRisk, SeverityInfo, SeverityNotAvailable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Rank orders severities for summary reporting, highest concern first.
func (s Severity) Rank() int {
	switch s {
	case SeverityRisk:
		return 0
	case SeverityModerate:
		return 1
	case SeverityInfo:
		return 2
	case SeverityNormal:
		return 3
	case SeverityNotAvailable:
		return 4
	default:
		return 5
	}
}

// IsValid reports whether the orientation is a known strand convention.
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationForward, OrientationReverse:
		return true
	default:
		return false
	}
}

// GenomeRecord is one row of the raw genotyping export: a single call for
// a single marker. Keyed by RSID; one call per marker per sample.
type GenomeRecord struct {
	RSID       string `json:"rsid"`
	Chromosome string `json:"chromosome"`
	Position   int64  `json:"position"`
	Genotype   string `json:"genotype"`
}

// IsNoCall reports whether the platform failed to resolve this position.
func (r GenomeRecord) IsNoCall() bool {
	return r.Genotype == NoCall
}

// Interpretation maps one observed genotype to its severity and description.
type Interpretation struct {
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// MarkerDefinition is a curated annotation rule for a single marker within
// one analysis category. Definitions are immutable configuration data owned
// by the knowledge base; the same RSID may carry different definitions in
// different categories.
type MarkerDefinition struct {
	RSID        string                    `json:"rsid"`
	Category    string                    `json:"category"`
	Gene        string                    `json:"gene"`
	Trait       string                    `json:"trait"`
	RiskAllele  string                    `json:"risk_allele,omitempty"`
	Orientation Orientation               `json:"orientation"`
	Genotypes   map[string]Interpretation `json:"genotypes"`
}

// Validate ensures the definition is usable by the matching engine.
func (d *MarkerDefinition) Validate() error {
	if d.RSID == "" {
		return NewValidationError("rsid", "rsid is required", d.RSID)
	}
	if d.Category == "" {
		return fmt.Errorf("marker definition validation for %s: %w", d.RSID,
			NewValidationError("category", "category is required", d.Category))
	}
	if !d.Orientation.IsValid() {
		return fmt.Errorf("marker definition validation for %s: %w", d.RSID, ErrInvalidOrientation)
	}
	if len(d.Genotypes) == 0 {
		return fmt.Errorf("marker definition validation for %s: %w", d.RSID,
			NewValidationError("genotypes", "genotype mapping is required", nil))
	}
	for genotype, interp := range d.Genotypes {
		if !interp.Severity.IsValid() {
			return fmt.Errorf("marker definition validation for %s, genotype %q: %w", d.RSID, genotype, ErrInvalidSeverity)
		}
	}
	return nil
}

// Finding is the normalized result of resolving one marker definition
// against one genome. Never mutated after creation, only aggregated.
type Finding struct {
	RSID            string   `json:"rsid"`
	Category        string   `json:"category"`
	Gene            string   `json:"gene"`
	Trait           string   `json:"trait,omitempty"`
	Genotype        string   `json:"genotype,omitempty"`
	Severity        Severity `json:"severity"`
	Description     string   `json:"description"`
	RiskAlleleCount int      `json:"risk_allele_count"`
}

// Covered reports whether the export actually carried a usable call for
// this marker.
func (f Finding) Covered() bool {
	return f.Severity != SeverityNotAvailable
}

// CompoundConstituent names one marker position a compound rule reads,
// with its own strand convention.
type CompoundConstituent struct {
	RSID        string      `json:"rsid"`
	Orientation Orientation `json:"orientation"`
}

// CompoundEntry matches one combination of normalized genotypes, aligned
// positionally with the rule's constituents.
type CompoundEntry struct {
	Genotypes []string       `json:"genotypes"`
	Label     string         `json:"label"`
	Result    Interpretation `json:"result"`
}

// CompoundRule interprets the joint genotype of several markers (e.g. the
// APOE epsilon haplotype from rs429358 and rs7412) through an explicit
// combination table.
type CompoundRule struct {
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	Gene         string                `json:"gene"`
	Constituents []CompoundConstituent `json:"constituents"`
	Entries      []CompoundEntry       `json:"entries"`
	// UnknownDescription is used when the observed combination is not in
	// the table; the result falls back to SeverityInfo.
	UnknownDescription string `json:"unknown_description,omitempty"`
}

// Validate ensures the compound rule's table is well formed.
func (r *CompoundRule) Validate() error {
	if r.Name == "" {
		return NewValidationError("name", "name is required", r.Name)
	}
	if len(r.Constituents) < 2 {
		return fmt.Errorf("compound rule validation for %s: %w", r.Name,
			NewValidationError("constituents", "at least two constituents are required", len(r.Constituents)))
	}
	for _, c := range r.Constituents {
		if !c.Orientation.IsValid() {
			return fmt.Errorf("compound rule validation for %s, marker %s: %w", r.Name, c.RSID, ErrInvalidOrientation)
		}
	}
	for _, e := range r.Entries {
		if len(e.Genotypes) != len(r.Constituents) {
			return fmt.Errorf("compound rule validation for %s, entry %q: %w", r.Name, e.Label,
				NewValidationError("entries", "entry genotype count must match constituent count", e.Label))
		}
		if !e.Result.Severity.IsValid() {
			return fmt.Errorf("compound rule validation for %s, entry %q: %w", r.Name, e.Label, ErrInvalidSeverity)
		}
	}
	return nil
}

// CompoundResult is the resolved outcome of a compound rule.
type CompoundResult struct {
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Gene        string            `json:"gene"`
	Genotypes   map[string]string `json:"genotypes"`
	Label       string            `json:"label,omitempty"`
	Severity    Severity          `json:"severity"`
	Description string            `json:"description"`
}

// TraitMarker is one scored marker in a trait panel. Weights key on the
// normalized genotype in the definition's strand convention.
type TraitMarker struct {
	RSID        string             `json:"rsid"`
	Gene        string             `json:"gene"`
	Orientation Orientation        `json:"orientation"`
	Weights     map[string]float64 `json:"weights"`
	MaxWeight   float64            `json:"max_weight"`
}

// ScoreBand translates a score percentage into a named level.
type ScoreBand struct {
	MinPercent  float64 `json:"min_percent"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

// TraitScorePanel is an allele-count scoring rule over a marker panel,
// such as an endurance or power profile.
type TraitScorePanel struct {
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Markers  []TraitMarker `json:"markers"`
	Bands    []ScoreBand   `json:"bands"`
}

// TraitScoreResult is the outcome of scoring a panel against a genome.
// Markers absent from the export contribute to neither score nor maximum.
type TraitScoreResult struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Score        float64 `json:"score"`
	MaxScore     float64 `json:"max_score"`
	Percent      float64 `json:"percent"`
	MarkersFound int     `json:"markers_found"`
	Level        string  `json:"level"`
	Description  string  `json:"description"`
}

// NormalizeGenotype returns the order-independent canonical form of a
// genotype call: for two-allele calls the alleles are sorted ("GA" becomes
// "AG"); anything else (no-calls, indel placeholders like "DD" or "II",
// longer insertion strings) is returned unchanged apart from upper-casing.
func NormalizeGenotype(genotype string) string {
	g := strings.ToUpper(strings.TrimSpace(genotype))
	if len(g) != 2 || g == NoCall {
		return g
	}
	alleles := []byte(g)
	sort.Slice(alleles, func(i, j int) bool { return alleles[i] < alleles[j] })
	return string(alleles)
}

// ComplementGenotype maps each allele to its Watson-Crick complement
// (A<->T, C<->G). Non-base characters such as the deletion placeholder
// pass through unchanged. Applying it twice returns the input.
func ComplementGenotype(genotype string) string {
	var b strings.Builder
	b.Grow(len(genotype))
	for _, r := range genotype {
		switch r {
		case 'A':
			b.WriteRune('T')
		case 'T':
			b.WriteRune('A')
		case 'C':
			b.WriteRune('G')
		case 'G':
			b.WriteRune('C')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsNoCall reports whether a raw genotype string denotes a failed call.
func IsNoCall(genotype string) bool {
	switch strings.TrimSpace(genotype) {
	case "", "-", NoCall:
		return true
	default:
		return false
	}
}
