// Package engine resolves marker definitions against a loaded genome
// index. Resolution is pure table lookup over normalized genotypes; all
// marker-specific knowledge lives in the definitions themselves.
package engine

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/genome-annotator/internal/domain"
	"github.com/genome-annotator/internal/genome"
)

// Engine matches genome records against marker definitions.
type Engine struct {
	log *logrus.Logger
}

// New creates a matching engine.
func New(logger *logrus.Logger) *Engine {
	return &Engine{log: logger}
}

// Resolve produces exactly one finding per definition, in definition
// order. Markers absent from the index or reported as no-calls yield a
// not-available finding; observed genotypes missing from a definition's
// mapping fall back to an informational finding so uncommon calls are
// never silently dropped.
func (e *Engine) Resolve(ctx context.Context, idx *genome.Index, defs []domain.MarkerDefinition) []domain.Finding {
	findings := make([]domain.Finding, 0, len(defs))
	covered := 0

	for _, def := range defs {
		finding := e.resolveOne(idx, def)
		if finding.Covered() {
			covered++
		}
		findings = append(findings, finding)
	}

	e.log.WithFields(logrus.Fields{
		"definitions": len(defs),
		"covered":     covered,
	}).Debug("Resolved marker definitions")

	return findings
}

func (e *Engine) resolveOne(idx *genome.Index, def domain.MarkerDefinition) domain.Finding {
	finding := domain.Finding{
		RSID:     def.RSID,
		Category: def.Category,
		Gene:     def.Gene,
		Trait:    def.Trait,
	}

	observed, ok := observedGenotype(idx, def.RSID)
	if !ok {
		finding.Severity = domain.SeverityNotAvailable
		finding.Description = "Not determined from the uploaded data"
		return finding
	}

	// The finding always carries the genotype as observed in the export,
	// even when the definition was curated on the opposite strand.
	finding.Genotype = observed

	oriented := orientGenotype(observed, def.Orientation)
	finding.RiskAlleleCount = countAllele(oriented, def.RiskAllele)

	interp, ok := def.Genotypes[oriented]
	if !ok {
		finding.Severity = domain.SeverityInfo
		finding.Description = "Uncommon genotype for this marker, consult the raw data"
		return finding
	}

	finding.Severity = interp.Severity
	finding.Description = interp.Description
	return finding
}

// observedGenotype looks a marker up in the index and returns its
// normalized genotype. The second return is false for coverage gaps and
// no-calls alike.
func observedGenotype(idx *genome.Index, rsid string) (string, bool) {
	record, ok := idx.Lookup(rsid)
	if !ok || record.IsNoCall() {
		return "", false
	}
	return domain.NormalizeGenotype(record.Genotype), true
}

// orientGenotype converts an observed normalized genotype into the
// definition's strand convention.
func orientGenotype(observed string, orientation domain.Orientation) string {
	if orientation != domain.OrientationReverse {
		return observed
	}
	return domain.NormalizeGenotype(domain.ComplementGenotype(observed))
}

func countAllele(genotype, allele string) int {
	if allele == "" {
		return 0
	}
	return strings.Count(genotype, allele)
}
