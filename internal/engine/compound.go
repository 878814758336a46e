package engine

import (
	"github.com/genome-annotator/internal/domain"
	"github.com/genome-annotator/internal/genome"
)

// ResolveCompound evaluates a combination rule against the index. A rule
// only resolves when every constituent has a usable call; otherwise the
// result is not-available.
func (e *Engine) ResolveCompound(idx *genome.Index, rule domain.CompoundRule) domain.CompoundResult {
	result := domain.CompoundResult{
		Name:      rule.Name,
		Category:  rule.Category,
		Gene:      rule.Gene,
		Genotypes: make(map[string]string, len(rule.Constituents)),
	}

	oriented := make([]string, len(rule.Constituents))
	for i, c := range rule.Constituents {
		observed, ok := observedGenotype(idx, c.RSID)
		if !ok {
			result.Genotypes[c.RSID] = domain.NoCall
			result.Severity = domain.SeverityNotAvailable
			result.Description = "Not determined from the uploaded data"
			return result
		}
		result.Genotypes[c.RSID] = observed
		oriented[i] = orientGenotype(observed, c.Orientation)
	}

	for _, entry := range rule.Entries {
		if matchesEntry(entry.Genotypes, oriented) {
			result.Label = entry.Label
			result.Severity = entry.Result.Severity
			result.Description = entry.Result.Description
			return result
		}
	}

	result.Severity = domain.SeverityInfo
	result.Description = rule.UnknownDescription
	if result.Description == "" {
		result.Description = "Combination not in the interpretation table, consult the raw data"
	}
	return result
}

func matchesEntry(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

// ScoreTrait computes an allele-count score over a panel. Markers without
// a usable call contribute to neither the score nor the maximum, so the
// percentage reflects only what the export covers.
func (e *Engine) ScoreTrait(idx *genome.Index, panel domain.TraitScorePanel) domain.TraitScoreResult {
	result := domain.TraitScoreResult{
		Name:     panel.Name,
		Category: panel.Category,
	}

	for _, m := range panel.Markers {
		observed, ok := observedGenotype(idx, m.RSID)
		if !ok {
			continue
		}
		result.MarkersFound++
		result.MaxScore += m.MaxWeight
		result.Score += m.Weights[orientGenotype(observed, m.Orientation)]
	}

	if result.MarkersFound == 0 || result.MaxScore == 0 {
		result.Level = "unknown"
		result.Description = "None of the panel markers were present in the uploaded data"
		return result
	}

	result.Percent = result.Score / result.MaxScore * 100

	// Bands are declared highest threshold first.
	for _, band := range panel.Bands {
		if result.Percent >= band.MinPercent {
			result.Level = band.Level
			result.Description = band.Description
			break
		}
	}

	return result
}
