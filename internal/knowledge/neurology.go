package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerNeurology(base *Base) error {
	err := base.Register(CategoryNeurology,
		domain.MarkerDefinition{
			RSID:        "rs429358",
			Gene:        "APOE (e4 marker)",
			Trait:       "Alzheimer's disease",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityRisk, Description: "Likely e4/e4, substantially elevated risk"},
				"CT": {Severity: domain.SeverityModerate, Description: "Likely e4 carrier"},
				"TT": {Severity: domain.SeverityNormal, Description: "No e4 allele"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs7412",
			Gene:        "APOE (e2 marker)",
			Trait:       "Alzheimer's disease",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityInfo, Description: "Used jointly with rs429358 to call the APOE genotype"},
				"CT": {Severity: domain.SeverityInfo, Description: "Used jointly with rs429358 to call the APOE genotype"},
				"TT": {Severity: domain.SeverityInfo, Description: "Used jointly with rs429358 to call the APOE genotype"},
			},
		},
		domain.MarkerDefinition{
			RSID:       "rs6265",
			Gene:       "BDNF Val66Met",
			Trait:      "Memory, neuroplasticity, depression susceptibility",
			RiskAllele: "A",
			// Curated on the coding strand; arrays report the complement.
			Orientation: domain.OrientationReverse,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityModerate, Description: "Met/Met, reduced BDNF secretion"},
				"AG": {Severity: domain.SeverityInfo, Description: "Val/Met, slightly reduced BDNF secretion"},
				"GG": {Severity: domain.SeverityNormal, Description: "Val/Val, normal BDNF secretion"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs4680",
			Gene:        "COMT Val158Met",
			Trait:       "Stress resilience and cognition trade-off",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityInfo, Description: "Met/Met ('worrier'), stronger cognition, higher anxiety under stress"},
				"AG": {Severity: domain.SeverityInfo, Description: "Val/Met, balanced profile"},
				"GG": {Severity: domain.SeverityInfo, Description: "Val/Val ('warrior'), stress-resilient, weaker working memory"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1800497",
			Gene:        "DRD2/ANKK1 Taq1A",
			Trait:       "Dopamine D2 receptor density, addiction susceptibility",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityModerate, Description: "A1/A1, fewer D2 receptors, elevated addiction susceptibility"},
				"AG": {Severity: domain.SeverityInfo, Description: "A1/A2, moderately reduced D2 receptor density"},
				"GG": {Severity: domain.SeverityNormal, Description: "A2/A2, typical D2 receptor density"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs53576",
			Gene:        "OXTR",
			Trait:       "Oxytocin receptor, empathy and sociality",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityInfo, Description: "Lower empathy and social sensitivity on average"},
				"AG": {Severity: domain.SeverityInfo, Description: "Intermediate"},
				"GG": {Severity: domain.SeverityInfo, Description: "Higher empathy and social sensitivity on average"},
			},
		},
	)
	if err != nil {
		return err
	}

	// APOE epsilon genotype called from the rs429358/rs7412 pair.
	return base.RegisterCompound(domain.CompoundRule{
		Name:     "APOE genotype",
		Category: CategoryNeurology,
		Gene:     "APOE",
		Constituents: []domain.CompoundConstituent{
			{RSID: "rs429358", Orientation: domain.OrientationForward},
			{RSID: "rs7412", Orientation: domain.OrientationForward},
		},
		Entries: []domain.CompoundEntry{
			{Genotypes: []string{"TT", "CC"}, Label: "e2/e2", Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Protective genotype, reduced Alzheimer's risk"}},
			{Genotypes: []string{"TT", "CT"}, Label: "e2/e3", Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Slightly reduced risk"}},
			{Genotypes: []string{"CT", "CC"}, Label: "e2/e4", Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Mixed genotype, one protective and one risk allele"}},
			{Genotypes: []string{"TT", "TT"}, Label: "e3/e3", Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Most common genotype, typical risk"}},
			{Genotypes: []string{"CT", "CT"}, Label: "e3/e4", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Elevated Alzheimer's risk (~3x)"}},
			{Genotypes: []string{"CT", "TT"}, Label: "e3/e4", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Elevated Alzheimer's risk (~3x)"}},
			{Genotypes: []string{"CC", "TT"}, Label: "e4/e4", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Substantially elevated Alzheimer's risk (~12x)"}},
			{Genotypes: []string{"CC", "CT"}, Label: "e4/e4 or e3/e4", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Elevated Alzheimer's risk"}},
		},
		UnknownDescription: "APOE genotype combination not in the interpretation table",
	})
}
