package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerMetabolism(base *Base) error {
	err := base.Register(CategoryMetabolism,
		domain.MarkerDefinition{
			RSID:        "rs7903146",
			Gene:        "TCF7L2",
			Trait:       "Type 2 diabetes (primary marker)",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityRisk, Description: "Substantially elevated type 2 diabetes risk (~80%)"},
				"CT": {Severity: domain.SeverityModerate, Description: "Elevated type 2 diabetes risk (~40%)"},
				"CC": {Severity: domain.SeverityNormal, Description: "Typical risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1801282",
			Gene:        "PPARG Pro12Ala",
			Trait:       "Insulin sensitivity, obesity",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityNormal, Description: "Pro/Pro, reference variant"},
				"CG": {Severity: domain.SeverityNormal, Description: "Pro/Ala, protective against type 2 diabetes"},
				"GG": {Severity: domain.SeverityNormal, Description: "Ala/Ala, protective against type 2 diabetes"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs5219",
			Gene:        "KCNJ11",
			Trait:       "Type 2 diabetes",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityModerate, Description: "Elevated type 2 diabetes risk"},
				"CT": {Severity: domain.SeverityInfo, Description: "Slightly elevated risk"},
				"CC": {Severity: domain.SeverityNormal, Description: "Typical risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs9939609",
			Gene:        "FTO",
			Trait:       "Obesity (primary marker)",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Elevated obesity risk (+3 kg on average)"},
				"AT": {Severity: domain.SeverityModerate, Description: "Moderately elevated risk (+1.5 kg)"},
				"TT": {Severity: domain.SeverityNormal, Description: "Typical risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs17782313",
			Gene:        "MC4R",
			Trait:       "Appetite regulation, obesity",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityModerate, Description: "Elevated appetite and obesity risk"},
				"CT": {Severity: domain.SeverityInfo, Description: "Slightly elevated risk"},
				"TT": {Severity: domain.SeverityNormal, Description: "Typical appetite regulation"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1229984",
			Gene:        "ADH1B",
			Trait:       "Alcohol oxidation speed",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityNormal, Description: "Slower alcohol oxidation, longer intoxication"},
				"AG": {Severity: domain.SeverityInfo, Description: "Fast alcohol oxidation, quicker sobering"},
				"AA": {Severity: domain.SeverityInfo, Description: "Very fast alcohol oxidation"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs671",
			Gene:        "ALDH2",
			Trait:       "Acetaldehyde breakdown",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityNormal, Description: "Normal ALDH2 activity, good alcohol tolerance"},
				"AG": {Severity: domain.SeverityModerate, Description: "Reduced ALDH2 activity, flushing and nausea from alcohol"},
				"AA": {Severity: domain.SeverityRisk, Description: "No ALDH2 activity, strong flushing and alcohol intolerance"},
			},
		},
	)
	if err != nil {
		return err
	}

	// Alcohol tolerance from the joint ADH1B/ALDH2 genotype; a deficient
	// ALDH2 dominates whatever ADH1B does.
	return base.RegisterCompound(domain.CompoundRule{
		Name:     "Alcohol tolerance",
		Category: CategoryMetabolism,
		Gene:     "ADH1B/ALDH2",
		Constituents: []domain.CompoundConstituent{
			{RSID: "rs1229984", Orientation: domain.OrientationForward},
			{RSID: "rs671", Orientation: domain.OrientationForward},
		},
		Entries: []domain.CompoundEntry{
			{Genotypes: []string{"GG", "AA"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Alcohol intolerance, strong flushing and nausea"}},
			{Genotypes: []string{"AG", "AA"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Alcohol intolerance, strong flushing and nausea"}},
			{Genotypes: []string{"AA", "AA"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Alcohol intolerance, strong flushing and nausea"}},
			{Genotypes: []string{"GG", "AG"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Reduced tolerance, flushing and nausea from alcohol"}},
			{Genotypes: []string{"AG", "AG"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Reduced tolerance, flushing and nausea from alcohol"}},
			{Genotypes: []string{"AA", "AG"}, Label: "intolerant",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Reduced tolerance, flushing and nausea from alcohol"}},
			{Genotypes: []string{"AG", "GG"}, Label: "sensitive",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Quick intoxication but good acetaldehyde breakdown"}},
			{Genotypes: []string{"AA", "GG"}, Label: "sensitive",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Quick intoxication but good acetaldehyde breakdown"}},
			{Genotypes: []string{"GG", "GG"}, Label: "normal",
				Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Standard alcohol tolerance"}},
		},
		UnknownDescription: "Alcohol tolerance could not be determined from this combination",
	})
}
