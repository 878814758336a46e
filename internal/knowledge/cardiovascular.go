package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerCardiovascular(base *Base) error {
	err := base.Register(CategoryCardiovascular,
		domain.MarkerDefinition{
			RSID:        "rs10757274",
			Gene:        "9p21",
			Trait:       "Coronary artery disease, myocardial infarction",
			RiskAllele:  "G",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityRisk, Description: "Elevated coronary artery disease risk (homozygous)"},
				"AG": {Severity: domain.SeverityModerate, Description: "Moderately elevated coronary artery disease risk (heterozygous)"},
				"AA": {Severity: domain.SeverityNormal, Description: "Typical coronary artery disease risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1333049",
			Gene:        "9p21",
			Trait:       "Coronary heart disease",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityRisk, Description: "Elevated coronary heart disease risk"},
				"CG": {Severity: domain.SeverityModerate, Description: "Moderately elevated risk"},
				"GG": {Severity: domain.SeverityNormal, Description: "Typical risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1801133",
			Gene:        "MTHFR C677T",
			Trait:       "Homocysteine level, thrombosis risk",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityRisk, Description: "Reduced MTHFR activity (~30%), elevated homocysteine"},
				"CT": {Severity: domain.SeverityModerate, Description: "Moderately reduced MTHFR activity (~65%)"},
				"CC": {Severity: domain.SeverityNormal, Description: "Normal MTHFR activity"},
			},
		},
		domain.MarkerDefinition{
			RSID:       "rs1801131",
			Gene:       "MTHFR A1298C",
			Trait:      "Folate metabolism",
			RiskAllele: "C",
			// Consumer arrays report this marker on the opposite strand
			// from the literature convention used in this table.
			Orientation: domain.OrientationReverse,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityModerate, Description: "Reduced MTHFR activity (A1298C homozygous)"},
				"AC": {Severity: domain.SeverityInfo, Description: "Slightly reduced MTHFR activity (A1298C heterozygous)"},
				"AA": {Severity: domain.SeverityNormal, Description: "Normal A1298C activity"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs6025",
			Gene:        "F5 (Factor V Leiden)",
			Trait:       "Thrombophilia",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Factor V Leiden homozygous, high thrombosis risk"},
				"AG": {Severity: domain.SeverityRisk, Description: "Factor V Leiden carrier, elevated thrombosis risk"},
				"GG": {Severity: domain.SeverityNormal, Description: "No Factor V Leiden mutation"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1799963",
			Gene:        "F2 (Prothrombin G20210A)",
			Trait:       "Venous thrombosis",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Homozygous, high venous thrombosis risk"},
				"AG": {Severity: domain.SeverityRisk, Description: "Carrier, elevated venous thrombosis risk"},
				"GG": {Severity: domain.SeverityNormal, Description: "No prothrombin mutation"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1800562",
			Gene:        "HFE C282Y",
			Trait:       "Hereditary hemochromatosis (iron overload)",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "C282Y homozygous, high hemochromatosis risk"},
				"AG": {Severity: domain.SeverityModerate, Description: "C282Y carrier"},
				"GG": {Severity: domain.SeverityNormal, Description: "No C282Y mutation"},
			},
		},
	)
	if err != nil {
		return err
	}

	// Combined MTHFR status, ranked from the joint C677T/A1298C genotype.
	return base.RegisterCompound(domain.CompoundRule{
		Name:     "MTHFR combined status",
		Category: CategoryCardiovascular,
		Gene:     "MTHFR",
		Constituents: []domain.CompoundConstituent{
			{RSID: "rs1801133", Orientation: domain.OrientationForward},
			{RSID: "rs1801131", Orientation: domain.OrientationReverse},
		},
		Entries: []domain.CompoundEntry{
			{Genotypes: []string{"TT", "CC"}, Label: "severe", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Substantially reduced MTHFR activity (~10-20%)"}},
			{Genotypes: []string{"TT", "AC"}, Label: "severe", Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Substantially reduced MTHFR activity"}},
			{Genotypes: []string{"TT", "AA"}, Label: "moderate", Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "C677T homozygous, reduced MTHFR activity (~30%)"}},
			{Genotypes: []string{"CT", "CC"}, Label: "moderate", Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Compound genotype, moderately reduced activity"}},
			{Genotypes: []string{"CT", "AC"}, Label: "moderate", Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Compound heterozygous, moderately reduced activity"}},
			{Genotypes: []string{"CT", "AA"}, Label: "mild", Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "C677T heterozygous, slightly reduced activity (~65%)"}},
			{Genotypes: []string{"CC", "CC"}, Label: "mild", Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "A1298C homozygous, slightly reduced activity"}},
			{Genotypes: []string{"CC", "AC"}, Label: "normal", Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Normal MTHFR activity"}},
			{Genotypes: []string{"CC", "AA"}, Label: "normal", Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Normal MTHFR activity"}},
		},
		UnknownDescription: "MTHFR genotype combination not in the interpretation table, consult raw data",
	})
}
