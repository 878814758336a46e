package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerCarrierStatus(base *Base) error {
	return base.Register(CategoryCarrierStatus,
		domain.MarkerDefinition{
			RSID:        "rs113993960",
			Gene:        "CFTR F508del",
			Trait:       "Cystic fibrosis (most common mutation, ~70% of cases)",
			RiskAllele:  "D",
			Orientation: domain.OrientationForward,
			// Arrays report this deletion as indel placeholders rather
			// than base pairs.
			Genotypes: map[string]domain.Interpretation{
				"II": {Severity: domain.SeverityNormal, Description: "No F508del deletion"},
				"DI": {Severity: domain.SeverityModerate, Description: "F508del carrier (heterozygous deletion)"},
				"DD": {Severity: domain.SeverityRisk, Description: "F508del homozygous, cystic fibrosis likely"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs334",
			Gene:        "HBB HbS",
			Trait:       "Sickle cell anemia",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityNormal, Description: "Normal hemoglobin (HbA)"},
				"AT": {Severity: domain.SeverityModerate, Description: "HbS carrier, sickle cell trait"},
				"TT": {Severity: domain.SeverityRisk, Description: "Sickle cell anemia (HbSS), medical follow-up indicated"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs80338939",
			Gene:        "HEXA",
			Trait:       "Tay-Sachs disease",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityNormal, Description: "No Tay-Sachs mutation"},
				"CT": {Severity: domain.SeverityModerate, Description: "Tay-Sachs mutation carrier"},
				"TT": {Severity: domain.SeverityRisk, Description: "Homozygous, Tay-Sachs disease"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs76763715",
			Gene:        "GBA N370S",
			Trait:       "Gaucher disease type 1 (most common mutation)",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityNormal, Description: "No N370S mutation"},
				"AG": {Severity: domain.SeverityModerate, Description: "N370S carrier"},
				"AA": {Severity: domain.SeverityRisk, Description: "N370S homozygous, Gaucher disease type 1"},
			},
		},
	)
}
