package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerNutrition(base *Base) error {
	return base.Register(CategoryNutrition,
		domain.MarkerDefinition{
			RSID:        "rs4988235",
			Gene:        "MCM6/LCT",
			Trait:       "Lactase persistence",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityNormal, Description: "Lactase persistent, lactose tolerant"},
				"CT": {Severity: domain.SeverityNormal, Description: "Mostly lactase persistent, mild intolerance possible"},
				"CC": {Severity: domain.SeverityModerate, Description: "Lactase non-persistent, likely lactose intolerant as adult"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs762551",
			Gene:        "CYP1A2",
			Trait:       "Caffeine metabolism speed",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityNormal, Description: "Fast caffeine metabolizer"},
				"AC": {Severity: domain.SeverityInfo, Description: "Intermediate caffeine metabolizer"},
				"CC": {Severity: domain.SeverityModerate, Description: "Slow caffeine metabolizer, consider limiting intake"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs2282679",
			Gene:        "GC",
			Trait:       "Vitamin D binding protein levels",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityNormal, Description: "Typical vitamin D levels expected"},
				"AC": {Severity: domain.SeverityInfo, Description: "Slightly lower vitamin D levels possible"},
				"CC": {Severity: domain.SeverityModerate, Description: "Lower vitamin D levels, monitoring advised"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs7041",
			Gene:        "GC",
			Trait:       "Vitamin D transport",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityNormal, Description: "Efficient vitamin D transport"},
				"GT": {Severity: domain.SeverityInfo, Description: "Intermediate vitamin D transport"},
				"TT": {Severity: domain.SeverityInfo, Description: "Reduced vitamin D transport efficiency"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs855791",
			Gene:        "TMPRSS6",
			Trait:       "Iron levels",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityNormal, Description: "Typical iron levels"},
				"CT": {Severity: domain.SeverityInfo, Description: "Slightly lower iron levels possible"},
				"TT": {Severity: domain.SeverityModerate, Description: "Lower iron and hemoglobin levels, dietary iron matters more"},
			},
		},
	)
}
