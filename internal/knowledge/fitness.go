package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerFitness(base *Base) error {
	err := base.Register(CategoryFitness,
		domain.MarkerDefinition{
			RSID:        "rs1815739",
			Gene:        "ACTN3",
			Trait:       "Fast-twitch muscle fiber composition",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityInfo, Description: "Two functional ACTN3 copies, power/sprint oriented"},
				"CT": {Severity: domain.SeverityInfo, Description: "Mixed muscle fiber profile"},
				"TT": {Severity: domain.SeverityInfo, Description: "ACTN3 deficient, endurance oriented"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs8192678",
			Gene:        "PPARGC1A",
			Trait:       "Aerobic capacity and mitochondrial biogenesis",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityInfo, Description: "Favorable aerobic capacity response to training"},
				"AG": {Severity: domain.SeverityInfo, Description: "Intermediate aerobic trainability"},
				"AA": {Severity: domain.SeverityInfo, Description: "Reduced aerobic trainability, consistency matters more"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs4253778",
			Gene:        "PPARA",
			Trait:       "Fatty acid oxidation during exercise",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"GG": {Severity: domain.SeverityInfo, Description: "Endurance-associated PPARA variant"},
				"CG": {Severity: domain.SeverityInfo, Description: "Mixed endurance/power PPARA profile"},
				"CC": {Severity: domain.SeverityInfo, Description: "Power-associated PPARA variant"},
			},
		},
	)
	if err != nil {
		return err
	}

	err = base.RegisterPanel(domain.TraitScorePanel{
		Name:     "Endurance potential",
		Category: CategoryFitness,
		Markers: []domain.TraitMarker{
			{
				RSID:        "rs1815739",
				Gene:        "ACTN3",
				Orientation: domain.OrientationForward,
				Weights:     map[string]float64{"TT": 2, "CT": 1, "CC": 0},
				MaxWeight:   2,
			},
			{
				RSID:        "rs8192678",
				Gene:        "PPARGC1A",
				Orientation: domain.OrientationForward,
				Weights:     map[string]float64{"GG": 2, "AG": 1, "AA": 0},
				MaxWeight:   2,
			},
			{
				RSID:        "rs4253778",
				Gene:        "PPARA",
				Orientation: domain.OrientationForward,
				Weights:     map[string]float64{"GG": 2, "CG": 1, "CC": 0},
				MaxWeight:   2,
			},
		},
		Bands: []domain.ScoreBand{
			{MinPercent: 70, Level: "high", Description: "Genetic profile favors endurance activities"},
			{MinPercent: 40, Level: "moderate", Description: "Mixed endurance profile"},
			{MinPercent: 0, Level: "low", Description: "Genetic profile less oriented toward endurance"},
		},
	})
	if err != nil {
		return err
	}

	return base.RegisterPanel(domain.TraitScorePanel{
		Name:     "Power and sprint potential",
		Category: CategoryFitness,
		Markers: []domain.TraitMarker{
			{
				RSID:        "rs1815739",
				Gene:        "ACTN3",
				Orientation: domain.OrientationForward,
				Weights:     map[string]float64{"CC": 2, "CT": 1, "TT": 0},
				MaxWeight:   2,
			},
			{
				RSID:        "rs4253778",
				Gene:        "PPARA",
				Orientation: domain.OrientationForward,
				Weights:     map[string]float64{"CC": 2, "CG": 1, "GG": 0},
				MaxWeight:   2,
			},
		},
		Bands: []domain.ScoreBand{
			{MinPercent: 70, Level: "high", Description: "Genetic profile favors power and sprint activities"},
			{MinPercent: 40, Level: "moderate", Description: "Mixed power profile"},
			{MinPercent: 0, Level: "low", Description: "Genetic profile less oriented toward power output"},
		},
	})
}
