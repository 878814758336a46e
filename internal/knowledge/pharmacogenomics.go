package knowledge

import (
	"github.com/genome-annotator/internal/domain"
)

func registerPharmacogenomics(base *Base) error {
	err := base.Register(CategoryPharmacogenomics,
		domain.MarkerDefinition{
			RSID:        "rs4244285",
			Gene:        "CYP2C19*2",
			Trait:       "Metabolism of clopidogrel, omeprazole, some antidepressants",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Poor metabolizer, clopidogrel likely ineffective"},
				"AG": {Severity: domain.SeverityModerate, Description: "Intermediate metabolizer"},
				"GG": {Severity: domain.SeverityNormal, Description: "Normal metabolizer"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1065852",
			Gene:        "CYP2D6",
			Trait:       "Metabolism of codeine, tamoxifen, some antidepressants",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Poor metabolizer, codeine gives little analgesia"},
				"AG": {Severity: domain.SeverityModerate, Description: "Intermediate metabolizer"},
				"GG": {Severity: domain.SeverityNormal, Description: "Normal metabolizer"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs9923231",
			Gene:        "VKORC1",
			Trait:       "Warfarin sensitivity",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityRisk, Description: "High warfarin sensitivity, low starting dose indicated"},
				"CT": {Severity: domain.SeverityModerate, Description: "Intermediate warfarin sensitivity"},
				"CC": {Severity: domain.SeverityNormal, Description: "Standard warfarin dosing"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1799853",
			Gene:        "CYP2C9*2",
			Trait:       "Metabolism of warfarin and NSAIDs",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityRisk, Description: "Poor metabolizer, reduce warfarin dose"},
				"CT": {Severity: domain.SeverityModerate, Description: "Intermediate metabolizer"},
				"CC": {Severity: domain.SeverityNormal, Description: "Normal metabolizer"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs4149056",
			Gene:        "SLCO1B1",
			Trait:       "Statin transport, myopathy risk",
			RiskAllele:  "C",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"CC": {Severity: domain.SeverityRisk, Description: "High statin-induced myopathy risk"},
				"CT": {Severity: domain.SeverityModerate, Description: "Elevated myopathy risk"},
				"TT": {Severity: domain.SeverityNormal, Description: "Typical risk"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1800460",
			Gene:        "TPMT",
			Trait:       "Azathioprine metabolism",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityRisk, Description: "Poor metabolizer, azathioprine toxicity risk"},
				"AG": {Severity: domain.SeverityModerate, Description: "Intermediate metabolizer, dose reduction indicated"},
				"GG": {Severity: domain.SeverityNormal, Description: "Normal metabolizer"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs12248560",
			Gene:        "CYP2C19*17",
			Trait:       "Ultrarapid drug metabolism",
			RiskAllele:  "T",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"TT": {Severity: domain.SeverityModerate, Description: "Ultrarapid metabolizer, dose increase may be needed"},
				"CT": {Severity: domain.SeverityInfo, Description: "Rapid metabolizer"},
				"CC": {Severity: domain.SeverityNormal, Description: "Normal metabolizer"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1801280",
			Gene:        "NAT2*5",
			Trait:       "N-acetyltransferase 2 activity",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityModerate, Description: "Slow acetylator allele, elevated isoniazid toxicity risk"},
				"AG": {Severity: domain.SeverityInfo, Description: "Intermediate acetylator allele"},
				"GG": {Severity: domain.SeverityNormal, Description: "Fast acetylator allele"},
			},
		},
		domain.MarkerDefinition{
			RSID:        "rs1799930",
			Gene:        "NAT2*6",
			Trait:       "N-acetyltransferase 2 activity, second variant",
			RiskAllele:  "A",
			Orientation: domain.OrientationForward,
			Genotypes: map[string]domain.Interpretation{
				"AA": {Severity: domain.SeverityModerate, Description: "Slow acetylator allele"},
				"AG": {Severity: domain.SeverityInfo, Description: "Intermediate acetylator allele"},
				"GG": {Severity: domain.SeverityNormal, Description: "Fast acetylator allele"},
			},
		},
	)
	if err != nil {
		return err
	}

	// CYP2C19 metabolizer status from the joint *2 (loss of function) and
	// *17 (increased activity) genotype; one *17 copy compensates a single
	// *2 copy.
	err = base.RegisterCompound(domain.CompoundRule{
		Name:     "CYP2C19 metabolizer status",
		Category: CategoryPharmacogenomics,
		Gene:     "CYP2C19",
		Constituents: []domain.CompoundConstituent{
			{RSID: "rs4244285", Orientation: domain.OrientationForward},
			{RSID: "rs12248560", Orientation: domain.OrientationForward},
		},
		Entries: []domain.CompoundEntry{
			{Genotypes: []string{"AA", "CC"}, Label: "poor metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Poor metabolizer, clopidogrel likely ineffective"}},
			{Genotypes: []string{"AA", "CT"}, Label: "poor metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Poor metabolizer, clopidogrel likely ineffective"}},
			{Genotypes: []string{"AA", "TT"}, Label: "poor metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityRisk, Description: "Poor metabolizer, clopidogrel likely ineffective"}},
			{Genotypes: []string{"AG", "TT"}, Label: "normal metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Normal metabolizer, increased activity compensates the loss-of-function copy"}},
			{Genotypes: []string{"AG", "CT"}, Label: "intermediate metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Intermediate metabolizer"}},
			{Genotypes: []string{"AG", "CC"}, Label: "intermediate metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Intermediate metabolizer"}},
			{Genotypes: []string{"GG", "TT"}, Label: "ultrarapid metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Ultrarapid metabolizer, dose increase may be needed"}},
			{Genotypes: []string{"GG", "CT"}, Label: "rapid metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Rapid metabolizer"}},
			{Genotypes: []string{"GG", "CC"}, Label: "normal metabolizer",
				Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Normal metabolizer"}},
		},
		UnknownDescription: "CYP2C19 status could not be determined from this combination",
	})
	if err != nil {
		return err
	}

	// NAT2 acetylator status: each slow allele pair counts double, one
	// heterozygous variant counts once; three or more points means slow.
	return base.RegisterCompound(domain.CompoundRule{
		Name:     "NAT2 acetylator status",
		Category: CategoryPharmacogenomics,
		Gene:     "NAT2",
		Constituents: []domain.CompoundConstituent{
			{RSID: "rs1801280", Orientation: domain.OrientationForward},
			{RSID: "rs1799930", Orientation: domain.OrientationForward},
		},
		Entries: []domain.CompoundEntry{
			{Genotypes: []string{"GG", "GG"}, Label: "fast acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityNormal, Description: "Fast acetylator"}},
			{Genotypes: []string{"AG", "GG"}, Label: "intermediate acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Intermediate acetylator"}},
			{Genotypes: []string{"GG", "AG"}, Label: "intermediate acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Intermediate acetylator"}},
			{Genotypes: []string{"AG", "AG"}, Label: "intermediate acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Intermediate acetylator"}},
			{Genotypes: []string{"AA", "GG"}, Label: "intermediate acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Intermediate acetylator"}},
			{Genotypes: []string{"GG", "AA"}, Label: "intermediate acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityInfo, Description: "Intermediate acetylator"}},
			{Genotypes: []string{"AA", "AG"}, Label: "slow acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Slow acetylator, elevated toxicity risk for isoniazid and sulfonamides"}},
			{Genotypes: []string{"AG", "AA"}, Label: "slow acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Slow acetylator, elevated toxicity risk for isoniazid and sulfonamides"}},
			{Genotypes: []string{"AA", "AA"}, Label: "slow acetylator",
				Result: domain.Interpretation{Severity: domain.SeverityModerate, Description: "Slow acetylator, elevated toxicity risk for isoniazid and sulfonamides"}},
		},
		UnknownDescription: "NAT2 status could not be determined from this combination",
	})
}
