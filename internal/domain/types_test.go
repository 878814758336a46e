package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		severity Severity
		want     bool
	}{
		{"Normal", SeverityNormal, true},
		{"Moderate", SeverityModerate, true},
		{"Risk", SeverityRisk, true},
		{"Info", SeverityInfo, true},
		{"Not available", SeverityNotAvailable, true},
		{"Empty", Severity(""), false},
		{"Unknown tag", Severity("high"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.severity.IsValid())
		})
	}
}

func TestSeverity_Rank_OrdersRiskFirst(t *testing.T) {
	assert.Less(t, SeverityRisk.Rank(), SeverityModerate.Rank())
	assert.Less(t, SeverityModerate.Rank(), SeverityInfo.Rank())
	assert.Less(t, SeverityInfo.Rank(), SeverityNormal.Rank())
	assert.Less(t, SeverityNormal.Rank(), SeverityNotAvailable.Rank())
}

func TestNormalizeGenotype(t *testing.T) {
	tests := []struct {
		name     string
		genotype string
		want     string
	}{
		{"Already sorted", "AG", "AG"},
		{"Reversed order", "GA", "AG"},
		{"Homozygous", "TT", "TT"},
		{"Lowercase input", "ga", "AG"},
		{"Surrounding whitespace", " CT ", "CT"},
		{"No-call passes through", "--", "--"},
		{"Single allele passes through", "A", "A"},
		{"Indel placeholder sorted", "ID", "DI"},
		{"Insertion string unchanged", "ATG", "ATG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeGenotype(tt.genotype))
		})
	}
}

func TestComplementGenotype(t *testing.T) {
	tests := []struct {
		name     string
		genotype string
		want     string
	}{
		{"AG complements to TC", "AG", "TC"},
		{"CT complements to GA", "CT", "GA"},
		{"Homozygous", "CC", "GG"},
		{"Deletion placeholder unchanged", "D-", "D-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComplementGenotype(tt.genotype))
		})
	}
}

// Strand complement must be involutive: complementing twice restores the
// original call.
func TestComplementGenotype_Involutive(t *testing.T) {
	for _, g := range []string{"AG", "CT", "TT", "GG", "AC", "AT", "CG"} {
		assert.Equal(t, g, ComplementGenotype(ComplementGenotype(g)), "genotype %s", g)
	}
}

func TestIsNoCall(t *testing.T) {
	assert.True(t, IsNoCall(""))
	assert.True(t, IsNoCall("-"))
	assert.True(t, IsNoCall("--"))
	assert.True(t, IsNoCall("  "))
	assert.False(t, IsNoCall("AG"))
	assert.False(t, IsNoCall("DD"))
}

func TestMarkerDefinition_Validate(t *testing.T) {
	valid := MarkerDefinition{
		RSID:        "rs1801133",
		Category:    "cardiovascular",
		Gene:        "MTHFR",
		Orientation: OrientationForward,
		Genotypes: map[string]Interpretation{
			"CT": {Severity: SeverityModerate, Description: "reduced enzyme activity"},
		},
	}

	tests := []struct {
		name    string
		mutate  func(d *MarkerDefinition)
		wantErr bool
	}{
		{"Valid definition", func(d *MarkerDefinition) {}, false},
		{"Missing rsid", func(d *MarkerDefinition) { d.RSID = "" }, true},
		{"Missing category", func(d *MarkerDefinition) { d.Category = "" }, true},
		{"Bad orientation", func(d *MarkerDefinition) { d.Orientation = "antisense" }, true},
		{"Empty mapping", func(d *MarkerDefinition) { d.Genotypes = nil }, true},
		{"Bad severity in mapping", func(d *MarkerDefinition) {
			d.Genotypes = map[string]Interpretation{"CT": {Severity: "high"}}
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := valid
			tt.mutate(&def)
			err := def.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("Field failures carry a ValidationError", func(t *testing.T) {
		def := valid
		def.Genotypes = nil

		var vErr *ValidationError
		require.True(t, errors.As(def.Validate(), &vErr))
		assert.Equal(t, "genotypes", vErr.Field)
	})
}

func TestCompoundRule_Validate(t *testing.T) {
	valid := CompoundRule{
		Name:     "APOE",
		Category: "neurology",
		Gene:     "APOE",
		Constituents: []CompoundConstituent{
			{RSID: "rs429358", Orientation: OrientationForward},
			{RSID: "rs7412", Orientation: OrientationForward},
		},
		Entries: []CompoundEntry{
			{Genotypes: []string{"TT", "TT"}, Label: "e3/e3", Result: Interpretation{Severity: SeverityNormal}},
		},
	}

	t.Run("Valid rule", func(t *testing.T) {
		rule := valid
		assert.NoError(t, rule.Validate())
	})

	t.Run("Single constituent rejected", func(t *testing.T) {
		rule := valid
		rule.Constituents = rule.Constituents[:1]
		assert.Error(t, rule.Validate())
	})

	t.Run("Entry arity mismatch rejected", func(t *testing.T) {
		rule := valid
		rule.Entries = []CompoundEntry{{Genotypes: []string{"TT"}, Result: Interpretation{Severity: SeverityNormal}}}
		assert.Error(t, rule.Validate())
	})
}

func TestFinding_Covered(t *testing.T) {
	assert.True(t, Finding{Severity: SeverityRisk}.Covered())
	assert.True(t, Finding{Severity: SeverityInfo}.Covered())
	assert.False(t, Finding{Severity: SeverityNotAvailable}.Covered())
}
