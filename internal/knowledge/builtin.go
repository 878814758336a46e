package knowledge

import (
	"fmt"
)

// Builtin assembles the knowledge base shipped with the binary: the
// curated per-category marker tables plus the compound rules and trait
// panels they feed. Definitions here are configuration data; the matching
// engine carries no per-marker branches.
func Builtin() (*Base, error) {
	base := NewBase()

	type categoryTable struct {
		name string
		load func(*Base) error
	}

	// Registration order drives report section ordering.
	tables := []categoryTable{
		{CategoryCardiovascular, registerCardiovascular},
		{CategoryNeurology, registerNeurology},
		{CategoryMetabolism, registerMetabolism},
		{CategoryPharmacogenomics, registerPharmacogenomics},
		{CategoryCarrierStatus, registerCarrierStatus},
		{CategoryNutrition, registerNutrition},
		{CategoryFitness, registerFitness},
	}

	for _, table := range tables {
		if err := table.load(base); err != nil {
			return nil, fmt.Errorf("building built-in knowledge base (%s): %w", table.name, err)
		}
	}

	return base, nil
}

// Built-in category names.
const (
	CategoryCardiovascular   = "cardiovascular"
	CategoryNeurology        = "neurology"
	CategoryMetabolism       = "metabolism"
	CategoryPharmacogenomics = "pharmacogenomics"
	CategoryCarrierStatus    = "carrier_status"
	CategoryNutrition        = "nutrition"
	CategoryFitness          = "fitness"
)
