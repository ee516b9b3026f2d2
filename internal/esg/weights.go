package esg

import "fmt"

// WeightSet defines the relative importance of the three pillars. Weights do
// not need to sum to 1.0 — the engine divides by Sum() when combining, so a
// uniformly scaled set produces the same total.
type WeightSet struct {
	E float64
	S float64
	G float64
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() float64 {
	return w.E + w.S + w.G
}

// Validate checks that no weight is negative and the set is not all zero.
func (w WeightSet) Validate() error {
	for _, v := range []float64{w.E, w.S, w.G} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("weights sum to %f, must be positive", w.Sum())
	}
	return nil
}

// WeightProfiles maps industry risk classes to their weight sets.
// Energy-intensive sectors weight the environmental pillar hardest; people
// businesses shift weight to the social pillar.
type WeightProfiles struct {
	Default    WeightSet // Manufacturing, Retail and anything unclassified
	HighImpact WeightSet // Cement/Steel, Pharma
	Services   WeightSet // IT/Services
}

// DefaultProfiles returns the standard weight distribution.
func DefaultProfiles() WeightProfiles {
	return WeightProfiles{
		Default:    WeightSet{E: 0.4, S: 0.3, G: 0.3},
		HighImpact: WeightSet{E: 0.6, S: 0.2, G: 0.2},
		Services:   WeightSet{E: 0.2, S: 0.5, G: 0.3},
	}
}

// For selects the weight set for an industry.
func (p WeightProfiles) For(industry Industry) WeightSet {
	switch industry {
	case IndustryCementSteel, IndustryPharma:
		return p.HighImpact
	case IndustryITServices:
		return p.Services
	default:
		return p.Default
	}
}

// Validate checks every profile.
func (p WeightProfiles) Validate() error {
	for name, w := range map[string]WeightSet{
		"default": p.Default, "high_impact": p.HighImpact, "services": p.Services,
	} {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
	}
	return nil
}
