package esg

// Industry is the fixed set of sectors the engine knows how to benchmark.
type Industry string

const (
	IndustryITServices    Industry = "IT/Services"
	IndustryManufacturing Industry = "Manufacturing"
	IndustryRetail        Industry = "Retail"
	IndustryCementSteel   Industry = "Cement/Steel"
	IndustryPharma        Industry = "Pharma"
)

// Industries lists every valid sector.
func Industries() []Industry {
	return []Industry{
		IndustryITServices,
		IndustryManufacturing,
		IndustryRetail,
		IndustryCementSteel,
		IndustryPharma,
	}
}

// Valid reports whether the industry is one of the known sectors.
func (i Industry) Valid() bool {
	switch i {
	case IndustryITServices, IndustryManufacturing, IndustryRetail,
		IndustryCementSteel, IndustryPharma:
		return true
	}
	return false
}

// CompanyProfile identifies the company being scored. Supplied once per
// scoring run and never mutated by the engine.
type CompanyProfile struct {
	Industry       Industry `json:"industry"`
	AnnualRevenue  float64  `json:"annual_revenue"`
	TotalEmployees int      `json:"total_employees"`
}

type EnvironmentalMetrics struct {
	TotalEnergyKWh     float64 `json:"total_energy_consumption_kwh"`
	RenewableEnergyKWh float64 `json:"renewable_energy_kwh"`
	WaterLiters        float64 `json:"total_water_consumption_liters"`
	WasteGeneratedKg   float64 `json:"waste_generated_kg"`
	WasteRecycledKg    float64 `json:"waste_recycled_kg"`
}

type SocialMetrics struct {
	FemaleEmployees           int `json:"female_employees"`
	EmployeesWithDisabilities int `json:"employees_with_disabilities"`
	SafetyAccidents           int `json:"safety_accidents_count"`
	EmployeesTrained          int `json:"employees_trained_count"`
	HarassmentComplaints      int `json:"harassment_complaints_count"`
}

type GovernanceMetrics struct {
	HasSustainabilityCommittee bool     `json:"has_sustainability_committee"`
	RegulatoryFinesPaid        float64  `json:"regulatory_fines_paid"`
	PoliciesImplemented        []string `json:"policies_implemented"`
}

// Record bundles everything the engine needs for one scoring run. The engine
// assumes the record has already passed the caller's validation boundary.
type Record struct {
	Profile       CompanyProfile       `json:"company_profile"`
	Environmental EnvironmentalMetrics `json:"environmental"`
	Social        SocialMetrics        `json:"social"`
	Governance    GovernanceMetrics    `json:"governance"`
}

// Scores holds the three pillar sub-scores and the weighted total, each
// rounded to two decimal places.
type Scores struct {
	Environmental float64 `json:"environmental"`
	Social        float64 `json:"social"`
	Governance    float64 `json:"governance"`
	Total         float64 `json:"total"`
}

// ScoreReport is the engine's output. Recommendations are ordered by
// evaluation: environmental findings first, then social, then governance.
type ScoreReport struct {
	Scores          Scores   `json:"scores"`
	Recommendations []string `json:"recommendations"`
}

// Estimator predicts the expected energy consumption (kWh) for a company,
// used as the normalization baseline for the environmental sub-score.
// Implementations must be safe for concurrent use after construction.
type Estimator interface {
	Estimate(revenue float64, employees int, industry Industry) float64
}
