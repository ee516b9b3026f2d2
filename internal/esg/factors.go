package esg

import (
	"fmt"
	"math"
)

// --- Pillar evaluators ---
//
// Each evaluator returns its sub-score (rounded to 2 decimal places) plus any
// recommendations it raised, in evaluation order. Zero denominators are
// pre-empted with max(1, …) floors; the evaluators perform no other input
// validation.

// environmentalScore combines benchmark efficiency, renewable share and waste
// recycling. predicted is the Estimator's expected energy consumption.
func environmentalScore(env EnvironmentalMetrics, predicted float64) (float64, []string) {
	var score float64
	var recs []string

	// Benchmark efficiency: full 50 points at or under the predicted
	// consumption, linear falloff above it, zero at 100% excess.
	actual := math.Max(1, env.TotalEnergyKWh)
	if actual <= predicted {
		score += 50
	} else {
		excess := (actual - predicted) / predicted
		score += math.Max(0, 50*(1-excess))
		if excess > 0.2 {
			recs = append(recs, fmt.Sprintf("High Energy Usage: %d%% above industry standard.", int(excess*100)))
		}
	}

	// Renewable share: caps at 30 points once 30% of consumption is renewable.
	renPct := env.RenewableEnergyKWh / actual * 100
	score += math.Min(30, renPct/30*30)

	// Waste recycling: deliberately uncapped — recycled > generated (waste
	// imports, reporting lag) pushes this term above 20.
	gen := math.Max(1, env.WasteGeneratedKg)
	score += env.WasteRecycledKg / gen * 20

	return round2(score), recs
}

// socialScore combines workforce diversity, safety record and training reach.
func socialScore(soc SocialMetrics, totalEmployees int) (float64, []string) {
	var score float64
	var recs []string

	totalEmp := math.Max(1, float64(totalEmployees))

	// Diversity: caps at 40 points at a 40% female workforce.
	divPct := float64(soc.FemaleEmployees) / totalEmp * 100
	score += math.Min(40, divPct/40*40)

	// Safety is binary: any accident forfeits the full 30 points.
	if soc.SafetyAccidents == 0 {
		score += 30
	} else {
		recs = append(recs, "CRITICAL: Safety accidents reported. Immediate audit required.")
	}

	// Training: caps at 30 points once half the workforce is trained.
	trainPct := float64(soc.EmployeesTrained) / totalEmp * 100
	score += math.Min(30, trainPct/50*30)

	return round2(score), recs
}

// governanceScore combines policy coverage, regulatory record and committee
// presence. Capped at 100 by construction (50 + 30 + 20).
func governanceScore(gov GovernanceMetrics) (float64, []string) {
	var score float64
	var recs []string

	score += math.Min(50, float64(len(gov.PoliciesImplemented))*15)

	if gov.RegulatoryFinesPaid == 0 {
		score += 30
	} else {
		recs = append(recs, "Compliance Alert: Regulatory fines detected.")
	}

	if gov.HasSustainabilityCommittee {
		score += 20
	}

	return round2(score), recs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
