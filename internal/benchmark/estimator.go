// Package benchmark predicts a company's expected energy consumption, the
// normalization baseline for the environmental sub-score. The trained model
// is loaded once at startup; when it is missing or corrupt the estimator
// degrades to a coarse revenue-linear heuristic instead of failing.
package benchmark

import (
	"fmt"
	"math"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

// industryCodes maps sectors to the model's feature encoding. Unknown
// industries fall back to the Manufacturing code.
var industryCodes = map[esg.Industry]int{
	esg.IndustryITServices:    0,
	esg.IndustryManufacturing: 1,
	esg.IndustryRetail:        2,
	esg.IndustryCementSteel:   3,
	esg.IndustryPharma:        4,
}

const defaultIndustryCode = 1

// IndustryCode returns the numeric feature encoding for a sector.
func IndustryCode(industry esg.Industry) int {
	if code, ok := industryCodes[industry]; ok {
		return code
	}
	return defaultIndustryCode
}

// TrainedEstimator wraps the persisted regression model.
type TrainedEstimator struct {
	model *Model
}

// Estimate runs model inference on [revenue, employees, industry_code],
// floored at 1.0 so downstream ratios never divide by zero.
func (t *TrainedEstimator) Estimate(revenue float64, employees int, industry esg.Industry) float64 {
	features := []float64{revenue, float64(employees), float64(IndustryCode(industry))}
	return math.Max(1.0, t.model.Predict(features))
}

// HeuristicEstimator is the degraded-mode fallback: a fixed linear rule of
// thumb tying expected consumption to revenue.
type HeuristicEstimator struct{}

// Estimate returns max(1.0, revenue * 0.005).
func (HeuristicEstimator) Estimate(revenue float64, _ int, _ esg.Industry) float64 {
	return math.Max(1.0, revenue*0.005)
}

// New builds the estimator for the model at path. Load failure is non-fatal:
// the heuristic fallback is returned together with the load error so the
// caller can log the degraded mode and keep serving.
func New(path string) (esg.Estimator, error) {
	model, err := LoadModel(path)
	if err != nil {
		return HeuristicEstimator{}, fmt.Errorf("load benchmark model: %w", err)
	}
	return &TrainedEstimator{model: model}, nil
}
