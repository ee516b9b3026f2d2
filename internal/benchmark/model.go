package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Model is the persisted benchmark artifact: one linear fit per sector code
// over [revenue, employees]. The on-disk format is JSON with string-keyed
// sector codes; see scripts/train_model.go for how it is produced.
//
// The inference contract is three numeric inputs
// [revenue, employees, industry_code] and one numeric output; any replacement
// model only has to honor that.
type Model struct {
	Version int                  `json:"version"`
	Sectors map[string]SectorFit `json:"sectors"`
}

// SectorFit holds the fitted intercept and coefficients for one sector.
type SectorFit struct {
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"` // [revenue, employees]
}

// LoadModel reads and validates a model artifact.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(m.Sectors) == 0 {
		return nil, fmt.Errorf("model has no sector fits")
	}
	for code, fit := range m.Sectors {
		if len(fit.Coefficients) != 2 {
			return nil, fmt.Errorf("sector %s: expected 2 coefficients, got %d", code, len(fit.Coefficients))
		}
	}
	return &m, nil
}

// Predict evaluates the fit for features [revenue, employees, industry_code].
// A sector code without its own fit uses the default sector's.
func (m *Model) Predict(features []float64) float64 {
	fit, ok := m.Sectors[strconv.Itoa(int(features[2]))]
	if !ok {
		fit, ok = m.Sectors[strconv.Itoa(defaultIndustryCode)]
	}
	if !ok {
		for _, f := range m.Sectors {
			fit = f
			break
		}
	}
	return fit.Intercept + floats.Dot(fit.Coefficients, features[:2])
}
