package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
	"github.com/GreenGauge-Analytics/Scorecard/internal/events"
	"github.com/GreenGauge-Analytics/Scorecard/internal/renderer"
)

type ScoresHandler struct {
	engine   *esg.Engine
	renderer renderer.Client
	events   events.Client
	stats    *stats
	logger   *slog.Logger
}

func NewScoresHandler(engine *esg.Engine, rc renderer.Client, ec events.Client, st *stats, logger *slog.Logger) *ScoresHandler {
	return &ScoresHandler{engine: engine, renderer: rc, events: ec, stats: st, logger: logger}
}

type ScoreResponse struct {
	ReportID        uuid.UUID  `json:"report_id"`
	Scores          esg.Scores `json:"scores"`
	Recommendations []string   `json:"recommendations"`
}

// Create computes the score report for a validated metrics record.
// POST /api/v1/scores
func (h *ScoresHandler) Create(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	report := h.engine.Compute(rec)
	resp := ScoreResponse{
		ReportID:        uuid.New(),
		Scores:          report.Scores,
		Recommendations: report.Recommendations,
	}

	h.stats.scoreComputed()
	scoresComputed.WithLabelValues(string(rec.Profile.Industry)).Inc()
	h.publishScore(resp, rec.Profile.Industry)

	writeJSON(w, http.StatusOK, resp)
}

// Report computes the score and has the report composer render it as a PDF.
// POST /api/v1/scores/report
func (h *ScoresHandler) Report(w http.ResponseWriter, r *http.Request) {
	if h.renderer == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "report rendering not configured"})
		return
	}

	rec, ok := h.decodeRecord(w, r)
	if !ok {
		return
	}

	report := h.engine.Compute(rec)
	pdf, err := h.renderer.Render(r.Context(), renderer.RenderRequest{
		Profile:     rec.Profile,
		Report:      report,
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("report rendering failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "report rendering failed"})
		return
	}

	h.stats.scoreComputed()
	scoresComputed.WithLabelValues(string(rec.Profile.Industry)).Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="esg_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *ScoresHandler) decodeRecord(w http.ResponseWriter, r *http.Request) (esg.Record, bool) {
	var rec esg.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return esg.Record{}, false
	}
	if err := validateRecord(rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return esg.Record{}, false
	}
	return rec, true
}

func (h *ScoresHandler) publishScore(resp ScoreResponse, industry esg.Industry) {
	if h.events == nil {
		return
	}
	err := h.events.Publish(events.SubjectScoreComputed(resp.ReportID.String()), events.ScoreComputedEvent{
		ReportID:        resp.ReportID.String(),
		Industry:        industry,
		Scores:          resp.Scores,
		Recommendations: resp.Recommendations,
		Timestamp:       time.Now().UTC(),
	})
	if err != nil {
		h.logger.Warn("failed to publish score event", "error", err)
	}
}

// validateRecord is the engine's validation boundary: the engine itself
// assumes in-range input, so everything out-of-range is rejected here.
func validateRecord(rec esg.Record) error {
	if !rec.Profile.Industry.Valid() {
		return fmt.Errorf("industry must be one of %v", esg.Industries())
	}
	if rec.Profile.AnnualRevenue <= 0 {
		return fmt.Errorf("annual_revenue must be positive")
	}
	if rec.Profile.TotalEmployees <= 0 {
		return fmt.Errorf("total_employees must be positive")
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"total_energy_consumption_kwh", rec.Environmental.TotalEnergyKWh},
		{"renewable_energy_kwh", rec.Environmental.RenewableEnergyKWh},
		{"total_water_consumption_liters", rec.Environmental.WaterLiters},
		{"waste_generated_kg", rec.Environmental.WasteGeneratedKg},
		{"waste_recycled_kg", rec.Environmental.WasteRecycledKg},
		{"female_employees", float64(rec.Social.FemaleEmployees)},
		{"employees_with_disabilities", float64(rec.Social.EmployeesWithDisabilities)},
		{"safety_accidents_count", float64(rec.Social.SafetyAccidents)},
		{"employees_trained_count", float64(rec.Social.EmployeesTrained)},
		{"harassment_complaints_count", float64(rec.Social.HarassmentComplaints)},
		{"regulatory_fines_paid", rec.Governance.RegulatoryFinesPaid},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative", f.name)
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
