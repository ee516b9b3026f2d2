package esg

import (
	"log/slog"
)

// Engine computes ESG score reports. It is stateless after construction:
// Compute is a pure function of the record and the estimator's (read-only)
// model, so one Engine may serve concurrent requests without locking.
type Engine struct {
	estimator Estimator
	profiles  WeightProfiles
	logger    *slog.Logger
}

// NewEngine creates an Engine. The estimator is loaded once at startup and
// shared; profiles should already be validated.
func NewEngine(estimator Estimator, profiles WeightProfiles, logger *slog.Logger) *Engine {
	return &Engine{
		estimator: estimator,
		profiles:  profiles,
		logger:    logger,
	}
}

// Compute scores a fully-populated, already-validated record. Recommendations
// are appended in pillar order: environmental, social, governance.
func (e *Engine) Compute(rec Record) ScoreReport {
	predicted := e.estimator.Estimate(
		rec.Profile.AnnualRevenue,
		rec.Profile.TotalEmployees,
		rec.Profile.Industry,
	)

	envScore, envRecs := environmentalScore(rec.Environmental, predicted)
	socScore, socRecs := socialScore(rec.Social, rec.Profile.TotalEmployees)
	govScore, govRecs := governanceScore(rec.Governance)

	recs := []string{}
	recs = append(recs, envRecs...)
	recs = append(recs, socRecs...)
	recs = append(recs, govRecs...)

	w := e.profiles.For(rec.Profile.Industry)
	total := round2((envScore*w.E + socScore*w.S + govScore*w.G) / w.Sum())

	e.logger.Debug("score computed",
		"industry", rec.Profile.Industry,
		"environmental", envScore,
		"social", socScore,
		"governance", govScore,
		"total", total,
	)

	return ScoreReport{
		Scores: Scores{
			Environmental: envScore,
			Social:        socScore,
			Governance:    govScore,
			Total:         total,
		},
		Recommendations: recs,
	}
}
