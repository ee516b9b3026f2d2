package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scoresComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scorecard_scores_computed_total",
		Help: "Number of ESG score reports computed, by industry.",
	}, []string{"industry"})

	documentsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorecard_documents_extracted_total",
		Help: "Number of uploaded documents successfully decoded and extracted.",
	})

	extractionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorecard_extraction_failures_total",
		Help: "Number of uploaded documents that could not be decoded.",
	})

	// BenchmarkDegraded is 1 while the estimator runs on the heuristic
	// fallback instead of the trained model. Set once at startup.
	BenchmarkDegraded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scorecard_benchmark_degraded",
		Help: "1 when the benchmark estimator is in heuristic fallback mode.",
	})
)
