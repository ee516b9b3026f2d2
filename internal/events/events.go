package events

import (
	"time"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

type ScoreComputedEvent struct {
	ReportID        string       `json:"report_id"`
	Industry        esg.Industry `json:"industry"`
	Scores          esg.Scores   `json:"scores"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Timestamp       time.Time    `json:"timestamp"`
}

type ExtractionCompletedEvent struct {
	ExtractionID string       `json:"extraction_id"`
	Documents    int          `json:"documents"`
	Failures     int          `json:"failures"`
	Industry     esg.Industry `json:"industry"`
	Timestamp    time.Time    `json:"timestamp"`
}

type BenchmarkDegradedEvent struct {
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
