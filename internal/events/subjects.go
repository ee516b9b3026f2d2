package events

const (
	SubjectBenchmarkDegraded = "esg.benchmark.degraded"

	StreamName   = "ESG_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectScoreComputed(reportID string) string { return "esg.score." + reportID + ".computed" }

func SubjectExtractionCompleted(extractionID string) string {
	return "esg.extract." + extractionID + ".completed"
}
