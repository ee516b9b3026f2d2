package api

import (
	"net/http"
	"sync/atomic"
	"time"
)

// stats tracks in-process counters since startup. Scores are never persisted,
// so this is the only history the service keeps.
type stats struct {
	startedAt          time.Time
	scores             atomic.Int64
	extractions        atomic.Int64
	extractionFailures atomic.Int64
}

func newStats() *stats {
	return &stats{startedAt: time.Now()}
}

func (s *stats) scoreComputed() {
	s.scores.Add(1)
}

func (s *stats) extractionCompleted(failures int) {
	s.extractions.Add(1)
	s.extractionFailures.Add(int64(failures))
}

type AdminHandler struct {
	stats *stats
}

func NewAdminHandler(st *stats) *AdminHandler {
	return &AdminHandler{stats: st}
}

// Stats returns counters since process start.
// GET /api/v1/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scores_computed":     h.stats.scores.Load(),
		"extractions":         h.stats.extractions.Load(),
		"extraction_failures": h.stats.extractionFailures.Load(),
		"uptime_seconds":      int64(time.Since(h.stats.startedAt).Seconds()),
	})
}
