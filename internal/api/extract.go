package api

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GreenGauge-Analytics/Scorecard/internal/decode"
	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
	"github.com/GreenGauge-Analytics/Scorecard/internal/events"
	"github.com/GreenGauge-Analytics/Scorecard/internal/extract"
)

const maxUploadBytes = 32 << 20

type ExtractHandler struct {
	events events.Client
	stats  *stats
	logger *slog.Logger
}

func NewExtractHandler(ec events.Client, st *stats, logger *slog.Logger) *ExtractHandler {
	return &ExtractHandler{events: ec, stats: st, logger: logger}
}

// DocumentResult reports per-file extraction status. A failed document does
// not fail the request; it just contributes nothing to the merged record.
type DocumentResult struct {
	Filename  string `json:"filename"`
	Extracted bool   `json:"extracted"`
	Error     string `json:"error,omitempty"`
}

type ExtractResponse struct {
	ExtractionID uuid.UUID        `json:"extraction_id"`
	Record       esg.Record       `json:"record"`
	Documents    []DocumentResult `json:"documents"`
}

// Extract decodes each uploaded document, runs the metric extractor and
// merges the partial records in upload order — a later document's value
// overwrites an earlier one for any field it carries.
// POST /api/v1/extract (multipart, field "files")
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart request"})
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at least one file required"})
		return
	}

	var merged extract.PartialRecord
	results := make([]DocumentResult, 0, len(files))
	failures := 0

	for _, fh := range files {
		result := DocumentResult{Filename: fh.Filename}

		text, err := h.readDocument(fh)
		if err != nil {
			h.logger.Warn("document extraction failed", "filename", fh.Filename, "error", err)
			extractionFailures.Inc()
			failures++
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		merged.Merge(extract.Extract(text))
		documentsExtracted.Inc()
		result.Extracted = true
		results = append(results, result)
	}

	record := merged.Record()
	resp := ExtractResponse{
		ExtractionID: uuid.New(),
		Record:       record,
		Documents:    results,
	}

	h.stats.extractionCompleted(failures)
	h.publishExtraction(resp, len(files), failures)

	writeJSON(w, http.StatusOK, resp)
}

func (h *ExtractHandler) readDocument(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return decode.Text(fh.Filename, content)
}

func (h *ExtractHandler) publishExtraction(resp ExtractResponse, documents, failures int) {
	if h.events == nil {
		return
	}
	err := h.events.Publish(events.SubjectExtractionCompleted(resp.ExtractionID.String()), events.ExtractionCompletedEvent{
		ExtractionID: resp.ExtractionID.String(),
		Documents:    documents,
		Failures:     failures,
		Industry:     resp.Record.Profile.Industry,
		Timestamp:    time.Now().UTC(),
	})
	if err != nil {
		h.logger.Warn("failed to publish extraction event", "error", err)
	}
}
