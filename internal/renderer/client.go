// Package renderer talks to the out-of-process report composer, which owns
// all chart and PDF generation. This service only ships score payloads over
// and streams the rendered document back.
package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GreenGauge-Analytics/Scorecard/internal/esg"
)

// RenderRequest is the composer's input: the scored company plus the report.
type RenderRequest struct {
	Profile     esg.CompanyProfile `json:"company_profile"`
	Report      esg.ScoreReport    `json:"report"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type Client interface {
	Render(ctx context.Context, req RenderRequest) ([]byte, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		// PDF rendering is slower than the usual collaborator round trip.
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Render posts the score payload to the composer and returns the PDF bytes.
func (c *HTTPClient) Render(ctx context.Context, renderReq RenderRequest) ([]byte, error) {
	payload, err := json.Marshal(renderReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/render", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("renderer POST /render: %d %s", resp.StatusCode, string(body))
	}
	return body, nil
}
