// Package intent provides an HTTP client for the intent classifier sidecar
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "domovoy/internal/platform/errors"
	"domovoy/internal/platform/logger"
)

const (
	defaultTimeout = 5 * time.Second
	defaultUA      = "domovoy-intent"

	predictPath = "/predict"
)

// Prediction is one classifier verdict. Score is the raw model confidence;
// thresholding is the caller's business
type Prediction struct {
	Label string
	Score float64
}

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client calls the intent classifier
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults. BaseURL is required
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("intent"),
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Classify returns the classifier's verdict for text
func (c *Client) Classify(ctx context.Context, text string) (Prediction, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return Prediction{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "intent marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "intent new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Prediction{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "intent do failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("intent http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Prediction{}, perr.Newf(perr.ErrorCodeUnavailable, "intent unexpected status %d body %s", resp.StatusCode, string(tail))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "intent decode failed")
	}
	return Prediction{Label: out.Intent, Score: out.Confidence}, nil
}
