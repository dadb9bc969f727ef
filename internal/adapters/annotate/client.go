// Package annotate provides an HTTP client for the NLP annotation sidecar.
// The sidecar owns tokenization, lemmatization and NER; this client only
// moves fixed-shape JSON across the wire
package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"domovoy/internal/core/extract"
	perr "domovoy/internal/platform/errors"
	"domovoy/internal/platform/logger"
)

const (
	defaultTimeout = 5 * time.Second
	defaultUA      = "domovoy-annotate"

	annotatePath = "/annotate"
	lemmaPath    = "/lemma"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client calls the annotation sidecar. It implements both extract.Annotator
// and extract.Lemmatizer
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
		log:  *logger.Named("annotate"),
	}
}

type wireToken struct {
	Lemma    string `json:"lemma"`
	Surface  string `json:"text"`
	IsStop   bool   `json:"is_stop"`
	IsPunct  bool   `json:"is_punct"`
	IsNumber bool   `json:"like_num"`
}

type wireEntity struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Tokens   []wireToken  `json:"tokens"`
	Entities []wireEntity `json:"entities"`
}

type lemmaRequest struct {
	Word string `json:"word"`
}

type lemmaResponse struct {
	Lemma string `json:"lemma"`
}

// Annotate returns tokens and named entities for text
func (c *Client) Annotate(ctx context.Context, text string) ([]extract.Token, []extract.Entity, error) {
	var out annotateResponse
	if err := c.post(ctx, annotatePath, annotateRequest{Text: text}, &out); err != nil {
		return nil, nil, err
	}

	toks := make([]extract.Token, 0, len(out.Tokens))
	for _, t := range out.Tokens {
		toks = append(toks, extract.Token{
			Lemma:    t.Lemma,
			Surface:  t.Surface,
			IsStop:   t.IsStop,
			IsPunct:  t.IsPunct,
			IsNumber: t.IsNumber,
		})
	}
	ents := make([]extract.Entity, 0, len(out.Entities))
	for _, e := range out.Entities {
		ents = append(ents, extract.Entity{Label: e.Label, Text: e.Text})
	}
	return toks, ents, nil
}

// Lemmatize returns the dictionary form of a single word
func (c *Client) Lemmatize(ctx context.Context, word string) (string, error) {
	var out lemmaResponse
	if err := c.post(ctx, lemmaPath, lemmaRequest{Word: word}, &out); err != nil {
		return "", err
	}
	if out.Lemma == "" {
		// sidecar found no parse, keep the word as-is
		return word, nil
	}
	return out.Lemma, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "annotate marshal failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "annotate new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "annotate do failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("annotate http response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Newf(perr.ErrorCodeUnavailable, "annotate unexpected status %d body %s", resp.StatusCode, string(tail))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "annotate decode failed")
	}
	return nil
}
