// Package service contains the nlu parse workflow
package service

import (
	"context"
	"strings"
	"time"

	"domovoy/internal/core/extract"
	"domovoy/internal/platform/logger"
	"domovoy/internal/services/api/nlu/domain"
	commandsdom "domovoy/internal/services/commands/domain"
	eventsdom "domovoy/internal/services/events/domain"
)

// UnknownIntent is returned when the classifier is not confident enough
const UnknownIntent = "unknown_command"

// Config for the nlu service
type Config struct {
	// Threshold is the minimum classifier confidence; below it the intent
	// becomes UnknownIntent. Zero means the 0.6 default
	Threshold float64
}

// Service defines the service contract for nlu
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	extractor  *extract.Extractor
	classifier domain.ClassifierPort
	recorder   commandsdom.RecorderPort
	events     eventsdom.WriterPort
	cfg        Config
	log        logger.Logger
}

// New creates a new nlu service
func New(ex *extract.Extractor, p domain.Ports, cfg Config) *Svc {
	if ex == nil {
		panic("nlu.Service requires a non nil Extractor")
	}
	if p.Classifier == nil {
		panic("nlu.Service requires a Classifier port")
	}
	if p.Recorder == nil {
		panic("nlu.Service requires a Recorder port")
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.6
	}
	return &Svc{
		extractor:  ex,
		classifier: p.Classifier,
		recorder:   p.Recorder,
		events:     p.Events,
		cfg:        cfg,
		log:        *logger.Named("nlu"),
	}
}

// Parse classifies the utterance, extracts slots and persists the result
func (s *Svc) Parse(ctx context.Context, in domain.ParseInput) (domain.ParseResponse, error) {
	start := time.Now()

	// the whole pipeline and the echoed response see the lowercased utterance
	text := strings.ToLower(in.Text)

	pred, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return domain.ParseResponse{}, err
	}
	intent := pred.Label
	if pred.Score < s.cfg.Threshold {
		intent = UnknownIntent
	}

	slots, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return domain.ParseResponse{}, err
	}

	cmd, err := s.recorder.Record(ctx, commandsdom.RecordInput{
		Text:        text,
		Intent:      intent,
		IntentScore: pred.Score,
		Slots:       slots,
	})
	if err != nil {
		return domain.ParseResponse{}, err
	}

	// analytics are best effort and never fail a parse
	if s.events != nil {
		ev := eventsdom.ParseEvent{
			CommandID:   cmd.ID,
			CreatedAt:   cmd.CreatedAt,
			Intent:      intent,
			IntentScore: pred.Score,
			Slots:       slots,
			LatencyMs:   time.Since(start).Milliseconds(),
		}
		if err := s.events.WriteOne(ctx, ev); err != nil {
			s.log.Warn().Err(err).Str("command_id", cmd.ID).Msg("parse event write failed")
		}
	}

	return domain.ParseResponse{
		Text:        text,
		Intent:      intent,
		IntentScore: pred.Score,
		Entities:    slots,
	}, nil
}
