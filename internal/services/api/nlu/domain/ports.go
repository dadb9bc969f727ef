package domain

import (
	"context"

	commandsdom "domovoy/internal/services/commands/domain"
	eventsdom "domovoy/internal/services/events/domain"
)

// Prediction is one classifier verdict seen by the service
type Prediction struct {
	Label string
	Score float64
}

// ClassifierPort returns the intent of an utterance
type ClassifierPort interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// ServicePort defines the service contract for nlu
type ServicePort interface {
	Parse(ctx context.Context, in ParseInput) (ParseResponse, error)
}

// Ports are dependencies injected into the nlu module
type Ports struct {
	Classifier ClassifierPort           // required
	Recorder   commandsdom.RecorderPort // required
	Events     eventsdom.WriterPort     // optional, nil disables analytics
}
