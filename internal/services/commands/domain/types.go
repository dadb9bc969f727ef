// Package domain defines the core types and ports for the commands service
package domain

import (
	"time"

	"domovoy/internal/core/extract"
)

// Command is one parsed utterance persisted with its slots
type Command struct {
	ID          string             `json:"id"`
	Text        string             `json:"text"`
	Intent      string             `json:"intent"`
	IntentScore float64            `json:"intent_score"`
	Slots       extract.SlotRecord `json:"slots"`
	CreatedAt   time.Time          `json:"created_at"`
}

// RecordInput is the payload for persisting one parse
type RecordInput struct {
	Text        string
	Intent      string
	IntentScore float64
	Slots       extract.SlotRecord
}

// ListInput pages the recent command history
type ListInput struct {
	Limit  int
	Offset int
}

// AfterKey is the keyset cursor for range listing
type AfterKey struct {
	CreatedAt time.Time
	ID        string
}

// RangeInput selects commands in a time window for batch jobs
type RangeInput struct {
	Since time.Time
	Until time.Time
	After AfterKey
	Limit int
}
