// Package domain defines the core types and ports for the events service
package domain

import (
	"time"

	"domovoy/internal/core/extract"
)

// ParseEvent is one per-parse analytics row bound for ClickHouse
type ParseEvent struct {
	CommandID   string
	CreatedAt   time.Time
	Intent      string
	IntentScore float64
	Slots       extract.SlotRecord
	LatencyMs   int64
}
