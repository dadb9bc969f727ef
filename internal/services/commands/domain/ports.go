package domain

import (
	"context"

	"domovoy/internal/core/extract"
)

// RecorderPort persists one parse result
type RecorderPort interface {
	Record(ctx context.Context, in RecordInput) (Command, error)
}

// ReaderPort reads persisted commands
type ReaderPort interface {
	Recent(ctx context.Context, in ListInput) ([]Command, error)
	ListRange(ctx context.Context, in RangeInput) ([]Command, AfterKey, error)
}

// SlotsWriterPort rewrites the slots of a stored command
type SlotsWriterPort interface {
	UpdateSlots(ctx context.Context, id string, slots extract.SlotRecord) error
}
