// Package repo provides the ClickHouse repository for parse events
package repo

import (
	"context"

	"domovoy/internal/platform/store"
	"domovoy/internal/services/events/domain"
)

const table = "domovoy.parse_events"

// Storage defines the events repository
type Storage interface {
	WriteBatch(ctx context.Context, xs []domain.ParseEvent) error
}

// CH implements Storage against the ClickHouse seam
type CH struct{ ch store.Clickhouse }

// NewCH constructs a ClickHouse events repository
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// WriteBatch implements Storage. Column order must match the table DDL
func (s *CH) WriteBatch(ctx context.Context, xs []domain.ParseEvent) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, []any{
			x.CommandID,
			x.CreatedAt,
			x.Intent,
			x.IntentScore,
			filled(x.Slots.Room),
			filled(x.Slots.Device),
			filled(x.Slots.Value),
			filled(x.Slots.Application),
			filled(x.Slots.VideoTitle),
			filled(x.Slots.City),
			boolByte(x.Slots.Weather.Date != nil || x.Slots.Weather.Period != nil),
			boolByte(x.Slots.Alarm.Time != nil || x.Slots.Alarm.Date != nil || x.Slots.Alarm.Period != nil),
			x.LatencyMs,
		})
	}
	return s.ch.Insert(ctx, table, rows)
}

func filled(p *string) uint8 { return boolByte(p != nil && *p != "") }

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
