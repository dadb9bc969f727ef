// Package repo provides ClickHouse access for stats
package repo

import (
	"context"
	"time"

	"domovoy/internal/platform/store"
)

// IntentRow is one aggregated row from parse_events
type IntentRow struct {
	Intent  string
	Count   uint64
	Room    uint64
	Device  uint64
	Value   uint64
	App     uint64
	Title   uint64
	City    uint64
	Weather uint64
	Alarm   uint64
}

// Storage defines the stats repository
type Storage interface {
	SlotFillByIntent(ctx context.Context, since time.Time) ([]IntentRow, error)
}

// CH implements Storage against the ClickHouse seam
type CH struct{ ch store.Clickhouse }

// NewCH constructs a ClickHouse stats repository
func NewCH(ch store.Clickhouse) *CH { return &CH{ch: ch} }

// SlotFillByIntent implements Storage
func (s *CH) SlotFillByIntent(ctx context.Context, since time.Time) ([]IntentRow, error) {
	const sql = `
SELECT
	intent,
	count() AS n,
	sum(has_room),
	sum(has_device),
	sum(has_value),
	sum(has_application),
	sum(has_video_title),
	sum(has_city),
	sum(has_weather),
	sum(has_alarm)
FROM domovoy.parse_events
WHERE created_at >= ?
GROUP BY intent
ORDER BY n DESC`

	return store.Many(ctx, s.ch, scanIntentRow, sql, since)
}

func scanIntentRow(row store.Row) (IntentRow, error) {
	var r IntentRow
	err := row.Scan(
		&r.Intent, &r.Count,
		&r.Room, &r.Device, &r.Value, &r.App,
		&r.Title, &r.City, &r.Weather, &r.Alarm,
	)
	return r, err
}
