// Package service contains stats workflows
package service

import (
	"context"
	"time"

	ptime "domovoy/internal/platform/time"
	"domovoy/internal/services/api/stats/domain"
	"domovoy/internal/services/api/stats/repo"
)

// Config for the stats service
type Config struct {
	MaxDays int
}

// Service defines the service contract for stats
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Storage repo.Storage
	Cfg     Config
}

// New creates a new stats service
func New(storage repo.Storage, cfg Config) *Svc {
	if storage == nil {
		panic("stats.Service requires a non nil Storage")
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = 90
	}
	return &Svc{Storage: storage, Cfg: cfg}
}

// slot column order is fixed so responses stay stable
var slotNames = []string{
	"room", "device", "value", "application",
	"video_title", "city", "weather", "alarm",
}

// SlotFill aggregates parse events over the trailing window
func (s *Svc) SlotFill(ctx context.Context, days int) (domain.SlotStatsResp, error) {
	if days <= 0 || days > s.Cfg.MaxDays {
		days = 7
	}
	since := ptime.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	rows, err := s.Storage.SlotFillByIntent(ctx, since)
	if err != nil {
		return domain.SlotStatsResp{}, err
	}

	resp := domain.SlotStatsResp{Days: days}
	fills := make([]int64, len(slotNames))
	for _, r := range rows {
		resp.Total += int64(r.Count)
		resp.Intents = append(resp.Intents, domain.IntentCount{Intent: r.Intent, Count: int64(r.Count)})
		for i, v := range []uint64{r.Room, r.Device, r.Value, r.App, r.Title, r.City, r.Weather, r.Alarm} {
			fills[i] += int64(v)
		}
	}
	resp.Slots = make([]domain.SlotFill, 0, len(slotNames))
	for i, name := range slotNames {
		resp.Slots = append(resp.Slots, domain.SlotFill{Slot: name, Filled: fills[i]})
	}
	return resp, nil
}
