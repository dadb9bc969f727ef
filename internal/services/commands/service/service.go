// Package service contains the commands workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"domovoy/internal/core/extract"
	"domovoy/internal/modkit/repokit"
	"domovoy/internal/services/commands/domain"
	"domovoy/internal/services/commands/repo"
)

// Config for the commands service
type Config struct {
	HardLimit int
}

// Service implements the recorder, reader and slots writer ports
type Service struct {
	Repo repo.Storage
	Cfg  Config
}

// New constructs a new commands service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Service {
	if db == nil {
		panic("commands.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("commands.Service requires a non nil Storage binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 100
	}
	return &Service{Repo: binder.Bind(db), Cfg: cfg}
}

// Record implements domain.RecorderPort
func (s *Service) Record(ctx context.Context, in domain.RecordInput) (domain.Command, error) {
	return s.Repo.Insert(ctx, uuid.New().String(), in)
}

// Recent implements domain.ReaderPort
func (s *Service) Recent(ctx context.Context, in domain.ListInput) ([]domain.Command, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.Cfg.HardLimit {
		limit = s.Cfg.HardLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	return s.Repo.Recent(ctx, limit, offset)
}

// ListRange implements domain.ReaderPort
func (s *Service) ListRange(ctx context.Context, in domain.RangeInput) ([]domain.Command, domain.AfterKey, error) {
	if in.Limit <= 0 {
		in.Limit = s.Cfg.HardLimit
	}
	return s.Repo.ListRange(ctx, in)
}

// UpdateSlots implements domain.SlotsWriterPort
func (s *Service) UpdateSlots(ctx context.Context, id string, slots extract.SlotRecord) error {
	return s.Repo.UpdateSlots(ctx, id, slots)
}
