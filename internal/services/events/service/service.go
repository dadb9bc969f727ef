// Package service provides the events service implementation
package service

import (
	"context"

	dom "domovoy/internal/services/events/domain"
	"domovoy/internal/services/events/repo"
)

// Service implements domain.WriterPort directly against the CH repo
type Service struct {
	Storage repo.Storage
}

// New constructs a new events service
func New(storage repo.Storage) *Service {
	if storage == nil {
		panic("events.Service requires a non nil Storage")
	}
	return &Service{Storage: storage}
}

// WriteBatch implements domain.WriterPort
func (s *Service) WriteBatch(ctx context.Context, xs []dom.ParseEvent) error {
	return s.Storage.WriteBatch(ctx, xs)
}

// WriteOne implements domain.WriterPort
func (s *Service) WriteOne(ctx context.Context, x dom.ParseEvent) error {
	return s.Storage.WriteBatch(ctx, []dom.ParseEvent{x})
}
