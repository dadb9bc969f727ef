// Package service implements the reparse job. It walks stored commands in a
// time window and re-runs slot extraction against the current lexicon pack
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"domovoy/internal/core/extract"
	"domovoy/internal/platform/logger"
	commandsdom "domovoy/internal/services/commands/domain"
)

// Config for the reparse service
type Config struct {
	Workers  int
	PageSize int
	DryRun   bool
}

// Service implements domain.RunnerPort
type Service struct {
	Reader commandsdom.ReaderPort
	Slots  commandsdom.SlotsWriterPort
	Ex     *extract.Extractor
	Cfg    Config
	log    logger.Logger
}

// New constructs a new reparse service
func New(reader commandsdom.ReaderPort, slots commandsdom.SlotsWriterPort, ex *extract.Extractor, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	return &Service{
		Reader: reader,
		Slots:  slots,
		Ex:     ex,
		Cfg:    cfg,
		log:    *logger.Named("reparse"),
	}
}

// RunRange re-extracts slots for every command created in [start, end)
func (s *Service) RunRange(ctx context.Context, start, end time.Time) error {
	start = start.UTC()
	end = end.UTC()
	if end.Before(start) {
		return errors.New("end before start")
	}

	after := commandsdom.AfterKey{}
	var total, updated int
	for {
		rows, next, err := s.Reader.ListRange(ctx, commandsdom.RangeInput{
			Since: start, Until: end,
			After: after, Limit: s.Cfg.PageSize,
		})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			s.log.Info().Int("commands", total).Int("updated", updated).Msg("reparse done")
			return nil
		}
		total += len(rows)

		type result struct {
			slots extract.SlotRecord
			err   error
		}
		out := make([]result, len(rows))

		sem := make(chan struct{}, s.Cfg.Workers)
		wg := sync.WaitGroup{}
		for i := range rows {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer func() { <-sem; wg.Done() }()
				out[i].slots, out[i].err = s.Ex.Extract(ctx, rows[i].Text)
			}(i)
		}
		wg.Wait()

		for i := range rows {
			if err := out[i].err; err != nil {
				return err
			}
			if s.Cfg.DryRun {
				continue
			}
			if err := s.Slots.UpdateSlots(ctx, rows[i].ID, out[i].slots); err != nil {
				return err
			}
			updated++
		}

		after = next
	}
}
