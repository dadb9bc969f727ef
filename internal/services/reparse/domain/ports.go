// Package domain defines the ports for the reparse job
package domain

import (
	"context"
	"time"

	commandsdom "domovoy/internal/services/commands/domain"
)

// RunnerPort is the external port for the reparse job
type RunnerPort interface {
	RunRange(ctx context.Context, start, end time.Time) error
}

// Ports are dependencies injected into the reparse module
type Ports struct {
	Reader commandsdom.ReaderPort      // required
	Slots  commandsdom.SlotsWriterPort // required
}
