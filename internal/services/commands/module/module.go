// Package module implements the commands service module
package module

import (
	"domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	"domovoy/internal/modkit/repokit"
	"domovoy/internal/services/commands/domain"
	"domovoy/internal/services/commands/repo"
	"domovoy/internal/services/commands/service"
)

// Ports exposed by the commands module
type Ports struct {
	Recorder domain.RecorderPort
	Reader   domain.ReaderPort
	Slots    domain.SlotsWriterPort
}

// Module implements the commands service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new commands module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	binder := repo.NewPG()
	svc := service.New(repokit.TxRunner(deps.PG), binder, service.Config{
		HardLimit: opts.HardLimit,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Recorder: svc,
		Reader:   svc,
		Slots:    svc,
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "commands" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
