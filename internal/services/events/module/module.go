// Package module implements the events service module
package module

import (
	"domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	"domovoy/internal/services/events/domain"
	"domovoy/internal/services/events/repo"
	"domovoy/internal/services/events/service"
)

// Ports exposed by the events module
type Ports struct {
	Writer domain.WriterPort
}

// Module implements the events service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new events module
func New(deps modkit.Deps) *Module {
	svc := service.New(repo.NewCH(deps.CH))

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "events" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
