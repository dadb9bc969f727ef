// Package module implements the reparse module
package module

import (
	"net/http"

	"domovoy/internal/adapters/annotate"
	"domovoy/internal/core/extract"
	"domovoy/internal/core/lexicon"
	"domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	"domovoy/internal/services/reparse/domain"
	"domovoy/internal/services/reparse/service"
)

// Ports exposed by the reparse module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new reparse module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reparse"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("reparse module: expected WithPorts(reparse/domain.Ports)")
	}
	if ports.Reader == nil || ports.Slots == nil {
		panic("reparse module: Ports missing Reader or Slots")
	}

	// Merge config + overrides
	cfg := FromConfig(deps.Cfg)
	if overrides.AnnotateURL != "" {
		cfg.AnnotateURL = overrides.AnnotateURL
	}
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}
	if overrides.PageSize != 0 {
		cfg.PageSize = overrides.PageSize
	}
	cfg.DryRun = overrides.DryRun

	if cfg.AnnotateURL == "" {
		panic("reparse module: annotate url is required (CORE_REPARSE_ANNOTATE_URL)")
	}

	ann := annotate.NewClient(annotate.Options{BaseURL: cfg.AnnotateURL})
	ex := extract.New(lexicon.MustLoad(), ann, ann)

	runner := service.New(ports.Reader, ports.Slots, ex, service.Config{
		Workers:  cfg.Workers,
		PageSize: cfg.PageSize,
		DryRun:   cfg.DryRun,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: runner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "reparse" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// Middlewares satisfies modkit.Module
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return nil }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(_ httpkit.Router) {}
