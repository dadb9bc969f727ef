// Package module wires the command history into the API using modkit
package module

import (
	"net/http"

	modkit "domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	str "domovoy/internal/platform/strings"

	commandshttp "domovoy/internal/services/api/commands/http"
	commandsdom "domovoy/internal/services/commands/domain"
)

// Ports are dependencies injected into the API commands module
type Ports struct {
	Reader commandsdom.ReaderPort // required
}

// Module implements the API commands module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs the API commands module. The Reader port comes in through
// modkit.WithPorts from the worker commands module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("commands-api"), modkit.WithPrefix("/commands")}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Reader == nil {
		panic("commands-api module requires a Reader port")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     p,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		commandshttp.Register(r, p.Reader)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name is the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix is the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares is the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
