// Package module wires nlu into the API using modkit
package module

import (
	"context"
	"net/http"

	modkit "domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	str "domovoy/internal/platform/strings"

	"domovoy/internal/adapters/annotate"
	"domovoy/internal/adapters/intent"
	"domovoy/internal/core/extract"
	"domovoy/internal/core/lexicon"
	nludom "domovoy/internal/services/api/nlu/domain"
	nluhttp "domovoy/internal/services/api/nlu/http"
	nlusvc "domovoy/internal/services/api/nlu/service"
)

// Module implements the nlu module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     nludom.Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc nlusvc.Service
}

// New constructs the nlu module. Recorder and Events ports come in through
// modkit.WithPorts; the sidecar clients are built from module config. The
// lexicon pack is shared with the rest of the API
func New(deps modkit.Deps, pack *lexicon.Pack, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("nlu"), modkit.WithPrefix("/nlu")}, opts...)...)

	o := FromConfig(deps.Cfg)

	var p nludom.Ports
	if b.Ports != nil {
		p = b.Ports.(nludom.Ports)
	}
	if p.Classifier == nil {
		p.Classifier = classifierAdapter{c: intent.NewClient(intent.Options{
			BaseURL: o.IntentURL,
			Timeout: o.SidecarTimeout,
		})}
	}

	ann := annotate.NewClient(annotate.Options{
		BaseURL: o.AnnotateURL,
		Timeout: o.SidecarTimeout,
	})
	ex := extract.New(pack, ann, ann)

	svc := nlusvc.New(ex, p, nlusvc.Config{Threshold: o.Threshold})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     p,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		nluhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// classifierAdapter adapts the intent client to the domain port
type classifierAdapter struct{ c *intent.Client }

func (a classifierAdapter) Classify(ctx context.Context, text string) (nludom.Prediction, error) {
	pred, err := a.c.Classify(ctx, text)
	if err != nil {
		return nludom.Prediction{}, err
	}
	return nludom.Prediction{Label: pred.Label, Score: pred.Score}, nil
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
