// Package api provides the HTTP API for the application
package api

import (
	"domovoy/internal/core/lexicon"
	"domovoy/internal/platform/config"
	"domovoy/internal/platform/logger"
	phttp "domovoy/internal/platform/net/http"
	"domovoy/internal/platform/store"

	"domovoy/internal/modkit"
	"domovoy/internal/modkit/httpkit"
	"domovoy/internal/modkit/module"
	"domovoy/internal/modkit/swaggerkit"

	apicommands "domovoy/internal/services/api/commands/module"
	metamod "domovoy/internal/services/api/meta/module"
	nludom "domovoy/internal/services/api/nlu/domain"
	nlumod "domovoy/internal/services/api/nlu/module"
	statsmod "domovoy/internal/services/api/stats/module"

	// Worker modules own persistence; the API modules borrow their ports
	commandsmod "domovoy/internal/services/commands/module"
	eventsmod "domovoy/internal/services/events/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}

	pack := lexicon.MustLoad()

	// Construct the worker modules first and extract their ports
	commandsWorker := commandsmod.New(deps)
	eventsWorker := eventsmod.New(deps)

	cports := module.MustPortsOf[commandsmod.Ports](commandsWorker)
	eports := module.MustPortsOf[eventsmod.Ports](eventsWorker)

	// Inject the worker ports into the API modules
	nlu := nlumod.New(
		deps,
		pack,
		modkit.WithPorts(nludom.Ports{
			Recorder: cports.Recorder,
			Events:   eports.Writer,
		}),
	)
	commandsAPI := apicommands.New(
		deps,
		modkit.WithPorts(apicommands.Ports{
			Reader: cports.Reader,
		}),
	)

	mods := []module.Module{
		metamod.New(deps, pack),
		statsmod.New(deps),
		commandsWorker, // include workers so their ports are registered
		eventsWorker,
		nlu,
		commandsAPI,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
