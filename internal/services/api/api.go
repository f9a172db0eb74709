// Package api provides the HTTP API for the application
package api

import (
	"zenhan/internal/platform/config"
	"zenhan/internal/platform/logger"
	phttp "zenhan/internal/platform/net/http"

	"zenhan/internal/modkit"
	"zenhan/internal/modkit/httpkit"
	"zenhan/internal/modkit/module"
	"zenhan/internal/modkit/swaggerkit"

	"zenhan/internal/core/jptext"
	"zenhan/internal/core/profile"

	metahttp "zenhan/internal/services/api/meta/http"
	metamod "zenhan/internal/services/api/meta/module"
	textmod "zenhan/internal/services/api/text/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Text           *jptext.Normalizer
	Profiles       *profile.Set
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:      opt.Config,
		Text:     opt.Text,
		Profiles: opt.Profiles,
	}

	// Construct the text module first and extract its probe port
	textModule := textmod.New(deps)
	probe := module.MustPortsOf[metahttp.Prober](textModule)

	// Inject the probe into the meta module so readiness exercises the engine
	metaModule := metamod.New(
		deps,
		modkit.WithPorts(metamod.Ports{
			Probe: probe,
		}),
	)

	mods := []module.Module{
		metaModule,
		textModule,
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
