// Package api provides the HTTP API for the application
package api

import (
	"kycbridge/internal/platform/config"
	"kycbridge/internal/platform/logger"
	phttp "kycbridge/internal/platform/net/http"
	"kycbridge/internal/platform/store"

	"kycbridge/internal/modkit"
	"kycbridge/internal/modkit/httpkit"
	"kycbridge/internal/modkit/module"

	applicantsmod "kycbridge/internal/services/applicants/module"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Store  *store.Store
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	mods := []module.Module{
		applicantsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
