// Package api composes the HTTP API of the tzdetect server
package api

import (
	"context"
	"net/http"
	"time"

	"tzdetect/internal/core/version"
	"tzdetect/internal/modkit"
	"tzdetect/internal/modkit/httpkit"
	"tzdetect/internal/modkit/module"
	"tzdetect/internal/modkit/swaggerkit"
	"tzdetect/internal/platform/config"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"
	phttp "tzdetect/internal/platform/net/http"
	"tzdetect/internal/platform/net/middleware"
	"tzdetect/internal/platform/store"

	accmod "tzdetect/internal/services/accounts/module"
	tzdomain "tzdetect/internal/services/timezone/domain"
	tzmod "tzdetect/internal/services/timezone/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; modules apply their own TZDETECT_* prefixes
	Config config.Conf
	// Store may be nil; accounts routes are mounted only when it carries PG
	Store  *store.Store
	Logger *logger.Logger

	// Timezone overrides the env driven detector settings
	Timezone       tzmod.Options
	EnableProfiler bool
	EnableSwagger  bool
}

// Mounted exposes the modules Mount wired so callers can reach their ports
type Mounted struct {
	Timezone *tzmod.Module
	Accounts *accmod.Module // nil without a database
}

// Mount mounts the API service onto the given router.
// Server wide middleware goes first since chi rejects Use after routes
func Mount(ctx context.Context, r phttp.Router, opt Options) (*Mounted, error) {
	log := opt.Logger
	if log == nil {
		log = logger.Get()
	}
	apiCfg := opt.Config.Prefix("TZDETECT_API_")

	r.Use(middleware.Defaults(apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second))...)
	if origins := apiCfg.MayCSV("CORS", nil); len(origins) > 0 {
		r.Use(middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins, MaxAge: 300}))
	}
	r.Use(middleware.Heartbeat("/healthz"))

	deps := modkit.Deps{Log: *log, Cfg: opt.Config}
	if opt.Store != nil {
		deps.PG = opt.Store.PG
	}

	tz, err := tzmod.New(deps, opt.Timezone)
	if err != nil {
		return nil, err
	}
	out := &Mounted{Timezone: tz}
	mods := []module.Module{tz}

	if deps.HasPG() {
		acc := accmod.New(deps)
		if err := acc.Migrate(ctx); err != nil {
			return nil, perr.WithOp(err, "api.Mount")
		}
		// no-op when TZDETECT_ON is none
		module.MustPortsOf[tzdomain.IntegratorPort](tz).Attach(module.MustPortsOf[tzdomain.HookRegistry](acc))
		out.Accounts = acc
		mods = append(mods, acc)
	} else {
		log.Info().Msg("no database configured, accounts routes disabled")
	}

	r.Get("/version", phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(version.Info("tzdetect-api"))
	}))
	// swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(apiCfg.MayDuration("SLOW", 500*time.Millisecond)), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	log.Info().Strs("modules", names).Msg("api mounted")
	return out, nil
}
