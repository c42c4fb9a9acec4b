// @title         tzdetect API
// @version       0.1.0
// @description   Timezone detection for addresses, plus accounts that carry a detected timezone
// @BasePath      /v1

// Command tzdetect-api serves timezone detection over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tzdetect/internal/modkit/repokit"
	"tzdetect/internal/platform/config"
	"tzdetect/internal/platform/logger"
	phttp "tzdetect/internal/platform/net/http"
	"tzdetect/internal/platform/store"

	"tzdetect/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := config.New()
	svcCfg := root.Prefix("TZDETECT_")

	// bring up logging early
	l := logger.Get()

	// postgres is optional (TZDETECT_PGSQL_DBURL)
	st, err := store.Open(ctx, store.ConfigFrom(svcCfg, "tzdetect-api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	// http server (reads TZDETECT_API_PORT)
	srv := phttp.NewServer(svcCfg)

	if _, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		Logger:         l,
		EnableProfiler: svcCfg.MayBool("API_PROFILER", false),
		EnableSwagger:  svcCfg.MayBool("API_SWAGGER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), svcCfg.MayDuration("API_SHUTDOWN_TIMEOUT", 10*time.Second))
		defer cancel()
		l.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		os.Exit(1)
	}
}
