// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/strataio/strata/internal/api"
	"github.com/strataio/strata/internal/config"
	"github.com/strataio/strata/internal/health"
	xglog "github.com/strataio/strata/internal/log"
	"github.com/strataio/strata/internal/telemetry"
	buildinfo "github.com/strataio/strata/internal/version"
)

var (
	version   = buildinfo.Version
	commit    = buildinfo.Commit
	buildDate = buildinfo.Date
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "healthcheck":
			os.Exit(runHealthcheckCLI(os.Args[2:]))
		case "status":
			os.Exit(runStatusCLI(os.Args[2:]))
		case "validate":
			os.Exit(runValidateCLI(os.Args[2:]))
		}
	}

	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	effectiveConfigPath := strings.TrimSpace(*configPath)

	loader := config.NewLoader(effectiveConfigPath, version)
	cfg, err := loader.Load()
	if err != nil {
		xglog.Configure(xglog.Config{Service: "strata", Version: version})
		logger := xglog.WithComponent("daemon")
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", effectiveConfigPath).
			Msg("failed to load configuration")
	}

	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: version,
	})
	logger := xglog.WithComponent("daemon")

	if effectiveConfigPath != "" {
		logger.Info().
			Str("event", "config.loaded").
			Str("source", "file").
			Str(xglog.FieldPath, effectiveConfigPath).
			Msg("loaded configuration from file")
	} else {
		logger.Info().
			Str("event", "config.loaded").
			Str("source", "defaults").
			Msg("loaded configuration from environment and defaults")
	}

	if err := health.PerformStartupChecks(ctx, cfg); err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "startup.check_failed").
			Msg("pre-flight checks failed")
	}

	tracer, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.TracingEnabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: version,
		Environment:    cfg.TracingEnvironment,
		ExporterType:   cfg.TracingExporter,
		Endpoint:       cfg.TracingEndpoint,
		SamplingRate:   cfg.TracingSampling,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "telemetry.init_failed").
			Msg("failed to initialise tracing")
	}

	holder := config.NewHolder(cfg, loader, effectiveConfigPath)
	if err := holder.Watch(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("event", "config.watch_failed").
			Msg("config hot reload disabled")
	}

	reloads := make(chan config.AppConfig, 1)
	holder.Subscribe(reloads)

	framework := buildFramework(version, holder)
	server := api.NewServer(cfg, framework)
	httpServer := server.HTTPServer()

	// Seed the snapshot so readers have a file before the first tick.
	if err := server.WriteSnapshot(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("event", "snapshot.seed_failed").
			Msg("could not write initial status snapshot")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return followReloads(gctx, version, reloads)
	})

	g.Go(func() error {
		logger.Info().
			Str("event", "server.starting").
			Str(xglog.FieldListenAddr, cfg.ListenAddr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info().Str("event", "server.stopping").Msg("shutting down HTTP server")
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SnapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := server.WriteSnapshot(gctx); err != nil {
					logger.Warn().
						Err(err).
						Str("event", "snapshot.write_failed").
						Msg("status snapshot write failed")
				}
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Str("event", "server.failed").Msg("daemon exited with error")
	}

	if err := tracer.Shutdown(context.Background()); err != nil {
		logger.Warn().Err(err).Str("event", "telemetry.shutdown_failed").Msg("tracer shutdown failed")
	}

	logger.Info().Str("event", "server.stopped").Msg("daemon stopped")
}

// followReloads re-applies logging settings after each successful config hot
// reload, so a changed logLevel or logService takes effect without a restart.
func followReloads(ctx context.Context, version string, updates <-chan config.AppConfig) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case next := <-updates:
			xglog.Configure(xglog.Config{
				Level:   next.LogLevel,
				Service: next.LogService,
				Version: version,
			})
			logger := xglog.WithComponent("daemon")
			logger.Info().
				Str("event", "config.applied").
				Str("log_level", next.LogLevel).
				Msg("applied reloaded configuration")
		}
	}
}
