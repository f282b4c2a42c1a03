// SPDX-License-Identifier: MIT

// Package api provides the HTTP surface of the strata daemon: health and
// readiness probes, the status API and Prometheus metrics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/strataio/strata/internal/api/middleware"
	"github.com/strataio/strata/internal/config"
	"github.com/strataio/strata/internal/health"
	"github.com/strataio/strata/internal/layer"
	"github.com/strataio/strata/internal/snapshot"
)

// Server wires the framework, health manager and snapshot cache into one
// HTTP handler.
type Server struct {
	cfg           config.AppConfig
	framework     *layer.Framework
	healthManager *health.Manager
	cache         *snapshot.Cache
	writer        *snapshot.Writer
}

// NewServer creates the API server. The health manager gets one checker per
// layer so the probe endpoints report per-layer status.
func NewServer(cfg config.AppConfig, f *layer.Framework) *Server {
	hm := health.NewManager(cfg.Version)
	health.RegisterFramework(hm, f)
	f.Observe(observeProbeDuration)

	return &Server{
		cfg:           cfg,
		framework:     f,
		healthManager: hm,
		cache:         snapshot.NewCache(cfg.SnapshotTTL),
		writer:        snapshot.NewWriter(cfg.SnapshotPath()),
	}
}

// Router builds the chi router with the canonical middleware stack.
func (s *Server) Router() *chi.Mux {
	tracingService := ""
	if s.cfg.TracingEnabled {
		tracingService = s.cfg.LogService
	}

	r := middleware.NewRouter(middleware.StackConfig{
		EnableMetrics:   true,
		TracingService:  tracingService,
		EnableLogging:   true,
		EnableRateLimit: s.cfg.RateLimitEnabled,
		RateLimitRPM:    s.cfg.RateLimitRPM,
		RateLimitWindow: time.Minute,
	})

	r.Get("/healthz", s.healthManager.ServeHealth)
	r.Get("/readyz", s.healthManager.ServeReady)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/status/text", s.handleStatusText)
		r.Get("/layers", s.handleLayers)
	})

	return r
}

// WriteSnapshot evaluates the framework once, records metrics, updates the
// last-known-good cache and persists the snapshot file.
func (s *Server) WriteSnapshot(ctx context.Context) error {
	snap := s.framework.Snapshot(ctx)
	recordSnapshotMetrics(snap)
	s.cache.Set(snap)

	err := s.writer.Write(snap)
	recordSnapshotWrite(err)
	return err
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
