// SPDX-License-Identifier: MIT

// Package config provides configuration management for the strata daemon.
// Configuration is loaded with precedence ENV > file > defaults.
package config

import (
	"path/filepath"
	"time"
)

// AppConfig is the fully merged daemon configuration.
type AppConfig struct {
	// Version is the framework version stamped by the loader.
	Version string

	// HTTP surface
	ListenAddr string

	// DataDir holds the status snapshot and scratch files.
	DataDir string

	// Logging
	LogLevel   string
	LogService string

	// Status snapshot persistence
	SnapshotInterval time.Duration
	SnapshotTTL      time.Duration

	// Settings are the named configuration values the domain layer
	// requires. Every entry must have a non-empty name and value.
	Settings map[string]string

	// Rate limiting for the status API
	RateLimitEnabled bool
	RateLimitRPM     int
	RateLimitBurst   int

	// Tracing
	TracingEnabled     bool
	TracingExporter    string
	TracingEndpoint    string
	TracingSampling    float64
	TracingEnvironment string
}

// SnapshotPath returns the path of the persisted status snapshot.
func (c AppConfig) SnapshotPath() string {
	return filepath.Join(c.DataDir, "status.json")
}
