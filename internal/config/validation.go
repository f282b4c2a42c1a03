// SPDX-License-Identifier: MIT

package config

import (
	"net"
	"strconv"
	"strings"

	"github.com/strataio/strata/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package.
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("DataDir", cfg.DataDir)

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		v.AddError("ListenAddr", "must not be empty", cfg.ListenAddr)
	} else if _, port, err := net.SplitHostPort(cfg.ListenAddr); err != nil {
		v.AddError("ListenAddr", "must be host:port", cfg.ListenAddr)
	} else if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		v.AddError("ListenAddr", "port must be between 0 and 65535", cfg.ListenAddr)
	}

	if _, err := validate.ParseLogLevel(cfg.LogLevel); err != nil {
		v.AddError("LogLevel", "must be one of debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.SnapshotInterval <= 0 {
		v.AddError("SnapshotInterval", "must be > 0", cfg.SnapshotInterval)
	}
	if cfg.SnapshotTTL < cfg.SnapshotInterval {
		v.AddError("SnapshotTTL", "must be >= SnapshotInterval", cfg.SnapshotTTL)
	}

	for name, value := range cfg.Settings {
		v.NotEmpty("Settings name", name)
		if name != "" {
			v.NotEmpty("Settings."+name, value)
		}
	}

	if cfg.RateLimitEnabled {
		v.Range("RateLimitRPM", cfg.RateLimitRPM, 1, 100000)
		v.Range("RateLimitBurst", cfg.RateLimitBurst, 1, 10000)
	}

	if cfg.TracingEnabled {
		switch cfg.TracingExporter {
		case "grpc", "http", "noop":
		default:
			v.AddError("TracingExporter", "must be grpc, http or noop", cfg.TracingExporter)
		}
		if cfg.TracingExporter != "noop" {
			v.NotEmpty("TracingEndpoint", cfg.TracingEndpoint)
		}
		if cfg.TracingSampling < 0 || cfg.TracingSampling > 1 {
			v.AddError("TracingSampling", "must be between 0.0 and 1.0", cfg.TracingSampling)
		}
	}

	return v.Err()
}
