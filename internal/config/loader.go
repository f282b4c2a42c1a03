// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/strataio/strata/internal/log"
)

// Environment variable names consumed by the loader.
const (
	EnvListen           = "STRATA_LISTEN"
	EnvDataDir          = "STRATA_DATA"
	EnvLogLevel         = "STRATA_LOG_LEVEL"
	EnvLogService       = "STRATA_LOG_SERVICE"
	EnvSnapshotInterval = "STRATA_SNAPSHOT_INTERVAL"
	EnvSnapshotTTL      = "STRATA_SNAPSHOT_TTL"
	EnvRateLimitEnabled = "STRATA_RATELIMIT_ENABLED"
	EnvRateLimitRPM     = "STRATA_RATELIMIT_RPM"
	EnvRateLimitBurst   = "STRATA_RATELIMIT_BURST"
	EnvTracingEnabled   = "STRATA_TRACING_ENABLED"
	EnvTracingExporter  = "STRATA_TRACING_EXPORTER"
	EnvTracingEndpoint  = "STRATA_TRACING_ENDPOINT"
	EnvTracingSampling  = "STRATA_TRACING_SAMPLING"
	EnvTracingEnv       = "STRATA_TRACING_ENV"
)

// Loader handles configuration loading with precedence ENV > file > defaults.
type Loader struct {
	configPath string
	version    string
}

// NewLoader creates a new configuration loader.
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath: configPath,
		version:    version,
	}
}

// Load loads configuration with precedence: ENV > File > Defaults.
// Order: defaults -> merge file (strict) -> apply env -> validate.
func (l *Loader) Load() (AppConfig, error) {
	cfg := AppConfig{}
	l.setDefaults(&cfg)

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		l.mergeFileConfig(&cfg, fileCfg)
	}

	l.applyEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (l *Loader) setDefaults(cfg *AppConfig) {
	cfg.Version = l.version
	cfg.ListenAddr = ":8088"
	cfg.DataDir = "/var/lib/strata"
	cfg.LogLevel = "info"
	cfg.LogService = "strata"
	cfg.SnapshotInterval = 30 * time.Second
	cfg.SnapshotTTL = 5 * time.Minute
	cfg.Settings = map[string]string{}
	cfg.RateLimitEnabled = true
	cfg.RateLimitRPM = 120
	cfg.RateLimitBurst = 20
	cfg.TracingEnabled = false
	cfg.TracingExporter = "grpc"
	cfg.TracingSampling = 0.1
	cfg.TracingEnvironment = "production"
}

func (l *Loader) mergeFileConfig(cfg *AppConfig, file *FileConfig) {
	if file.Listen != nil {
		cfg.ListenAddr = *file.Listen
	}
	if file.DataDir != nil {
		cfg.DataDir = *file.DataDir
	}
	if file.LogLevel != nil {
		cfg.LogLevel = *file.LogLevel
	}
	if file.LogService != nil {
		cfg.LogService = *file.LogService
	}
	if file.SnapshotInterval != nil {
		cfg.SnapshotInterval = parseFileDuration("snapshotInterval", *file.SnapshotInterval, cfg.SnapshotInterval)
	}
	if file.SnapshotTTL != nil {
		cfg.SnapshotTTL = parseFileDuration("snapshotTtl", *file.SnapshotTTL, cfg.SnapshotTTL)
	}
	for name, value := range file.Settings {
		cfg.Settings[name] = value
	}

	if file.RateLimit != nil {
		if file.RateLimit.Enabled != nil {
			cfg.RateLimitEnabled = *file.RateLimit.Enabled
		}
		if file.RateLimit.RPM != nil {
			cfg.RateLimitRPM = *file.RateLimit.RPM
		}
		if file.RateLimit.Burst != nil {
			cfg.RateLimitBurst = *file.RateLimit.Burst
		}
	}

	if file.Tracing != nil {
		if file.Tracing.Enabled != nil {
			cfg.TracingEnabled = *file.Tracing.Enabled
		}
		if file.Tracing.Exporter != nil {
			cfg.TracingExporter = *file.Tracing.Exporter
		}
		if file.Tracing.Endpoint != nil {
			cfg.TracingEndpoint = *file.Tracing.Endpoint
		}
		if file.Tracing.Sampling != nil {
			cfg.TracingSampling = *file.Tracing.Sampling
		}
		if file.Tracing.Environment != nil {
			cfg.TracingEnvironment = *file.Tracing.Environment
		}
	}
}

func parseFileDuration(key, value string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		logger := log.WithComponent("config")
		logger.Warn().
			Str("key", key).
			Str("value", value).
			Dur("default", defaultValue).
			Msg("invalid duration value, using default")
		return defaultValue
	}
	return d
}

func (l *Loader) applyEnv(cfg *AppConfig) {
	cfg.ListenAddr = ParseString(EnvListen, cfg.ListenAddr)
	cfg.DataDir = ParseString(EnvDataDir, cfg.DataDir)
	cfg.LogLevel = ParseString(EnvLogLevel, cfg.LogLevel)
	cfg.LogService = ParseString(EnvLogService, cfg.LogService)
	cfg.SnapshotInterval = ParseDuration(EnvSnapshotInterval, cfg.SnapshotInterval)
	cfg.SnapshotTTL = ParseDuration(EnvSnapshotTTL, cfg.SnapshotTTL)
	cfg.RateLimitEnabled = ParseBool(EnvRateLimitEnabled, cfg.RateLimitEnabled)
	cfg.RateLimitRPM = ParseInt(EnvRateLimitRPM, cfg.RateLimitRPM)
	cfg.RateLimitBurst = ParseInt(EnvRateLimitBurst, cfg.RateLimitBurst)
	cfg.TracingEnabled = ParseBool(EnvTracingEnabled, cfg.TracingEnabled)
	cfg.TracingExporter = ParseString(EnvTracingExporter, cfg.TracingExporter)
	cfg.TracingEndpoint = ParseString(EnvTracingEndpoint, cfg.TracingEndpoint)
	cfg.TracingSampling = ParseFloat(EnvTracingSampling, cfg.TracingSampling)
	cfg.TracingEnvironment = ParseString(EnvTracingEnv, cfg.TracingEnvironment)
}
