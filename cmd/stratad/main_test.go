// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataio/strata/internal/config"
	"github.com/strataio/strata/internal/layer"
	xglog "github.com/strataio/strata/internal/log"
)

func TestBuildFramework_Probes(t *testing.T) {
	dir := t.TempDir()
	cfg := config.AppConfig{
		DataDir:  dir,
		Settings: map[string]string{"upstream": "http://example.com"},
	}
	holder := config.NewHolder(cfg, config.NewLoader("", "v1.0.0"), "")

	f := buildFramework("v1.0.0", holder)
	assert.True(t, f.Ready(context.Background()))

	// A broken data dir must take infrastructure (and the application) down.
	brokenCfg := cfg
	brokenCfg.DataDir = dir + "/missing"
	brokenHolder := config.NewHolder(brokenCfg, config.NewLoader("", "v1.0.0"), "")

	f = buildFramework("v1.0.0", brokenHolder)
	assert.True(t, f.Domain().Ready(context.Background()))
	assert.False(t, f.Infrastructure().Ready(context.Background()))
	assert.False(t, f.Ready(context.Background()))
}

func TestBuildFramework_EmptySettingValue(t *testing.T) {
	cfg := config.AppConfig{
		DataDir:  t.TempDir(),
		Settings: map[string]string{"upstream": ""},
	}
	holder := config.NewHolder(cfg, config.NewLoader("", "v1.0.0"), "")

	f := buildFramework("v1.0.0", holder)
	assert.False(t, f.Domain().Ready(context.Background()))
	assert.False(t, f.Ready(context.Background()))
}

func TestCheckWritable(t *testing.T) {
	require.NoError(t, checkWritable(t.TempDir()))
	assert.Error(t, checkWritable(t.TempDir()+"/missing"))
}

func TestFollowReloads_ReappliesLogLevel(t *testing.T) {
	xglog.Configure(xglog.Config{Level: "info"})
	defer xglog.Configure(xglog.Config{Level: "info"})
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan config.AppConfig, 1)
	done := make(chan error, 1)
	go func() { done <- followReloads(ctx, "v1.0.0", updates) }()

	updates <- config.AppConfig{LogLevel: "error", LogService: "strata"}

	require.Eventually(t, func() bool {
		return zerolog.GlobalLevel() == zerolog.ErrorLevel
	}, time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestFormatSnapshot(t *testing.T) {
	f := layer.NewFramework("v1.0.0")
	out := formatSnapshot(f.Snapshot(context.Background()))

	want := "strata-v1.0.0\n" +
		"domain: ready=true\n" +
		"infrastructure: ready=true\n" +
		"application: ready=true\n"
	assert.Equal(t, want, out)
}
