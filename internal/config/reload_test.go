// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolder_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`listen: ":9090"`), 0600))

	loader := NewLoader(path, "v1.0.0")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)
	assert.Equal(t, ":9090", holder.Get().ListenAddr)

	require.NoError(t, os.WriteFile(path, []byte(`listen: ":7070"`), 0600))
	require.NoError(t, holder.Reload(context.Background()))
	assert.Equal(t, ":7070", holder.Get().ListenAddr)
}

func TestHolder_ReloadKeepsOldOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`listen: ":9090"`), 0600))

	loader := NewLoader(path, "v1.0.0")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)

	// Invalid config: validation must fail and the old config must survive.
	require.NoError(t, os.WriteFile(path, []byte(`logLevel: verbose`), 0600))
	require.Error(t, holder.Reload(context.Background()))
	assert.Equal(t, ":9090", holder.Get().ListenAddr)
	assert.Equal(t, "info", holder.Get().LogLevel)
}

func TestHolder_SubscribeNotified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`listen: ":9090"`), 0600))

	loader := NewLoader(path, "v1.0.0")
	initial, err := loader.Load()
	require.NoError(t, err)

	holder := NewHolder(initial, loader, path)
	updates := make(chan AppConfig, 1)
	holder.Subscribe(updates)

	require.NoError(t, os.WriteFile(path, []byte(`listen: ":6060"`), 0600))
	require.NoError(t, holder.Reload(context.Background()))

	select {
	case cfg := <-updates:
		assert.Equal(t, ":6060", cfg.ListenAddr)
	case <-time.After(time.Second):
		t.Fatal("no reload notification received")
	}
}
