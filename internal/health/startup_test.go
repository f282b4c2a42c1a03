// SPDX-License-Identifier: MIT

package health

import (
	"testing"
	"time"

	"github.com/strataio/strata/internal/config"
)

func startupConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		Version:          "v1.0.0",
		ListenAddr:       ":8088",
		DataDir:          t.TempDir(),
		LogLevel:         "info",
		LogService:       "strata-test",
		SnapshotInterval: time.Second,
		SnapshotTTL:      time.Minute,
		Settings:         map[string]string{"upstream": "http://example.com"},
	}
}
