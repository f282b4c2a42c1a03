// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strataio/strata/internal/config"
	"github.com/strataio/strata/internal/layer"
)

// buildFramework wires the three layers with their readiness probes. Probes
// read the current configuration from the holder so hot reloads take effect
// without re-wiring.
func buildFramework(version string, holder *config.Holder) *layer.Framework {
	f := layer.NewFramework(version)

	f.Domain().Register(layer.Probe{
		Name: "settings",
		Check: func(context.Context) error {
			return layer.ValidateSettings(holder.Get().Settings)
		},
	})

	f.Infrastructure().Register(layer.Probe{
		Name: "data_dir",
		Check: func(context.Context) error {
			return checkWritable(holder.Get().DataDir)
		},
	})

	return f
}

func checkWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}
