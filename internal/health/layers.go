// SPDX-License-Identifier: MIT

package health

import (
	"context"
	"strings"

	"github.com/strataio/strata/internal/layer"
)

// LayerChecker adapts an architectural layer into a health checker. A layer
// with failing probes reports unhealthy and lists the failing probe names.
type LayerChecker struct {
	layer *layer.Layer
}

// NewLayerChecker creates a checker for the given layer.
func NewLayerChecker(l *layer.Layer) *LayerChecker {
	return &LayerChecker{layer: l}
}

func (c *LayerChecker) Name() string {
	return layer.Name(c.layer.Name()).Slug()
}

func (c *LayerChecker) Check(ctx context.Context) CheckResult {
	ready, failing := c.layer.Readiness(ctx)
	if ready {
		return CheckResult{
			Status:  StatusHealthy,
			Message: c.layer.Identifier(),
		}
	}

	return CheckResult{
		Status:  StatusUnhealthy,
		Message: c.layer.Identifier(),
		Error:   "failing probes: " + strings.Join(failing, ", "),
	}
}

// RegisterFramework registers one checker per layer of the framework.
func RegisterFramework(m *Manager, f *layer.Framework) {
	m.RegisterChecker(NewLayerChecker(f.Domain()))
	m.RegisterChecker(NewLayerChecker(f.Infrastructure()))
	m.RegisterChecker(NewLayerChecker(f.Application()))
}
