// SPDX-License-Identifier: MIT

package layer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Framework wires the three layers together. The application layer depends
// on the domain and infrastructure layers, so its readiness is exactly the
// conjunction of theirs.
type Framework struct {
	version string
	domain  *Layer
	infra   *Layer
	app     *Layer
}

// NewFramework creates the three layers for the given framework version.
func NewFramework(version string) *Framework {
	domain := New(Domain, version)
	infra := New(Infrastructure, version)
	app := New(Application, version, domain, infra)

	return &Framework{
		version: version,
		domain:  domain,
		infra:   infra,
		app:     app,
	}
}

// Domain returns the domain layer.
func (f *Framework) Domain() *Layer { return f.domain }

// Infrastructure returns the infrastructure layer.
func (f *Framework) Infrastructure() *Layer { return f.infra }

// Application returns the application layer.
func (f *Framework) Application() *Layer { return f.app }

// Version returns the framework version.
func (f *Framework) Version() string { return f.version }

// Observe installs the probe observer on all three layers.
func (f *Framework) Observe(obs ProbeObserver) {
	f.domain.Observe(obs)
	f.infra.Observe(obs)
	f.app.Observe(obs)
}

// Identifier returns the framework identifier, e.g. "strata-v0.3.1".
func (f *Framework) Identifier() string {
	return fmt.Sprintf("%s-%s", FrameworkName, f.version)
}

// Ready reports whether the whole framework is ready to serve. This is the
// application layer's readiness, which already folds in the other layers.
func (f *Framework) Ready(ctx context.Context) bool {
	return f.app.Ready(ctx)
}

// Status returns a multi-line block with one readiness line per layer:
//
//	strata-v0.3.1
//	domain: ready=true
//	infrastructure: ready=true
//	application: ready=true
func (f *Framework) Status(ctx context.Context) string {
	var b strings.Builder
	b.WriteString(f.Identifier())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: ready=%t\n", f.domain.name.Slug(), f.domain.Ready(ctx))
	fmt.Fprintf(&b, "%s: ready=%t\n", f.infra.name.Slug(), f.infra.Ready(ctx))
	fmt.Fprintf(&b, "%s: ready=%t\n", f.app.name.Slug(), f.app.Ready(ctx))
	return b.String()
}

// LayerStatus is the JSON-facing readiness record of one layer.
type LayerStatus struct {
	Name       string   `json:"name"`
	Identifier string   `json:"identifier"`
	Ready      bool     `json:"ready"`
	Failing    []string `json:"failing,omitempty"`
}

// StatusSnapshot is the JSON-facing readiness record of the whole framework.
type StatusSnapshot struct {
	Framework string        `json:"framework"`
	Version   string        `json:"version"`
	Ready     bool          `json:"ready"`
	Layers    []LayerStatus `json:"layers"`
	Timestamp time.Time     `json:"timestamp"`
}

// Snapshot evaluates every layer once and returns the combined record.
func (f *Framework) Snapshot(ctx context.Context) StatusSnapshot {
	layers := make([]LayerStatus, 0, 3)
	for _, l := range []*Layer{f.domain, f.infra, f.app} {
		ready, failing := l.Readiness(ctx)
		layers = append(layers, LayerStatus{
			Name:       l.Name(),
			Identifier: l.Identifier(),
			Ready:      ready,
			Failing:    failing,
		})
	}

	return StatusSnapshot{
		Framework: FrameworkName,
		Version:   f.version,
		Ready:     layers[2].Ready,
		Layers:    layers,
		Timestamp: time.Now().UTC(),
	}
}
