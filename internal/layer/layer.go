// SPDX-License-Identifier: MIT

// Package layer models the Domain, Infrastructure and Application layers of
// a strata deployment and exposes their identity, readiness and status.
package layer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// FrameworkName is the fixed framework identity used in all identifiers.
const FrameworkName = "strata"

// Name is the documented name of an architectural layer.
type Name string

const (
	Domain         Name = "Domain"
	Infrastructure Name = "Infrastructure"
	Application    Name = "Application"
)

// IsValid reports whether the name is one of the three documented layers.
func (n Name) IsValid() bool {
	switch n {
	case Domain, Infrastructure, Application:
		return true
	default:
		return false
	}
}

// Slug returns the lowercase form used in identifiers.
func (n Name) Slug() string {
	return strings.ToLower(string(n))
}

// Probe reports whether one dependency of a layer is serviceable. A nil
// error means the dependency is ready.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// ProbeObserver receives the outcome of every probe evaluation, keyed by the
// owning layer's slug and the probe name.
type ProbeObserver func(layer, probe string, elapsed time.Duration, err error)

// Layer tracks the identity and readiness of one architectural layer. A
// layer is ready when all of its registered probes pass and all of its
// dependency layers are ready. A layer with no probes and no dependencies
// is ready.
type Layer struct {
	name    Name
	version string

	mu       sync.RWMutex
	probes   []Probe
	deps     []*Layer
	observer ProbeObserver
}

// New creates a layer with the given dependency layers.
func New(name Name, version string, deps ...*Layer) *Layer {
	return &Layer{
		name:    name,
		version: version,
		deps:    deps,
	}
}

// Name returns the fixed layer name.
func (l *Layer) Name() string {
	return string(l.name)
}

// Identifier returns the layer identifier, composed of the framework name,
// the framework version and the layer name.
func (l *Layer) Identifier() string {
	return fmt.Sprintf("%s-%s-%s", FrameworkName, l.version, l.name.Slug())
}

// Register adds a readiness probe to the layer.
func (l *Layer) Register(p Probe) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.probes = append(l.probes, p)
}

// Observe installs an observer that is invoked for every probe evaluation.
func (l *Layer) Observe(obs ProbeObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observer = obs
}

// Ready reports whether the layer and all of its dependency layers are ready.
func (l *Layer) Ready(ctx context.Context) bool {
	ready, _ := l.Readiness(ctx)
	return ready
}

// Readiness evaluates all probes and dependencies. The second return value
// lists the names of failing probes, qualified with the owning layer's slug
// for probes that failed in a dependency layer.
func (l *Layer) Readiness(ctx context.Context) (bool, []string) {
	var failing []string

	for _, dep := range l.dependencies() {
		ok, depFailing := dep.Readiness(ctx)
		if !ok {
			for _, name := range depFailing {
				failing = append(failing, dep.name.Slug()+"/"+name)
			}
		}
	}

	l.mu.RLock()
	probes := make([]Probe, len(l.probes))
	copy(probes, l.probes)
	obs := l.observer
	l.mu.RUnlock()

	for _, p := range probes {
		start := time.Now()
		err := p.Check(ctx)
		if obs != nil {
			obs(l.name.Slug(), p.Name, time.Since(start), err)
		}
		if err != nil {
			failing = append(failing, p.Name)
		}
	}

	sort.Strings(failing)
	return len(failing) == 0, failing
}

// Status returns a single line combining the layer identifier with its
// readiness, e.g. "strata-v0.3.1-application: ready=true".
func (l *Layer) Status(ctx context.Context) string {
	return fmt.Sprintf("%s: ready=%t", l.Identifier(), l.Ready(ctx))
}

func (l *Layer) dependencies() []*Layer {
	l.mu.RLock()
	defer l.mu.RUnlock()
	deps := make([]*Layer, len(l.deps))
	copy(deps, l.deps)
	return deps
}
