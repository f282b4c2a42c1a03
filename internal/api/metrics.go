// SPDX-License-Identifier: MIT

package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/strataio/strata/internal/layer"
)

var (
	layerReady = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "strata_layer_ready",
		Help: "Layer readiness (1 = ready, 0 = not ready)",
	}, []string{"layer"})

	statusRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "strata_status_requests_total",
		Help: "Number of status API requests served",
	})

	snapshotWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "strata_snapshot_writes_total",
		Help: "Number of status snapshot writes, by result",
	}, []string{"result"})

	probeDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "strata_probe_duration_seconds",
		Help:    "Duration of layer readiness probe evaluations",
		Buckets: prometheus.DefBuckets,
	}, []string{"layer", "probe"})
)

func observeProbeDuration(layerSlug, probe string, elapsed time.Duration, _ error) {
	probeDurationSeconds.WithLabelValues(layerSlug, probe).Observe(elapsed.Seconds())
}

func recordSnapshotMetrics(snap layer.StatusSnapshot) {
	for _, l := range snap.Layers {
		v := 0.0
		if l.Ready {
			v = 1.0
		}
		layerReady.WithLabelValues(layer.Name(l.Name).Slug()).Set(v)
	}
}

func recordSnapshotWrite(err error) {
	if err != nil {
		snapshotWritesTotal.WithLabelValues("error").Inc()
		return
	}
	snapshotWritesTotal.WithLabelValues("ok").Inc()
}
