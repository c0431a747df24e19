// SPDX-License-Identifier: MIT

package poset

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	constructionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lattix",
		Subsystem: "poset",
		Name:      "constructions_total",
		Help:      "Poset constructions by outcome (ok, error).",
	}, []string{"outcome"})

	constructionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lattix",
		Subsystem: "poset",
		Name:      "construction_duration_seconds",
		Help:      "Wall time of poset construction, validation included.",
		Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
	})

	closureBuildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lattix",
		Subsystem: "poset",
		Name:      "closure_builds_total",
		Help:      "Closure computations by mode: one per matrix, one per on-demand row.",
	}, []string{"mode"})
)

// observeConstruction records outcome and duration of one construction.
func observeConstruction(start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	constructionsTotal.WithLabelValues(outcome).Inc()
	constructionDuration.Observe(time.Since(start).Seconds())
}
