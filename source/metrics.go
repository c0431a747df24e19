// SPDX-License-Identifier: MIT

package source

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var buildsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lattix",
	Subsystem: "source",
	Name:      "builds_total",
	Help:      "Lattice builds by source kind and outcome.",
}, []string{"kind", "outcome"})

// observeBuild counts one Build call.
func observeBuild(kind string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	buildsTotal.WithLabelValues(kind, outcome).Inc()
}
