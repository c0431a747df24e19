// SPDX-License-Identifier: MIT

package lattice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notALatticeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "lattix",
	Subsystem: "lattice",
	Name:      "not_a_lattice_total",
	Help:      "Join/meet queries that found no unique bound, by operation.",
}, []string{"op"})
