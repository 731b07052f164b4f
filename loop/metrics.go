package loop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cyclesTotal counts cycles by agent and result (found, unreachable).
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homeostat_cycles_total",
		Help: "Total feedback cycles by agent and search result",
	}, []string{"agent", "result"})

	// penaltyWeight is the weight produced by the latest cycle.
	penaltyWeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "homeostat_penalty_weight",
		Help: "Structure penalty weight after the latest cycle",
	}, []string{"agent"})

	// measuredNorm is the U² norm of the latest found path.
	measuredNorm = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "homeostat_measured_norm",
		Help: "Gowers U2 norm of the latest found path",
	}, []string{"agent"})

	pathLength = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homeostat_path_length_nodes",
		Help:    "Number of nodes on found paths",
		Buckets: prometheus.ExponentialBuckets(2, 2, 10), // 2 to 1024
	}, []string{"agent"})

	searchExpanded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homeostat_search_expanded_states",
		Help:    "Search states expanded per cycle",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
	}, []string{"agent"})

	cycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homeostat_cycle_duration_seconds",
		Help:    "Wall time of one feedback cycle",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	}, []string{"agent"})

	clampedCosts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homeostat_clamped_costs_total",
		Help: "Negative or NaN move costs clamped to zero",
	}, []string{"agent"})
)

const (
	resultFound       = "found"
	resultUnreachable = "unreachable"
)
