package searchapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_searches_total",
		Help: "Total number of searches by outcome",
	}, []string{"outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_search_duration_seconds",
		Help:    "Duration of a search including grid construction",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"outcome"})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_search_expanded_cells",
		Help:    "Number of cells finalised per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	searchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_search_errors_total",
		Help: "Total number of rejected or failed searches by reason",
	}, []string{"reason"})
)
