package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Content metrics.
var (
	contentItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "featured_content_items",
			Help: "Number of featured-content items currently stored",
		},
	)

	contentOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "featured_content_operations_total",
			Help: "Featured-content operations by outcome",
		},
		[]string{"operation", "result"},
	)
)

// Operation label values.
const (
	opList   = "list"
	opGet    = "get"
	opCreate = "create"
	opDelete = "delete"
)

const resultSuccess = "success"
