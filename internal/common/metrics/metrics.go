// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_turns_processed_total",
			Help: "Total number of chat turns processed by the engine",
		},
		[]string{"intent"},
	)

	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_intents_classified_total",
			Help: "Total number of fresh intent classifications by resulting intent",
		},
		[]string{"intent"},
	)

	// Materializations distinguishes real creations from fallback previews.
	// origin is "remote" when the external creation call succeeded and
	// "fallback" when a local preview masked a failure.
	Materializations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_materializations_total",
			Help: "Total number of project materializations by intent and origin",
		},
		[]string{"intent", "origin"},
	)

	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_turn_duration_seconds",
			Help: "Duration of chat turn processing in seconds",
		},
		[]string{"intent"},
	)
)
