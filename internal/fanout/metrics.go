package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officehub_fanout_events_published_total",
			Help: "Events accepted into the fan-out queue",
		},
		[]string{"kind"},
	)

	eventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "officehub_fanout_events_dropped_total",
			Help: "Events or deliveries dropped, by reason",
		},
		[]string{"reason"},
	)

	deliveries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "officehub_fanout_deliveries_total",
		Help: "Events handed to a session outbox",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "officehub_fanout_sessions",
		Help: "Live event sessions on this instance",
	})
)

const (
	dropQueueFull   = "queue_full"
	dropSessionFull = "session_full"
	dropSendError   = "send_error"
	dropEncode      = "encode"
)
