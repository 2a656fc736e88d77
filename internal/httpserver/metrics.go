package httpserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	sessionsActive      prometheus.Gauge
	narrowings          *prometheus.CounterVec
	candidatesRemaining prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "wordle_cheat_sessions_active",
			Help: "Sessions currently held in memory",
		}),
		narrowings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_cheat_narrowings_total",
			Help: "Narrowing operations applied, by command kind",
		}, []string{"command"}),
		candidatesRemaining: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_cheat_candidates_remaining",
			Help:    "Candidates left in a session after a narrowing",
			Buckets: []float64{0, 1, 2, 5, 10, 50, 100, 500, 1000, 5000},
		}),
	}
}
