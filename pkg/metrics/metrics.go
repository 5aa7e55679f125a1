package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records profile save and username availability activity.
type Metrics struct {
	saveDuration *prometheus.HistogramVec
	saves        *prometheus.CounterVec
	availability *prometheus.CounterVec
}

// New registers the profile metrics on the provided registerer. A nil
// registerer yields a no-op instance.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	saveDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profile_save_duration_seconds",
		Help:    "Duration of profile save round trips in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	saves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_saves_total",
		Help: "Profile save attempts by outcome.",
	}, []string{"outcome"})
	availability := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "username_availability_checks_total",
		Help: "Username availability checks by verdict and source.",
	}, []string{"status", "source"})
	reg.MustRegister(saveDuration, saves, availability)
	return &Metrics{
		saveDuration: saveDuration,
		saves:        saves,
		availability: availability,
	}
}

// ObserveSave records one save attempt and its duration.
func (m *Metrics) ObserveSave(outcome string, duration time.Duration) {
	if m == nil || m.saves == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.saves.WithLabelValues(label).Inc()
	m.saveDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// AvailabilityCheck records one availability verdict. cacheHit marks answers
// served from the shared cache rather than the store.
func (m *Metrics) AvailabilityCheck(status string, cacheHit bool) {
	if m == nil || m.availability == nil {
		return
	}
	source := "store"
	if cacheHit {
		source = "cache"
	}
	m.availability.WithLabelValues(normalizeLabel(status), source).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
