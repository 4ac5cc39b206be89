package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "venue_insight"

// Metrics owns the service collectors on a private registry. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	venueSelections  prometheus.Counter
	loadsSuperseded  prometheus.Counter
	loadsFailed      prometheus.Counter
	intakeRejected   *prometheus.CounterVec
	uploadsCompleted prometheus.Counter
	insightBuildTime prometheus.Histogram
	insightCacheHits prometheus.Counter
	insightCacheMiss prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		venueSelections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venue_selections_total",
			Help:      "Total number of venue selections received",
		}),
		loadsSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venue_loads_superseded_total",
			Help:      "Pending venue loads cancelled by a newer selection",
		}),
		loadsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "venue_loads_failed_total",
			Help:      "Venue loads that ended in the failed state",
		}),
		intakeRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_rejections_total",
			Help:      "Candidate files rejected by the intake validator",
		}, []string{"reason"}),
		uploadsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_uploads_completed_total",
			Help:      "Simulated uploads that reached the uploaded state",
		}),
		insightBuildTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "insight_build_duration_seconds",
			Help:      "Duration of venue insight bundle builds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		insightCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_hits_total",
			Help:      "Chart projections served from the memo cache",
		}),
		insightCacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_misses_total",
			Help:      "Chart projections computed from repository data",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.venueSelections,
		m.loadsSuperseded,
		m.loadsFailed,
		m.intakeRejected,
		m.uploadsCompleted,
		m.insightBuildTime,
		m.insightCacheHits,
		m.insightCacheMiss,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) VenueSelected() {
	if m == nil {
		return
	}
	m.venueSelections.Inc()
}

func (m *Metrics) LoadSuperseded() {
	if m == nil {
		return
	}
	m.loadsSuperseded.Inc()
}

func (m *Metrics) LoadFailed() {
	if m == nil {
		return
	}
	m.loadsFailed.Inc()
}

func (m *Metrics) IntakeRejected(reason string) {
	if m == nil {
		return
	}
	m.intakeRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) UploadCompleted() {
	if m == nil {
		return
	}
	m.uploadsCompleted.Inc()
}

func (m *Metrics) ObserveInsightBuild(d time.Duration) {
	if m == nil {
		return
	}
	m.insightBuildTime.Observe(d.Seconds())
}

func (m *Metrics) ChartCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.insightCacheHits.Inc()
		return
	}
	m.insightCacheMiss.Inc()
}
