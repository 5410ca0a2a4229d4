package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"smart-parking/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "parking"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	spotEvents    *prometheus.CounterVec
	occupiedSpots *prometheus.GaugeVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		spotEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spot_events_total",
			Help:      "Spot occupancy changes by event type and floor.",
		}, []string{"type", "floor"}),
		occupiedSpots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupied_spots",
			Help:      "Currently occupied spots per floor.",
		}, []string{"floor"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.spotEvents,
		m.occupiedSpots,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDroppedEvents exposes a counter read from the event dispatcher.
func (m *Metrics) RegisterDroppedEvents(read func() uint64) {
	m.registry.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "spot_events_dropped_total",
		Help:      "Spot events dropped because the dispatch buffer was full.",
	}, func() float64 { return float64(read()) }))
}

func (m *Metrics) SetFloorOccupancy(floor, occupied int) {
	m.occupiedSpots.WithLabelValues(strconv.Itoa(floor)).Set(float64(occupied))
}

func (m *Metrics) HandleSpotEvent(ev shared.SpotEvent) {
	floor := strconv.Itoa(ev.FloorNumber)
	m.spotEvents.WithLabelValues(string(ev.Type), floor).Inc()
	switch ev.Type {
	case shared.SpotOccupied:
		m.occupiedSpots.WithLabelValues(floor).Inc()
	case shared.SpotFreed:
		m.occupiedSpots.WithLabelValues(floor).Dec()
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
