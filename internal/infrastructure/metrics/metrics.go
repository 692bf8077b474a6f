// Package metrics expone métricas Prometheus de las llamadas al backend ERP.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores e histogramas del cliente.
type Metrics struct {
	registry *prometheus.Registry

	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec
	LoginsTotal            *prometheus.CounterVec
}

// New registra las métricas en un registry propio (sin el global de Prometheus).
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.BackendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Llamadas al backend ERP por método, recurso y resultado",
		},
		[]string{"method", "resource", "status"},
	)
	m.BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Duración de las llamadas al backend ERP",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)
	m.LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Intentos de login por resultado",
		},
		[]string{"result"},
	)

	registry.MustRegister(m.BackendRequestsTotal, m.BackendRequestDuration, m.LoginsTotal)
	return m
}

// RecordRequest implementa erpapi.RequestRecorder.
func (m *Metrics) RecordRequest(method, resource, status string, d time.Duration) {
	m.BackendRequestsTotal.WithLabelValues(method, resource, status).Inc()
	m.BackendRequestDuration.WithLabelValues(method, resource).Observe(d.Seconds())
}

// RecordLogin cuenta un intento de login ("ok" | "error").
func (m *Metrics) RecordLogin(result string) {
	m.LoginsTotal.WithLabelValues(result).Inc()
}

// Handler handler HTTP para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry expone el registry (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
