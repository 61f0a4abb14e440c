// Package metrics expõe contadores Prometheus das requisições HTTP e das pesquisas.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os coletores registrados no Registry da aplicação.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	searches        *prometheus.CounterVec
	searchOffers    prometheus.Histogram
}

// New cria os coletores num Registry próprio, evitando o registro global.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "locadora_searches_total",
				Help: "Vehicle searches by outcome.",
			},
			[]string{"outcome"},
		),
		searchOffers: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "locadora_search_offers",
				Help:    "Offers returned per successful search.",
				Buckets: prometheus.LinearBuckets(0, 3, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration, m.searches, m.searchOffers} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware conta as requisições pelo padrão da rota (/locadoras/{id}, não o ID real).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requestCount.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// ObserveSearch registra o resultado de uma pesquisa.
// Cancelamentos do cliente contam como "canceled", não como "error".
func (m *Metrics) ObserveSearch(agencies, offers int, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		m.searches.WithLabelValues("canceled").Inc()
		return
	}
	if err != nil {
		m.searches.WithLabelValues("error").Inc()
		return
	}
	m.searches.WithLabelValues("success").Inc()
	m.searchOffers.Observe(float64(offers))
}

// Handler serve a exposição no formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
