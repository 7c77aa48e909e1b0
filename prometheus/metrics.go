// Package prometheus provides Prometheus instrumentation for carcheck services.
package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/carcheck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics holds Prometheus collectors for lookups.
type Metrics struct {
	Lookups        *prometheus.CounterVec
	CacheResults   *prometheus.CounterVec
	LookupDuration prometheus.Histogram
}

// NewMetrics registers and returns lookup collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carcheck_lookups_total",
			Help: "Total number of registration lookups, labeled by outcome",
		}, []string{"outcome"}),
		CacheResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "carcheck_lookup_cache_total",
			Help: "Total number of successful lookups, labeled by cache hit or miss",
		}, []string{"result"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "carcheck_lookup_duration_seconds",
			Help:    "Latency of registration lookups in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// Ensure InstrumentedLookupService implements carcheck.LookupService.
var _ carcheck.LookupService = (*InstrumentedLookupService)(nil)

// InstrumentedLookupService records lookup metrics around a LookupService.
type InstrumentedLookupService struct {
	next    carcheck.LookupService
	metrics *Metrics
}

// NewInstrumentedLookupService creates a new InstrumentedLookupService.
func NewInstrumentedLookupService(next carcheck.LookupService, metrics *Metrics) *InstrumentedLookupService {
	return &InstrumentedLookupService{next: next, metrics: metrics}
}

// Lookup delegates to the wrapped service and records outcome, cache use and latency.
func (s *InstrumentedLookupService) Lookup(ctx context.Context, registration string) (*carcheck.LookupResult, error) {
	begin := time.Now()
	result, err := s.next.Lookup(ctx, registration)
	s.metrics.LookupDuration.Observe(time.Since(begin).Seconds())

	if err != nil {
		s.metrics.Lookups.WithLabelValues(OutcomeError).Inc()
		return nil, err
	}

	if result.Status == carcheck.LookupFound {
		s.metrics.Lookups.WithLabelValues(OutcomeFound).Inc()
	} else {
		s.metrics.Lookups.WithLabelValues(OutcomeNotFound).Inc()
	}
	if result.Cached {
		s.metrics.CacheResults.WithLabelValues("hit").Inc()
	} else {
		s.metrics.CacheResults.WithLabelValues("miss").Inc()
	}

	return result, nil
}

// ListSaved delegates to the wrapped service.
func (s *InstrumentedLookupService) ListSaved(ctx context.Context, filter carcheck.RecordFilter) ([]*carcheck.Record, error) {
	return s.next.ListSaved(ctx, filter)
}

// Remove delegates to the wrapped service.
func (s *InstrumentedLookupService) Remove(ctx context.Context, id int64) error {
	return s.next.Remove(ctx, id)
}

// Share delegates to the wrapped service.
func (s *InstrumentedLookupService) Share(ctx context.Context, id int64) (string, error) {
	return s.next.Share(ctx, id)
}
