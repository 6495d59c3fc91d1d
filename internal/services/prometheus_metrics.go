package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by the recorder.
const (
	MetricMalformedSkipped  = "records.malformed_skipped"
	MetricRecordOperation   = "records.operation"
	MetricRecordEvent       = "records.event_published"
	MetricAuthEvent         = "auth.event"
	MetricRecordFetch       = "records.fetch"
	MetricReportLoad        = "report.load"
	MetricReportTxCount     = "report.transaction_count"
	MetricExpiredTokens     = "auth.expired_tokens_removed"
)

type PrometheusMetrics struct {
	malformedSkipped   *prometheus.CounterVec
	recordOperations   *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec
	authEvents         *prometheus.CounterVec
	recordFetch        prometheus.Histogram
	reportLoad         prometheus.Histogram
	reportTransactions prometheus.Histogram
	expiredTokens      prometheus.Counter
}

// NewPrometheusMetrics registers the collectors on reg. Pass prometheus.DefaultRegisterer
// to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		malformedSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "malformed_records_skipped_total",
				Help: "Total number of malformed records left out of aggregations",
			},
			[]string{"kind", "reason"},
		),
		recordOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_operations_total",
				Help: "Total number of record store operations",
			},
			[]string{"operation", "kind", "status"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_events_published_total",
				Help: "Total number of record change events handed to the publisher",
			},
			[]string{"status"},
		),
		authEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		recordFetch: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "record_fetch_duration_milliseconds",
				Help:    "Record store call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportLoad: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_load_duration_milliseconds",
				Help:    "Report assembly duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_transactions",
				Help:    "Number of transactions loaded per report",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		expiredTokens: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "expired_blacklisted_tokens_removed_total",
				Help: "Total number of expired blacklisted tokens removed",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricMalformedSkipped:
		m.malformedSkipped.WithLabelValues(tags["kind"], tags["reason"]).Inc()
	case MetricRecordOperation:
		m.recordOperations.WithLabelValues(tags["operation"], tags["kind"], tags["status"]).Inc()
	case MetricRecordEvent:
		if status := tags["status"]; status != "" {
			m.eventsPublished.WithLabelValues(status).Inc()
		}
	case MetricAuthEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRecordFetch:
		m.recordFetch.Observe(float64(duration.Milliseconds()))
	case MetricReportLoad:
		m.reportLoad.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricReportTxCount:
		m.reportTransactions.Observe(value)
	case MetricExpiredTokens:
		if value > 0 {
			m.expiredTokens.Add(value)
		}
	}
}
