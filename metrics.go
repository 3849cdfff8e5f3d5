package lexgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    indexCounter    prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordIndex(duration time.Duration, err error) {
//	    p.indexCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIndex is called after each index operation.
	// duration is the total time taken, err is nil if successful.
	RecordIndex(duration time.Duration, err error)

	// RecordBatchIndex is called after each batch index operation.
	// count is the number of documents attempted, duration is the total
	// time taken, err is nil if successful.
	RecordBatchIndex(count int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// hits is the number of results returned, duration is the time taken,
	// err is nil if successful.
	RecordSearch(hits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndex(time.Duration, error)           {}
func (NoopMetricsCollector) RecordBatchIndex(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexCount       atomic.Int64
	IndexErrors      atomic.Int64
	IndexTotalNanos  atomic.Int64
	BatchIndexCount  atomic.Int64
	BatchIndexDocs   atomic.Int64
	BatchIndexErrors atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchHits       atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordIndex records an index operation.
func (m *BasicMetricsCollector) RecordIndex(duration time.Duration, err error) {
	m.IndexCount.Add(1)
	m.IndexTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.IndexErrors.Add(1)
	}
}

// RecordBatchIndex records a batch index operation.
func (m *BasicMetricsCollector) RecordBatchIndex(count int, duration time.Duration, err error) {
	m.BatchIndexCount.Add(1)
	m.BatchIndexDocs.Add(int64(count))
	if err != nil {
		m.BatchIndexErrors.Add(1)
	}
}

// RecordSearch records a search operation.
func (m *BasicMetricsCollector) RecordSearch(hits int, duration time.Duration, err error) {
	m.SearchCount.Add(1)
	m.SearchHits.Add(int64(hits))
	m.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		m.SearchErrors.Add(1)
	}
}
