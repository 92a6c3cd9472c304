package partlist

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert, through the list or a partition.
	RecordInsert(duration time.Duration, err error)

	// RecordRemove is called after each single-element remove.
	RecordRemove(duration time.Duration, err error)

	// RecordSet is called after each replace.
	RecordSet(duration time.Duration, err error)

	// RecordBulkRemove is called after RemoveKey, RemoveFunc and Clear.
	// removed is the number of elements removed.
	RecordBulkRemove(removed int, duration time.Duration, err error)

	// RecordCascade is called after each index cascade with the number of
	// index entries it shifted.
	RecordCascade(touched int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)          {}
func (NoopMetricsCollector) RecordRemove(time.Duration, error)          {}
func (NoopMetricsCollector) RecordSet(time.Duration, error)             {}
func (NoopMetricsCollector) RecordBulkRemove(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCascade(int)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveErrors     atomic.Int64
	SetCount         atomic.Int64
	SetErrors        atomic.Int64
	BulkRemoveCount  atomic.Int64
	BulkRemoveItems  atomic.Int64
	BulkRemoveErrors atomic.Int64
	CascadeCount     atomic.Int64
	CascadeTouched   atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, err error) {
	b.RemoveCount.Add(1)
	if err != nil {
		b.RemoveErrors.Add(1)
	}
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(duration time.Duration, err error) {
	b.SetCount.Add(1)
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// RecordBulkRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkRemove(removed int, duration time.Duration, err error) {
	b.BulkRemoveCount.Add(1)
	b.BulkRemoveItems.Add(int64(removed))
	if err != nil {
		b.BulkRemoveErrors.Add(1)
	}
}

// RecordCascade implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCascade(touched int) {
	b.CascadeCount.Add(1)
	b.CascadeTouched.Add(int64(touched))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   b.getAvgInsertNanos(),
		RemoveCount:      b.RemoveCount.Load(),
		RemoveErrors:     b.RemoveErrors.Load(),
		SetCount:         b.SetCount.Load(),
		SetErrors:        b.SetErrors.Load(),
		BulkRemoveCount:  b.BulkRemoveCount.Load(),
		BulkRemoveItems:  b.BulkRemoveItems.Load(),
		BulkRemoveErrors: b.BulkRemoveErrors.Load(),
		CascadeCount:     b.CascadeCount.Load(),
		CascadeTouched:   b.CascadeTouched.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertErrors     int64
	InsertAvgNanos   int64
	RemoveCount      int64
	RemoveErrors     int64
	SetCount         int64
	SetErrors        int64
	BulkRemoveCount  int64
	BulkRemoveItems  int64
	BulkRemoveErrors int64
	CascadeCount     int64
	CascadeTouched   int64
}
