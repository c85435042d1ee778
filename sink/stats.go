package sink

import (
	"sync/atomic"

	"github.com/quicklog/quicklog/core"
)

// Stats tracks sink counters. All methods are safe for concurrent use.
type Stats struct {
	// Processed counts records written to their severity file.
	Processed uint64
	// Dropped counts records discarded per severity (absent sink or
	// failed write).
	Dropped [core.NumSeverities]uint64
	// WriteErrors counts failed file writes.
	WriteErrors uint64
	// FormatErrors counts deferred payloads that failed to render and
	// were written as fallback lines.
	FormatErrors uint64
}

// NewStats creates a new Stats instance.
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter.
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.Processed, 1)
}

// IncrementDropped atomically increments the dropped counter for a severity.
func (s *Stats) IncrementDropped(sev core.Severity) {
	if sev.Valid() {
		atomic.AddUint64(&s.Dropped[sev], 1)
	}
}

// IncrementWriteErrors atomically increments the write-error counter.
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrors, 1)
}

// IncrementFormatErrors atomically increments the format-error counter.
func (s *Stats) IncrementFormatErrors() {
	atomic.AddUint64(&s.FormatErrors, 1)
}

// GetProcessed returns the processed count.
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.Processed)
}

// GetDropped returns the dropped count for a severity.
func (s *Stats) GetDropped(sev core.Severity) uint64 {
	if !sev.Valid() {
		return 0
	}
	return atomic.LoadUint64(&s.Dropped[sev])
}

// GetTotalDropped returns the dropped count summed over all severities.
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.Dropped {
		total += atomic.LoadUint64(&s.Dropped[i])
	}
	return total
}

// GetWriteErrors returns the write-error count.
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrors)
}

// GetFormatErrors returns the format-error count.
func (s *Stats) GetFormatErrors() uint64 {
	return atomic.LoadUint64(&s.FormatErrors)
}
