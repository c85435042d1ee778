// Package core defines the shared types used across the quicklog library.
//
// It provides the Severity type that selects the output sink for a
// record, and the Record type that represents a single pending log
// line on its way from a producer to a consumer.
//
// A Record carries either a ready-rendered string or a deferred
// payload: the format template plus an owning copy of the call-site
// arguments. Deferred payloads are rendered by Finalize, which runs on
// the consumer goroutine, so producers never pay for string formatting.
//
// Record objects are pooled via sync.Pool to keep the producer hot
// path cheap. NewReady and NewDeferred draw from the pool; the
// consumer must return each record with PutRecord after the sink
// write. A record is owned by exactly one goroutine at a time:
// the producer until Push, the queue while resident, the consumer
// until PutRecord.
package core
