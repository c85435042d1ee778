// Package logger is the public API of quicklog. Most users only need
// to import this package.
//
// A Logger moves through the lifecycle Fresh → Initialized → Running →
// Draining → Fresh. Initialize opens the per-severity sinks and sizes
// the shard array; Start spawns one consumer goroutine per shard and
// returns once every consumer has published its queue, which makes
// Emit safe for any shard index from that point on; Stop drains all
// shards, joins the consumers, closes the sinks, and returns the
// logger to Fresh so it can be initialized again.
//
// Emit is the producer hot path. It captures the timestamp, wraps the
// template and arguments in a pooled record (Ready when there are no
// arguments, Deferred otherwise) and pushes it onto the caller-chosen
// shard. String formatting always happens on the consumer, so Emit's
// cost is independent of template width and argument stringification.
//
// Shard selection is the caller's job: producers pass a shard index in
// [0, ShardCount) and are expected to partition themselves across
// shards to avoid contention. Records on one shard reach the sink in
// FIFO order; there is no ordering across shards, so readers that need
// a global order must sort by the embedded timestamp.
//
// Callers must not call Emit concurrently with Stop. Stop guarantees
// that every record accepted before it was called is written.
//
// The package also maintains a process-wide default Logger. The
// package-level Start, Stop, Emit, and per-severity helpers delegate
// to it, so a program that wants the singleton convenience can write:
//
//	log, _ := logger.Start(logger.Config{ShardCount: 4})
//	log.Info(0, "ready on port {}", 8080)
//	logger.Stop()
package logger
