package logger

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/quicklog/quicklog/core"
	"github.com/quicklog/quicklog/queue"
	"github.com/quicklog/quicklog/sink"
)

// State is the logger's lifecycle state.
type State int32

const (
	// StateFresh is the state before Initialize and after Stop.
	StateFresh State = iota
	// StateInitialized means sinks are open and shards are allocated.
	StateInitialized
	// StateRunning means consumers are live and Emit is accepting.
	StateRunning
	// StateDraining is the transient state while Stop drains shards.
	StateDraining
)

// ErrNotInitialized is returned by Start when the logger is Fresh.
var ErrNotInitialized = errors.New("quicklog: logger is not initialized")

// Logger connects producers to per-shard consumer goroutines. The
// zero value (and New) is a Fresh logger.
type Logger struct {
	mu    sync.Mutex // serializes lifecycle transitions
	state atomic.Int32

	shardCount int
	pin        bool

	shards    []atomic.Pointer[queue.Queue]
	terminate []atomic.Bool
	wg        sync.WaitGroup

	sinks *sink.Set
	stats *sink.Stats
}

// New returns a Fresh logger.
func New() *Logger {
	return &Logger{}
}

// State returns the current lifecycle state.
func (l *Logger) State() State {
	return State(l.state.Load())
}

// ShardCount returns the active shard count, or zero when Fresh.
func (l *Logger) ShardCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.shardCount
}

// Stats returns the sink counters of the current (or, after Stop, the
// most recent) session. Nil before the first Initialize.
func (l *Logger) Stats() *sink.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

// Initialize opens the six per-severity sinks under
// {cfg.Directory}/logs/ and allocates the shard and termination
// arrays. It returns the shard count actually chosen.
//
// Calling Initialize on a logger that is not Fresh is a no-op that
// reports a diagnostic and returns the active shard count. A sink that
// fails to open is reported in the returned error; the logger stays
// initialized and writes to that severity are dropped (no unwind).
func (l *Logger) Initialize(cfg Config) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.State() != StateFresh {
		fmt.Fprintln(os.Stderr, "quicklog: Initialize called on an already-initialized logger")
		return l.shardCount, nil
	}

	cfg.applyDefaults()

	set, err := sink.Open(cfg.Directory, cfg.EnableStdout)
	if set == nil {
		return 0, err
	}

	l.sinks = set
	l.stats = set.Stats()
	l.shardCount = cfg.ShardCount
	l.pin = cfg.PinConsumers
	l.shards = make([]atomic.Pointer[queue.Queue], cfg.ShardCount)
	l.terminate = make([]atomic.Bool, cfg.ShardCount)
	l.state.Store(int32(StateInitialized))
	return l.shardCount, err
}

// Start spawns one consumer goroutine per shard and blocks until every
// consumer has published its queue. Emit accepts any shard index in
// [0, ShardCount) once Start returns.
//
// Start on a Running logger is a no-op that reports a diagnostic;
// Start on a Fresh logger returns ErrNotInitialized.
func (l *Logger) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.State() {
	case StateInitialized:
	case StateRunning:
		fmt.Fprintln(os.Stderr, "quicklog: Start called on an already-running logger")
		return nil
	default:
		return ErrNotInitialized
	}

	for i := 0; i < l.shardCount; i++ {
		l.wg.Add(1)
		go l.consume(i, i%runtime.NumCPU())
	}

	// Handoff barrier: each consumer stores its queue pointer with
	// release semantics; these acquire loads make the queues visible
	// to every producer that observes Start's return.
	for i := 0; i < l.shardCount; i++ {
		for l.shards[i].Load() == nil {
			runtime.Gosched()
		}
	}

	l.state.Store(int32(StateRunning))
	return nil
}

// Emit enqueues one record on the given shard. It returns false, with
// no side effects, when the severity is outside the defined set, the
// shard index is outside [0, ShardCount), or the shard's queue has not
// been published yet. The timestamp is captured before the push.
//
// Emit never blocks beyond the cost of a pooled allocation and a
// lock-free push. It must not be called concurrently with Stop.
func (l *Logger) Emit(severity core.Severity, shard int, template string, args ...any) bool {
	if !severity.Valid() || shard < 0 || shard >= len(l.shards) {
		return false
	}
	q := l.shards[shard].Load()
	if q == nil {
		return false
	}

	ts := time.Now()
	var rec *core.Record
	if len(args) == 0 {
		rec = core.NewReady(severity, ts, template)
	} else {
		rec = core.NewDeferred(severity, ts, template, args...)
	}
	q.Push(rec)
	return true
}

// Stop signals every consumer, waits for all shards to drain, closes
// the sinks, and resets the logger to Fresh. Every record accepted by
// Emit before Stop was called is written before Stop returns.
//
// Stop on a logger that is not Running is a no-op that reports a
// diagnostic.
func (l *Logger) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.State() != StateRunning {
		fmt.Fprintln(os.Stderr, "quicklog: Stop called on a logger that is not running")
		return
	}

	l.state.Store(int32(StateDraining))
	for i := range l.terminate {
		l.terminate[i].Store(true)
	}
	l.wg.Wait()

	if err := l.sinks.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "quicklog: closing sinks: %v\n", err)
	}

	l.sinks = nil
	l.shards = nil
	l.terminate = nil
	l.shardCount = 0
	l.state.Store(int32(StateFresh))
}

// Error emits at ERROR severity on the given shard.
func (l *Logger) Error(shard int, template string, args ...any) bool {
	return l.Emit(core.ErrorLevel, shard, template, args...)
}

// Warn emits at WARN severity on the given shard.
func (l *Logger) Warn(shard int, template string, args ...any) bool {
	return l.Emit(core.WarnLevel, shard, template, args...)
}

// Fault emits at FAULT severity on the given shard.
func (l *Logger) Fault(shard int, template string, args ...any) bool {
	return l.Emit(core.FaultLevel, shard, template, args...)
}

// Info emits at INFO severity on the given shard.
func (l *Logger) Info(shard int, template string, args ...any) bool {
	return l.Emit(core.InfoLevel, shard, template, args...)
}

// Debug emits at DEBUG severity on the given shard.
func (l *Logger) Debug(shard int, template string, args ...any) bool {
	return l.Emit(core.DebugLevel, shard, template, args...)
}

// Trace emits at TRACE severity on the given shard.
func (l *Logger) Trace(shard int, template string, args ...any) bool {
	return l.Emit(core.TraceLevel, shard, template, args...)
}
