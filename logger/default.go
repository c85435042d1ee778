package logger

import "github.com/quicklog/quicklog/core"

// std is the process-wide logger used by the package-level functions.
// It is a convenience layer; programs that want isolated loggers can
// construct their own with New.
var std = New()

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

// Start initializes and starts the process-wide logger in one call.
// It returns the logger handle; the chosen shard count is available
// via ShardCount. The returned error carries sink open failures (the
// logger is still running with the sinks that did open) or a start
// failure.
func Start(cfg Config) (*Logger, error) {
	_, initErr := std.Initialize(cfg)
	if err := std.Start(); err != nil {
		return nil, err
	}
	return std, initErr
}

// Stop stops the process-wide logger.
func Stop() {
	std.Stop()
}

// Emit enqueues one record on the process-wide logger.
func Emit(severity core.Severity, shard int, template string, args ...any) bool {
	return std.Emit(severity, shard, template, args...)
}

// Error emits at ERROR severity using the process-wide logger.
func Error(shard int, template string, args ...any) bool {
	return std.Error(shard, template, args...)
}

// Warn emits at WARN severity using the process-wide logger.
func Warn(shard int, template string, args ...any) bool {
	return std.Warn(shard, template, args...)
}

// Fault emits at FAULT severity using the process-wide logger.
func Fault(shard int, template string, args ...any) bool {
	return std.Fault(shard, template, args...)
}

// Info emits at INFO severity using the process-wide logger.
func Info(shard int, template string, args ...any) bool {
	return std.Info(shard, template, args...)
}

// Debug emits at DEBUG severity using the process-wide logger.
func Debug(shard int, template string, args ...any) bool {
	return std.Debug(shard, template, args...)
}

// Trace emits at TRACE severity using the process-wide logger.
func Trace(shard int, template string, args ...any) bool {
	return std.Trace(shard, template, args...)
}
