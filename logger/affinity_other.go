//go:build !linux

package logger

// pinConsumer is a no-op on platforms without thread affinity support.
func pinConsumer(cpu, shardCount int) {}
