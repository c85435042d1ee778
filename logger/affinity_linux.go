//go:build linux

package logger

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinConsumer pins the calling consumer to a CPU. Best-effort: the
// hint is skipped when there are more shards than CPUs, and a failed
// syscall only produces a diagnostic. The goroutine stays locked to
// its thread so the affinity mask cannot leak to unrelated goroutines;
// the thread is discarded when the consumer exits.
func pinConsumer(cpu, shardCount int) {
	ncpu := runtime.NumCPU()
	if shardCount > ncpu {
		return
	}
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu % ncpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		fmt.Fprintf(os.Stderr, "quicklog: consumer affinity hint failed: %v\n", err)
	}
}
