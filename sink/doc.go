// Package sink owns the output side of the logger: one append-mode
// file per severity under {directory}/logs/, plus an optional colored
// stdout stream.
//
// Every consumer writes every sink (a consumer drains one shard, and a
// shard carries records of all severities), so each file carries its
// own mutex and the stdout stream carries another. Lines are fully
// assembled before the lock is taken; the lock covers only the write
// syscall.
//
// A sink whose file failed to open stays absent for the session:
// writes to that severity are counted as dropped and otherwise
// ignored. A write failure is reported to stderr once per sink and the
// affected record is discarded; the logger never terminates the host
// process over sink I/O.
//
// The Stats type tracks processed, dropped, write-error, and
// format-error counts with atomic counters that can be read while the
// logger runs.
package sink
