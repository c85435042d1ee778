// Package formatter serializes records into the sink line format.
//
// The emitted line is
//
//	{Y}-{M}-{D} {h}:{m}:{s}.{ns}\t\tThread ID : {shardID}\t{text}\n
//
// with unpadded civil fields and nanosecond sub-seconds. The two tabs
// between the timestamp and "Thread ID" are part of the on-disk
// contract; downstream parsers split on them.
//
// AppendLine follows the standard library's Append style: it writes
// into a caller-provided byte slice and returns the extended slice, so
// a consumer that reuses one buffer per iteration formats lines
// without per-call allocations.
package formatter
