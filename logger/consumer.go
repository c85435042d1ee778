package logger

import (
	"runtime"

	"github.com/quicklog/quicklog/core"
	"github.com/quicklog/quicklog/formatter"
	"github.com/quicklog/quicklog/queue"
)

// consume is the per-shard worker. It creates and publishes the
// shard's queue, then drains it until the termination flag is set and
// the queue is empty.
func (l *Logger) consume(id, cpu int) {
	defer l.wg.Done()

	if l.pin {
		pinConsumer(cpu, l.shardCount)
	}

	q := queue.New()
	l.shards[id].Store(q)

	sinks := l.sinks
	stdout := sinks.StdoutEnabled()
	var buf []byte

	for {
		rec, ok := q.TryPop()
		if !ok {
			if l.terminate[id].Load() {
				// One more pop after observing the flag: a record
				// pushed between the failed pop and Stop must still
				// be drained.
				if rec, ok = q.TryPop(); !ok {
					break
				}
			} else {
				runtime.Gosched()
				continue
			}
		}

		text, err := rec.Finalize()
		if err != nil {
			sinks.Stats().IncrementFormatErrors()
		}

		buf = formatter.AppendLine(buf[:0], rec.Time, id, text)
		sinks.Append(rec.Severity, buf)
		if stdout {
			sinks.AppendStdout(rec.Severity, buf)
		}
		core.PutRecord(rec)
	}

	l.shards[id].Store(nil)
}
