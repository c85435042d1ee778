package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"

	"github.com/quicklog/quicklog/ansi"
	"github.com/quicklog/quicklog/core"
)

// SessionBanner is written to each sink file when it is opened.
const SessionBanner = "\n\n-------------Starting new Session---------------\n\n"

// Set holds the six per-severity sink files and the optional colored
// stdout stream for one logger session.
type Set struct {
	files    [core.NumSeverities]*os.File
	mus      [core.NumSeverities]sync.Mutex
	reported [core.NumSeverities]atomic.Bool

	stdout   io.Writer
	stdoutMu sync.Mutex

	stats *Stats
}

// Open resolves the base directory, creates {dir}/logs/ and opens the
// six severity files in append mode, writing a session banner to each.
//
// A directory that does not exist (or is not a directory) is replaced
// by the current working directory. A file that fails to open is
// reported on stderr and left absent; the remaining sinks stay open
// and the returned error aggregates the failures. The Set is usable
// whenever at least the construction itself succeeded.
func Open(directory string, enableStdout bool) (*Set, error) {
	base := directory
	if info, err := os.Stat(base); base == "" || err != nil || !info.IsDir() {
		if cwd, err := os.Getwd(); err == nil {
			base = cwd
		} else {
			base = "."
		}
	}

	logDir := filepath.Join(base, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	s := &Set{stats: NewStats()}
	if enableStdout {
		s.stdout = colorable.NewColorableStdout()
	}

	var openErrs []error
	for sev := core.Severity(0); sev < core.NumSeverities; sev++ {
		path := filepath.Join(logDir, sev.String()+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "quicklog: unable to open sink %s: %v\n", path, err)
			openErrs = append(openErrs, fmt.Errorf("open %s: %w", path, err))
			continue
		}
		if _, err := f.WriteString(SessionBanner); err != nil {
			fmt.Fprintf(os.Stderr, "quicklog: unable to write session banner to %s: %v\n", path, err)
		}
		s.files[sev] = f
	}

	return s, errors.Join(openErrs...)
}

// Append writes one fully assembled line to the severity's file. A
// missing sink or a failed write discards the line; write failures are
// reported to stderr once per sink.
func (s *Set) Append(sev core.Severity, line []byte) {
	f := s.files[sev]
	if f == nil {
		s.stats.IncrementDropped(sev)
		return
	}

	s.mus[sev].Lock()
	_, err := f.Write(line)
	s.mus[sev].Unlock()

	if err != nil {
		s.stats.IncrementWriteErrors()
		s.stats.IncrementDropped(sev)
		if s.reported[sev].CompareAndSwap(false, true) {
			fmt.Fprintf(os.Stderr, "quicklog: write to %s sink failed: %v\n", sev, err)
		}
		return
	}
	s.stats.IncrementProcessed()
}

// StdoutEnabled reports whether the set carries a stdout stream.
func (s *Set) StdoutEnabled() bool {
	return s.stdout != nil
}

// AppendStdout writes the line to stdout wrapped in the severity's SGR
// color. The sequence is assembled into one Write call so concurrent
// consumers cannot interleave mid-line.
func (s *Set) AppendStdout(sev core.Severity, line []byte) {
	if s.stdout == nil {
		return
	}
	color := ansi.SeverityColor(sev)
	buf := make([]byte, 0, len(color)+len(line)+len(ansi.Reset))
	buf = append(buf, color...)
	buf = append(buf, line...)
	buf = append(buf, ansi.Reset...)

	s.stdoutMu.Lock()
	s.stdout.Write(buf)
	s.stdoutMu.Unlock()
}

// Stats returns the set's counters.
func (s *Set) Stats() *Stats {
	return s.stats
}

// Close closes every open sink file.
func (s *Set) Close() error {
	var errs []error
	for sev := range s.files {
		if s.files[sev] != nil {
			if err := s.files[sev].Close(); err != nil {
				errs = append(errs, err)
			}
			s.files[sev] = nil
		}
	}
	return errors.Join(errs...)
}
