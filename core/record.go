package core

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Record represents a single pending log line. The timestamp is
// captured on the producer before enqueue; the payload is either a
// ready string or a deferred template plus captured arguments.
type Record struct {
	Severity Severity
	Time     time.Time

	text     string
	deferred bool
	template string
	args     []any
}

// recordPool keeps Record allocations off the producer hot path. The
// args slice is pre-allocated for 4 arguments, which covers most
// deferred call sites without a growth.
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{args: make([]any, 0, 4)}
	},
}

// NewReady returns a pooled Record carrying a fully rendered string.
func NewReady(severity Severity, ts time.Time, text string) *Record {
	r := recordPool.Get().(*Record)
	r.Severity = severity
	r.Time = ts
	r.text = text
	r.deferred = false
	return r
}

// NewDeferred returns a pooled Record carrying the template verbatim
// plus a value copy of each argument. The interface conversions copy
// the arguments, so the record stays valid after the producer's stack
// frame is gone. Formatting is postponed until Finalize.
func NewDeferred(severity Severity, ts time.Time, template string, args ...any) *Record {
	r := recordPool.Get().(*Record)
	r.Severity = severity
	r.Time = ts
	r.text = ""
	r.deferred = true
	r.template = template
	r.args = append(r.args[:0], args...)
	return r
}

// PutRecord returns a Record to the pool. The caller must not touch
// the record afterwards.
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.text = ""
	r.template = ""
	for i := range r.args {
		r.args[i] = nil
	}
	r.args = r.args[:0]
	r.deferred = false
	recordPool.Put(r)
}

// Deferred reports whether the record still needs Finalize.
func (r *Record) Deferred() bool {
	return r.deferred
}

// Finalize renders the record's text. Ready records return their
// string unchanged. Deferred records substitute the captured arguments
// into the template's {} placeholders. On a malformed template or an
// argument shortfall, Finalize returns the fallback line
// "<formatting error: {template}>" together with the rendering error;
// the fallback is still meant to be written.
func (r *Record) Finalize() (string, error) {
	if !r.deferred {
		return r.text, nil
	}
	text, err := renderTemplate(r.template, r.args)
	if err != nil {
		text = "<formatting error: " + r.template + ">"
	}
	r.text = text
	r.deferred = false
	return text, err
}

// renderTemplate substitutes args into the {} placeholders of
// template. "{{" and "}}" escape literal braces. Surplus arguments are
// ignored; missing arguments and unmatched braces are errors.
func renderTemplate(template string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(template) + 16*len(args))
	next := 0
	for i := 0; i < len(template); i++ {
		switch c := template[i]; c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			if i+1 < len(template) && template[i+1] == '}' {
				if next >= len(args) {
					return "", fmt.Errorf("placeholder %d has no argument", next)
				}
				fmt.Fprint(&b, args[next])
				next++
				i++
				continue
			}
			return "", fmt.Errorf("unmatched '{' at byte %d", i)
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("unmatched '}' at byte %d", i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
