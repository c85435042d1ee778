package logger

import "github.com/quicklog/quicklog/core"

// Severity Re-export type and constants for convenience
type Severity = core.Severity

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	FaultLevel = core.FaultLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

// ParseSeverity converts a severity name to a Severity.
func ParseSeverity(s string) Severity {
	return core.ParseSeverity(s)
}
