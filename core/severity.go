package core

// Severity represents the severity of a log record, ordered from most
// to least severe. The integer value doubles as the index into the
// per-severity sink table.
type Severity int32

const (
	// ErrorLevel for errors the application cannot recover from locally
	ErrorLevel Severity = iota
	// WarnLevel for conditions that deserve attention but not action
	WarnLevel
	// FaultLevel for recoverable faults in external dependencies
	FaultLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very fine-grained tracing output
	TraceLevel
)

// NumSeverities is the size of the closed severity set.
const NumSeverities = 6

// severityNames is indexed by Severity; the names are also the sink
// file basenames (ERROR.log, WARN.log, ...).
var severityNames = [NumSeverities]string{
	ErrorLevel: "ERROR",
	WarnLevel:  "WARN",
	FaultLevel: "FAULT",
	InfoLevel:  "INFO",
	DebugLevel: "DEBUG",
	TraceLevel: "TRACE",
}

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Valid reports whether s is one of the six defined severities.
func (s Severity) Valid() bool {
	return s >= ErrorLevel && s <= TraceLevel
}

// ParseSeverity converts a severity name to a Severity. Unknown names
// map to InfoLevel.
func ParseSeverity(name string) Severity {
	for i, n := range severityNames {
		if n == name {
			return Severity(i)
		}
	}
	return InfoLevel
}
