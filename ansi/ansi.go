// Package ansi provides the SGR escape sequences used by the colored
// stdout stream. The sequences are emitted unconditionally; whether
// the receiving end interprets them is the terminal's business.
package ansi

import "github.com/quicklog/quicklog/core"

// Reset clears all terminal styling; the remaining constants are the
// per-severity color sequences. The 256-color codes cover the shades
// the basic palette lacks.
const (
	Reset        = "\x1b[0m"
	RedOnYellow  = "\x1b[31;43m"
	Yellow       = "\x1b[33m"
	Orange       = "\x1b[38;5;208m"
	Aqua         = "\x1b[38;5;51m"
	Green        = "\x1b[32m"
	HotPink      = "\x1b[38;5;205m"
	AntiqueWhite = "\x1b[38;5;230m"
)

// severityColors is indexed by core.Severity.
var severityColors = [core.NumSeverities]string{
	core.ErrorLevel: RedOnYellow,
	core.WarnLevel:  Yellow,
	core.FaultLevel: Orange,
	core.InfoLevel:  Aqua,
	core.DebugLevel: Green,
	core.TraceLevel: HotPink,
}

// SeverityColor returns the SGR sequence for a severity, or the
// antique white fallback for values outside the defined set.
func SeverityColor(s core.Severity) string {
	if s.Valid() {
		return severityColors[s]
	}
	return AntiqueWhite
}
