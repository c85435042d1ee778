package ansi

import (
	"strings"
	"testing"

	"github.com/quicklog/quicklog/core"
)

func TestSeverityColor(t *testing.T) {
	for s := core.ErrorLevel; s <= core.TraceLevel; s++ {
		c := SeverityColor(s)
		if !strings.HasPrefix(c, "\x1b[") || !strings.HasSuffix(c, "m") {
			t.Errorf("SeverityColor(%v) = %q, not an SGR sequence", s, c)
		}
	}

	if got := SeverityColor(core.Severity(99)); got != AntiqueWhite {
		t.Errorf("SeverityColor(out of range) = %q, want antique white fallback", got)
	}

	if SeverityColor(core.ErrorLevel) != RedOnYellow {
		t.Error("ERROR must render red on yellow")
	}
}
