package formatter

import (
	"fmt"
	"testing"
	"time"
)

func TestAppendTimestamp(t *testing.T) {
	ts := time.Date(2024, time.March, 7, 9, 5, 2, 12345, time.UTC)
	got := string(AppendTimestamp(nil, ts))
	want := "2024-3-7 9:5:2.12345"
	if got != want {
		t.Errorf("AppendTimestamp() = %q, want %q", got, want)
	}
}

func TestAppendLine(t *testing.T) {
	ts := time.Date(2023, time.December, 31, 23, 59, 59, 999999999, time.UTC)
	got := string(AppendLine(nil, ts, 3, "hello"))
	want := "2023-12-31 23:59:59.999999999\t\tThread ID : 3\thello\n"
	if got != want {
		t.Errorf("AppendLine() = %q, want %q", got, want)
	}
}

func TestAppendLine_FieldSeparators(t *testing.T) {
	// Two tabs between time and "Thread ID", one tab before the text.
	// Parsers depend on the exact separator layout.
	ts := time.Date(2024, time.January, 2, 3, 4, 5, 6, time.UTC)
	line := string(AppendLine(nil, ts, 0, "x"))
	want := fmt.Sprintf("%d-%d-%d %d:%d:%d.%d\t\tThread ID : %d\t%s\n",
		2024, 1, 2, 3, 4, 5, 6, 0, "x")
	if line != want {
		t.Errorf("AppendLine() = %q, want %q", line, want)
	}
}

func TestAppendLine_Reuse(t *testing.T) {
	ts := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	buf := AppendLine(nil, ts, 1, "first")
	first := string(buf)
	buf = AppendLine(buf[:0], ts, 1, "second")
	if string(buf) == first {
		t.Fatal("buffer reuse produced identical lines for different texts")
	}
	buf = AppendLine(buf[:0], ts, 1, "first")
	if string(buf) != first {
		t.Errorf("reused buffer line = %q, want %q", string(buf), first)
	}
}

func BenchmarkAppendLine(b *testing.B) {
	ts := time.Now()
	var buf []byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendLine(buf[:0], ts, 2, "benchmark line text")
	}
}
