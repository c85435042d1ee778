package logger

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quicklog/quicklog/core"
)

// ---------------------------------------------------------------------------
// Helpers – each framework gets its cheapest text-ish sink. quicklog
// writes through its real async pipeline (temp-dir files); the others
// format eagerly into io.Discard, so the comparison is producer-side
// call latency, which is the dimension quicklog optimizes for.
// ---------------------------------------------------------------------------

func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – message with no arguments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_NoArgs(b *testing.B) {
	b.Run("quicklog", func(b *testing.B) {
		l := startBenchLogger(b, 1)
		defer l.Stop()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Emit(core.InfoLevel, 0, "info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – message with three formatted arguments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_ThreeArgs(b *testing.B) {
	b.Run("quicklog", func(b *testing.B) {
		l := startBenchLogger(b, 1)
		defer l.Stop()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Emit(core.InfoLevel, 0, "a={} b={} c={}", i, "str", 3.5)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("a=%d b=%s c=%g", i, "str", 3.5)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("msg", "a", i, "b", "str", "c", 3.5)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("a=%d b=%s c=%g", i, "str", 3.5)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Int("a", i).Str("b", "str").Float64("c", 3.5).Msg("msg")
		}
	})
}
