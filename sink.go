package goprops

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives diagnostics at LogWarn and LogError.
type Sink interface {
	Log(d Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Diagnostic)

func (f SinkFunc) Log(d Diagnostic) { f(d) }

// NewZapSink routes diagnostics to logger: LogWarn to Warn, LogError to
// Error. The issue code and path are attached as fields.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return zapSink{l: logger}
}

type zapSink struct{ l *zap.Logger }

func (s zapSink) Log(d Diagnostic) {
	fields := []zap.Field{zap.String("code", d.Issue.Code), zap.String("path", d.Issue.Path)}
	switch d.Level {
	case LogWarn:
		s.l.Warn(d.Message, fields...)
	case LogError:
		s.l.Error(d.Message, fields...)
	}
}

// NewConsoleLogger builds a console-encoded logger writing to w with
// ISO-8601 timestamps and lowercase levels, enabled from min upward. The
// default Sink uses NewConsoleLogger(os.Stderr, zap.WarnLevel).
func NewConsoleLogger(w io.Writer, min zapcore.Level) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		min,
	)
	return zap.New(core)
}
