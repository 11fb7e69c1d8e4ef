package pipeline

import (
	"context"
	"log/slog"
)

// Logger is the pipeline's structured logging interface. The pipeline
// passes it to HOCON resolution and to bundle merging; rewrite phases,
// directive parsing and the include loaders do not log. Minimal,
// slog-compatible, with variadic key-value attrs following log/slog's own
// convention.
type Logger interface {
	// Debug logs per-field/per-node tracing detail.
	Debug(msg string, attrs ...any)
	// Info logs general operational information.
	Info(msg string, attrs ...any)
	// Warn logs a recoverable anomaly (an optional substitution miss, a
	// processExtension no-op).
	Warn(msg string, attrs ...any)
	// Error logs an error condition.
	Error(msg string, attrs ...any)
	// With returns a new Logger with attrs prepended to every subsequent
	// log call.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is the default logger when none is
// configured.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (n NopLogger) With(_ ...any) Logger   { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger, or slog.Default() if logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// ContextLogger wraps a Logger together with a context.Context, so
// request-scoped values (trace ids, deadlines) travel alongside the
// logger through the pipeline without every function threading a
// context parameter purely for logging.
type ContextLogger struct {
	logger Logger
	ctx    context.Context
}

// NewContextLogger pairs logger with ctx.
func NewContextLogger(logger Logger, ctx context.Context) *ContextLogger {
	return &ContextLogger{logger: logger, ctx: ctx}
}

func (c *ContextLogger) Debug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *ContextLogger) Info(msg string, attrs ...any)  { c.logger.Info(msg, attrs...) }
func (c *ContextLogger) Warn(msg string, attrs ...any)  { c.logger.Warn(msg, attrs...) }
func (c *ContextLogger) Error(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }
func (c *ContextLogger) With(attrs ...any) Logger {
	return &ContextLogger{logger: c.logger.With(attrs...), ctx: c.ctx}
}

// Context returns the logger's associated context.
func (c *ContextLogger) Context() context.Context { return c.ctx }

var _ Logger = (*ContextLogger)(nil)
