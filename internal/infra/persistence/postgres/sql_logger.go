package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
	deliverycontext "github.com/IbrahimMurad/alx-files-manager/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlLogger routes gorm statements through slog. Statements issued while serving a request
// are written with that request's logger so they carry its request_id.
type sqlLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newSQLLogger(base *slog.Logger, cfg *config.Config) *sqlLogger {
	l := &sqlLogger{base: base, level: logger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Persistence != nil {
		l.slowThreshold = cfg.Persistence.SlowQueryThreshold
	}

	return l
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) message(ctx context.Context, enabledAt logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < enabledAt {
		return
	}
	if log := l.loggerFor(ctx); log != nil {
		log.LogAttrs(ctx, level, fmt.Sprintf(msg, args...), slog.String("component", "sql"))
	}
}

func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}
	log := l.loggerFor(ctx)
	if log == nil {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		attrs := append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))
		log.LogAttrs(ctx, slog.LevelError, "SQL statement failed", attrs...)
	case l.isSlow(elapsed):
		attrs := append(statementAttrs(fc, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		log.LogAttrs(ctx, slog.LevelWarn, "Slow SQL statement", attrs...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "SQL statement", statementAttrs(fc, elapsed)...)
	}
}

func (l *sqlLogger) isSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}

func (l *sqlLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	stmt, rows := fc()

	return []slog.Attr{
		slog.String("component", "sql"),
		slog.Duration("duration", elapsed),
		slog.Int64("rows_affected", rows),
		slog.String("statement", stmt),
	}
}
