package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sommelier/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond

	sqlStateDeadlockDetected  = "40P01"
	sqlStateLockNotAvailable  = "55P03"
	sqlStateSerializationFail = "40001"
)

// gormSlogLogger sends GORM's statement log to slog.
//
// Statement failures the repositories turn into domain errors (missing rows, constraint
// violations) stay at debug. Lock contention on the drink rows logs at warn, anything else at error.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger: baseLogger.With(slog.String("component", "gorm")),
		level:  logger.Warn,
		slow:   defaultSlowQueryThreshold,
	}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Persistence != nil && cfg.Persistence.SlowQueryThreshold > 0 {
		l.slow = cfg.Persistence.SlowQueryThreshold
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min {
		return
	}
	l.logger.LogAttrs(ctx, level, fmt.Sprintf(msg, args...))
}

// Trace logs one executed statement.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.logger.LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level and message for a statement, ok is false when it is not logged at all.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, bool) {
	switch {
	case err != nil && isExpectedStatementError(err):
		return slog.LevelDebug, "SQL statement rejected", l.level >= logger.Info
	case err != nil && isLockContention(err):
		return slog.LevelWarn, "SQL lock contention", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "SQL statement failed", l.level >= logger.Error
	case elapsed > l.slow:
		return slog.LevelWarn, "SQL statement slow", l.level >= logger.Warn
	default:
		return slog.LevelDebug, "SQL statement", l.level >= logger.Info
	}
}

func isExpectedStatementError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err) ||
		isCheckConstraintViolation(err)
}

func isLockContention(err error) bool {
	return hasSQLState(err, sqlStateDeadlockDetected) ||
		hasSQLState(err, sqlStateLockNotAvailable) ||
		hasSQLState(err, sqlStateSerializationFail)
}
