package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fooddash/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

type reportSlugKey struct{}

// withReportSlug tags the statements run under ctx with the catalog report that issued them.
func withReportSlug(ctx context.Context, slug string) context.Context {
	return context.WithValue(ctx, reportSlugKey{}, slug)
}

func reportSlugFrom(ctx context.Context) string {
	slug, _ := ctx.Value(reportSlugKey{}).(string)

	return slug
}

// gormSlogLogger writes GORM statement tracing to the service logger under component=store.
// Executed statements are debug records; failures carry the SQLSTATE and slow statements the threshold.
// Record-not-found is an expected lookup outcome and is never logged.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	slow := defaultGormSlowThreshold
	if cfg != nil && cfg.Store != nil && cfg.Store.SlowQueryThreshold > 0 {
		slow = cfg.Store.SlowQueryThreshold
	}

	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "store"))
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slow,
	}
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

// message forwards GORM's own diagnostics, such as migrator notices.
func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	l.logger.LogAttrs(ctx, level, "Store notice", slog.String("detail", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	subject := "Store query"
	if reportSlugFrom(ctx) != "" {
		subject = "Report query"
	}

	switch {
	case l.isFailure(err):
		attrs := append(l.statementAttrs(ctx, sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		if code := pgErrorCode(err); code != "" {
			attrs = append(attrs, slog.String("sqlstate", code))
		}
		l.logger.LogAttrs(ctx, slog.LevelError, subject+" failed", attrs...)
	case l.isSlow(elapsed):
		attrs := append(l.statementAttrs(ctx, sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, subject+" is slow", attrs...)
	case l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelDebug, subject+" executed", l.statementAttrs(ctx, sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) statementAttrs(ctx context.Context, sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("table", statementTable(sql)),
		slog.String("sql", sql),
	}
	if slug := reportSlugFrom(ctx); slug != "" {
		attrs = append(attrs, slog.String("report", slug))
	}

	return attrs
}

func (l *gormSlogLogger) isFailure(err error) bool {
	return err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound)
}

func (l *gormSlogLogger) isSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}

// statementTable names the first table after FROM, INTO or UPDATE for log grouping.
func statementTable(sql string) string {
	fields := strings.Fields(sql)
	for i := 0; i < len(fields)-1; i++ {
		switch strings.ToUpper(fields[i]) {
		case "FROM", "INTO", "UPDATE":
			return strings.Trim(fields[i+1], `"(;`)
		}
	}

	return ""
}
