package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/helixml/wikitree/internal/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSlowQuery is the duration above which a statement is logged as a
// warning.
const DefaultSlowQuery = 200 * time.Millisecond

const maxSQLLength = 200

// sqlLogger reports GORM statements through the client's logger, tagged
// with the correlation, request and viewer ids of the calling context.
// Statements are logged at debug level, slow ones as warnings and failures
// as errors. Record-not-found is a normal lookup miss and is not an error.
type sqlLogger struct {
	logger *log.Logger
	slow   time.Duration
}

func newSQLLogger(l *slog.Logger, slow time.Duration) sqlLogger {
	return sqlLogger{logger: log.FromSlog(l), slow: slow}
}

// LogMode keeps the logger unchanged; slog's level decides what is written.
func (l sqlLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
}

func (l sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
}

func (l sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
}

func (l sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logger.ErrorContext(ctx, "sql failed", statementAttrs(sql, rows, elapsed, slog.Any("error", err))...)
	case l.slow > 0 && elapsed > l.slow:
		sql, rows := fc()
		l.logger.WarnContext(ctx, "slow sql", statementAttrs(sql, rows, elapsed, slog.Duration("threshold", l.slow))...)
	case l.logger.Slog().Enabled(ctx, slog.LevelDebug):
		sql, rows := fc()
		l.logger.DebugContext(ctx, "sql", statementAttrs(sql, rows, elapsed)...)
	}
}

func statementAttrs(sql string, rows int64, elapsed time.Duration, extra ...any) []any {
	attrs := []any{
		slog.String("sql", truncateSQL(sql)),
		slog.Int64("rows", rows),
		slog.Duration("duration", elapsed),
	}
	return append(attrs, extra...)
}

// truncateSQL keeps the head and tail of long statements.
func truncateSQL(sql string) string {
	if len(sql) <= maxSQLLength {
		return sql
	}
	half := (maxSQLLength - 3) / 2
	return sql[:half] + "..." + sql[len(sql)-half:]
}
