package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's logging through zerolog. SQL statements are
// logged at trace level; slow queries and query errors at warn.
type GormLogger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger wraps log for use as gorm.Config.Logger. A zero
// slowThreshold disables slow query warnings.
func NewGormLogger(log zerolog.Logger, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{log: log, slowThreshold: slowThreshold}
}

// LogMode is a no-op; verbosity follows the zerolog level.
func (l *GormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...any) {
	l.log.Debug().Msg(fmt.Sprintf(msg, data...))
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...any) {
	l.log.Warn().Msg(fmt.Sprintf(msg, data...))
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...any) {
	l.log.Error().Msg(fmt.Sprintf(msg, data...))
}

func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.Warn().Err(err).
			Str("sql", sql).
			Int64("rows_affected", rows).
			Dur("elapsed", elapsed).
			Msg("query error")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		l.log.Warn().
			Str("sql", sql).
			Int64("rows_affected", rows).
			Dur("elapsed", elapsed).
			Dur("threshold", l.slowThreshold).
			Msg("slow query")
	default:
		l.log.Trace().
			Str("sql", sql).
			Int64("rows_affected", rows).
			Dur("elapsed", elapsed).
			Msg("sql query")
	}
}
