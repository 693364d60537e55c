package database

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-backoffice/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// QueryLogger sends gorm's SQL traces to the application loggers: every
// statement at debug, slow statements at warn, failures on ErrorLogger.
type QueryLogger struct {
	SlowThreshold time.Duration
	level         logger.LogLevel
}

func NewQueryLogger(slow time.Duration) *QueryLogger {
	return &QueryLogger{SlowThreshold: slow, level: logger.Info}
}

func (l *QueryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *QueryLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		utils.InfoLogger.Infof(msg, data...)
	}
}

func (l *QueryLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		utils.InfoLogger.Warnf(msg, data...)
	}
}

func (l *QueryLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		utils.ErrorLogger.Errorf(msg, data...)
	}
}

// Trace implements logger.Interface
func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := logrus.Fields{
		"elapsed_ms": float64(elapsed.Microseconds()) / 1000,
		"rows":       rows,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		utils.ErrorLogger.WithFields(fields).WithError(err).Error(sql)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.level >= logger.Warn:
		utils.InfoLogger.WithFields(fields).Warnf("slow query: %s", sql)
	case l.level >= logger.Info:
		utils.InfoLogger.WithFields(fields).Debug(sql)
	}
}
