package jobs

import (
	"log/slog"

	"github.com/robfig/cron/v3"
)

// slogCronLogger routes robfig/cron's internal logging to slog.
type slogCronLogger struct {
	logger *slog.Logger
}

var _ cron.Logger = slogCronLogger{}

func (l slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
