package devsetup

import (
	"fmt"
	"log/slog"
)

// logReporter writes progress messages as log records.
type logReporter struct {
	log *slog.Logger
}

// NewLogReporter returns a Reporter that logs Info and Line messages at info
// level and Warn messages at warn level.
func NewLogReporter(log *slog.Logger) Reporter {
	return &logReporter{log: log}
}

func (r *logReporter) Info(format string, args ...any) {
	r.log.Info(fmt.Sprintf(format, args...), slog.String("component", "devsetup"))
}

func (r *logReporter) Warn(format string, args ...any) {
	r.log.Warn(fmt.Sprintf(format, args...), slog.String("component", "devsetup"))
}

func (r *logReporter) Line(format string, args ...any) {
	r.log.Info(fmt.Sprintf(format, args...), slog.String("component", "devsetup"))
}
