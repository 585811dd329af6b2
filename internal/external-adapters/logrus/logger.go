// Package logrus adapts github.com/sirupsen/logrus to the domain Logger contract.
package logrus

import (
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/ochairo/relcheck/internal/domain/interfaces"
)

// Logger implements interfaces.Logger on top of a logrus logger
type Logger struct {
	entry *log.Entry
}

// NewLogger creates a text logger writing to out at the given level
// (debug, info, warn, error). An empty level means info.
func NewLogger(out io.Writer, level string) (*Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := log.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})

	return &Logger{entry: log.NewEntry(l)}, nil
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.with(fields).Debug(msg)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.with(fields).Info(msg)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.with(fields).Warn(msg)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.with(fields).Error(msg)
}

func (l *Logger) with(fields []interfaces.Field) *log.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	data := make(log.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return l.entry.WithFields(data)
}
