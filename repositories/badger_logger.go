package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// BadgerLogger routes badger's printf style output into the service logger
type BadgerLogger struct {
	log *slog.Logger
}

var _ badger.Logger = (*BadgerLogger)(nil)

func NewBadgerLogger(log *slog.Logger) *BadgerLogger {
	return &BadgerLogger{log: log.With("component", "badger")}
}

func (b *BadgerLogger) Errorf(format string, args ...any) {
	b.log.Error(line(format, args...))
}

func (b *BadgerLogger) Warningf(format string, args ...any) {
	b.log.Warn(line(format, args...))
}

func (b *BadgerLogger) Infof(format string, args ...any) {
	b.log.Info(line(format, args...))
}

func (b *BadgerLogger) Debugf(format string, args ...any) {
	b.log.Debug(line(format, args...))
}

func line(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
