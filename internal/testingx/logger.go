package testingx

import (
	"fmt"
	"sync"

	"github.com/finboard/finboard-cli/internal/model"
)

// Logger implements [model.Logger] and collects the emitted lines.
//
// The zero value is ready to use.
type Logger struct {
	debug []string
	info  []string
	warn  []string
	mu    sync.Mutex
}

var _ model.Logger = &Logger{}

func (l *Logger) append(lines *[]string, line string) {
	defer l.mu.Unlock()
	l.mu.Lock()
	*lines = append(*lines, line)
}

// Debug implements model.Logger.
func (l *Logger) Debug(message string) {
	l.append(&l.debug, message)
}

// Debugf implements model.Logger.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.Debug(fmt.Sprintf(format, v...))
}

// Info implements model.Logger.
func (l *Logger) Info(message string) {
	l.append(&l.info, message)
}

// Infof implements model.Logger.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.Info(fmt.Sprintf(format, v...))
}

// Warn implements model.Logger.
func (l *Logger) Warn(message string) {
	l.append(&l.warn, message)
}

// Warnf implements model.Logger.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) copy(lines *[]string) []string {
	defer l.mu.Unlock()
	l.mu.Lock()
	return append([]string{}, *lines...)
}

// DebugLines returns a copy of the debug lines.
func (l *Logger) DebugLines() []string {
	return l.copy(&l.debug)
}

// InfoLines returns a copy of the info lines.
func (l *Logger) InfoLines() []string {
	return l.copy(&l.info)
}

// WarnLines returns a copy of the warning lines.
func (l *Logger) WarnLines() []string {
	return l.copy(&l.warn)
}
