package model

//
// Logging
//

// DebugLogger only emits debug messages. The httpapi package only
// needs this much to trace requests and responses.
type DebugLogger interface {
	Debug(msg string)
	Debugf(format string, v ...interface{})
}

// Logger is the logger used across the codebase. Its method set is a
// subset of apex/log's log.Interface, so log.Log can be passed directly.
type Logger interface {
	DebugLogger

	Info(msg string)
	Infof(format string, v ...interface{})

	Warn(msg string)
	Warnf(format string, v ...interface{})
}

// DiscardLogger is a [Logger] that drops every message.
var DiscardLogger Logger = discardLogger{}

type discardLogger struct{}

func (discardLogger) Debug(msg string)                       {}
func (discardLogger) Debugf(format string, v ...interface{}) {}
func (discardLogger) Info(msg string)                        {}
func (discardLogger) Infof(format string, v ...interface{})  {}
func (discardLogger) Warn(msg string)                        {}
func (discardLogger) Warnf(format string, v ...interface{})  {}

// ErrorToStringOrOK returns "ok" for a nil error and err.Error() otherwise.
func ErrorToStringOrOK(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}

// ValidLoggerOrDefault returns logger when it is not nil and
// [DiscardLogger] otherwise.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
