package obs

import (
	"io"
	"log"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a minimal logging interface for observability.
// Implementations must be safe for concurrent use and must not panic.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// StdLogger adapts the standard library logger. A *log.Logger serializes
// writes, so each call emits one whole line even under concurrent use.
type StdLogger struct {
	L    *log.Logger
	Min  Level
	Pref string // optional prefix per log line
}

// NewStdLogger returns a StdLogger writing timestamped lines to w.
func NewStdLogger(w io.Writer, min Level) StdLogger {
	return StdLogger{L: log.New(w, "", log.LstdFlags), Min: min}
}

func (s StdLogger) Logf(level Level, format string, args ...interface{}) {
	if s.L == nil {
		return
	}
	if level < s.Min {
		return
	}
	if s.Pref != "" {
		s.L.Printf("%s[%s] "+format, append([]interface{}{s.Pref, level.String()}, args...)...)
	} else {
		s.L.Printf("[%s] "+format, append([]interface{}{level.String()}, args...)...)
	}
}

// Infof logs at Info level. A nil Logger is treated as NopLogger.
func Infof(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Logf(Info, format, args...)
	}
}

// Errorf logs at Error level. A nil Logger is treated as NopLogger.
func Errorf(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Logf(Error, format, args...)
	}
}
