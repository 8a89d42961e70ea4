// Package logger provides the small leveled logging contract shared by the
// services and repositories, with a plain text implementation on the standard
// log package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the logging contract. Fields are alternating key/value pairs.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
	WithField(key string, value interface{}) Logger
}

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel maps a level name to a Level, defaulting to InfoLevel.
func ParseLevel(name string) Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SimpleLogger writes leveled key=value lines.
type SimpleLogger struct {
	level  Level
	out    *log.Logger
	fields []string
}

func New() *SimpleLogger {
	return NewWithLevel("INFO")
}

func NewWithLevel(level string) *SimpleLogger {
	return &SimpleLogger{
		level: ParseLevel(level),
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// NewWithWriter routes output to w; used by tests.
func NewWithWriter(level string, w io.Writer) *SimpleLogger {
	return &SimpleLogger{
		level: ParseLevel(level),
		out:   log.New(w, "", 0),
	}
}

// Default is the logger components fall back to when they are given nil.
func Default() Logger {
	return defaultLogger
}

var defaultLogger = New()

func (l *SimpleLogger) Debug(msg string, fields ...interface{}) {
	l.write(DebugLevel, "DEBUG", msg, fields)
}

func (l *SimpleLogger) Info(msg string, fields ...interface{}) {
	l.write(InfoLevel, "INFO", msg, fields)
}

func (l *SimpleLogger) Warn(msg string, fields ...interface{}) {
	l.write(WarnLevel, "WARN", msg, fields)
}

func (l *SimpleLogger) Error(msg string, fields ...interface{}) {
	l.write(ErrorLevel, "ERROR", msg, fields)
}

// WithField returns a logger that prefixes every line with the given field.
func (l *SimpleLogger) WithField(key string, value interface{}) Logger {
	bound := make([]string, len(l.fields), len(l.fields)+1)
	copy(bound, l.fields)
	bound = append(bound, fmt.Sprintf("%s=%v", key, value))
	return &SimpleLogger{level: l.level, out: l.out, fields: bound}
}

func (l *SimpleLogger) write(level Level, tag, msg string, fields []interface{}) {
	if level < l.level {
		return
	}
	parts := []string{"[" + tag + "]", msg}
	parts = append(parts, l.fields...)
	for i := 0; i+1 < len(fields); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
	}
	l.out.Println(strings.Join(parts, " "))
}
