// Package logger provides the small colored prefix logger shared by
// every component: each subsystem gets its own prefix and ANSI color so
// interleaved output stays readable.
package logger

import (
	"errors"
	"io"
	"log"
)

// Logger is the logging surface components depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

// PrefixLogger writes leveled, color-prefixed lines to a single writer.
type PrefixLogger struct {
	prefix string
	color  string
	out    *log.Logger
}

const colorReset = "\033[0m"

// New creates a logger with the given subsystem prefix and ANSI color
// escape, writing to w.
func New(prefix, color string, w io.Writer) (*PrefixLogger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if w == nil {
		return nil, errors.New("logger writer must not be nil")
	}
	return &PrefixLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *PrefixLogger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *PrefixLogger) Warning(msg string) {
	l.print("WARN", msg)
}

// Error logs an error message.
func (l *PrefixLogger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *PrefixLogger) print(level, msg string) {
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.prefix, colorReset, level, msg)
}
