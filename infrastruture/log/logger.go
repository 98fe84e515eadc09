// Package logger provides a coloured, prefixed logger for the application's components.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/pickle-maze/service/i"
)

const (
	errorColor   = "\033[31m"
	warningColor = "\033[33m"
	infoColor    = "\033[32m"
	colorReset   = "\033[0m"
)

var ErrNilWriter = errors.New("logger output is nil")

var _ i.Logger = &Logger{}

// Logger writes levelled lines tagged with a coloured component prefix.
type Logger struct {
	out *log.Logger
}

// New creates a Logger writing to w. Every line starts with prefix in the given colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, colorReset)
	return &Logger{
		out: log.New(w, tag, log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", infoColor, colorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARNING]%s %s", warningColor, colorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", errorColor, colorReset, msg)
}
