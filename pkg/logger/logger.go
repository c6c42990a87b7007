// Package logger provides logging functionality for the gcli application.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// writerLogger is a thread-safe logger that writes one line per message.
type writerLogger struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
}

// NewDefaultLogger creates a new default logger writing to stdout.
func NewDefaultLogger() Logger {
	return &writerLogger{out: os.Stdout}
}

// NewVerboseLogger creates a logger for request tracing. It writes to stderr
// so that it never mixes with command output.
func NewVerboseLogger() Logger {
	return NewWriterLogger(os.Stderr, "[gcli] ")
}

// NewWriterLogger creates a logger writing to out with a prefix on every line.
func NewWriterLogger(out io.Writer, prefix string) Logger {
	return &writerLogger{out: out, prefix: prefix}
}

// Logf writes a formatted message with thread safety.
func (d *writerLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, d.prefix+format+"\n", args...)
}

// OrNoop returns l, or a noop logger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NewNoopLogger()
	}
	return l
}
