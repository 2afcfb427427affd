package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Logger levels
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

const timestampFormat = "2006-01-02 15:04:05"

// Logger handles formatted logging output
type Logger struct {
	level   int
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewLogger creates a new logger writing to stderr
func NewLogger(verbose bool) *Logger {
	return NewLoggerTo(os.Stderr, verbose)
}

// NewLoggerTo creates a logger writing to w
func NewLoggerTo(w io.Writer, verbose bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return &Logger{
		level:   level,
		verbose: verbose,
		out:     w,
	}
}

// setLevel sets the minimum log level
func (l *Logger) setLevel(level int) {
	l.level = level
}

func (l *Logger) write(label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format(timestampFormat)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s %s\n", timestamp, label, msg)
}

// Debug logs debug messages (only in verbose mode)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose && l.level <= LevelDebug {
		l.write(color.CyanString("DEBUG"), format, args...)
	}
}

// Info logs informational messages
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.write(color.BlueString("INFO"), format, args...)
	}
}

// Success logs success messages (special case of Info)
func (l *Logger) Success(format string, args ...interface{}) {
	if l.level <= LevelInfo {
		l.write(color.GreenString("INFO"), format, args...)
	}
}

// Warn logs warning messages. Every finding goes through here.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		l.write(color.YellowString("WARNING"), format, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level <= LevelError {
		l.write(color.RedString("ERROR"), format, args...)
	}
}

// Banner prints a formatted banner
func (l *Logger) Banner(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, color.CyanString("═══════════════════════════════════════════════════════════"))
	fmt.Fprintln(l.out, color.CyanString("  "+text))
	fmt.Fprintln(l.out, color.CyanString("═══════════════════════════════════════════════════════════"))
	fmt.Fprintln(l.out)
}
