// Package selflog provides the adapter's own operational logging: startup,
// request dispatch, and recoverable-error notices. It is deliberately
// distinct from the diagnostics the engine publishes about user documents
// (core.Diagnostic) — this is plumbing for the operator, not the editor.
//
// Adapted from the teacher's selflog package (leveled, sink-based,
// environment-variable activated) and its LoggingLevelSwitch, generalized
// from an always-on/off debug trace to a leveled logger so operational
// noise can be tuned via WORDLIB_LOG_LEVEL without recompiling (§6).
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger writes leveled operational messages to a single writer, gated by
// a runtime-adjustable minimum level.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level atomic.Int32
}

// New creates a Logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	l := &Logger{out: w}
	l.SetLevel(level)
	return l
}

// SetLevel adjusts the minimum level atomically.
func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level)) }

// Level returns the current minimum level.
func (l *Logger) Level() Level { return Level(l.level.Load()) }

// Enabled reports whether a message at level would be emitted.
func (l *Logger) Enabled(level Level) bool { return level >= l.Level() }

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	line := time.Now().UTC().Format(time.RFC3339) + " [" + level.String() + "] " + msg + "\n"
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, line)
}

// Debugf logs at DebugLevel.
func (l *Logger) Debugf(format string, args ...any) { l.log(DebugLevel, format, args...) }

// Infof logs at InfoLevel.
func (l *Logger) Infof(format string, args ...any) { l.log(InfoLevel, format, args...) }

// Warnf logs at WarnLevel.
func (l *Logger) Warnf(format string, args ...any) { l.log(WarnLevel, format, args...) }

// Errorf logs at ErrorLevel.
func (l *Logger) Errorf(format string, args ...any) { l.log(ErrorLevel, format, args...) }

// Default is the process-wide logger used by callers that do not carry
// their own. It is configured once at process start from the environment
// (WORDLIB_LOG_LEVEL, WORDLIB_LOG_FILE) and may be reassigned in tests.
var Default = newFromEnv()

func newFromEnv() *Logger {
	level := ParseLevel(os.Getenv("WORDLIB_LOG_LEVEL"))

	var w io.Writer = os.Stderr
	if path := os.Getenv("WORDLIB_LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
		}
	}
	return New(w, level)
}
