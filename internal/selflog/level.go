package selflog

// Level is the ambient operational logging severity, adapted from the
// teacher's core.LogEventLevel / LoggingLevelSwitch pattern and trimmed to
// the four levels the environment variable in §6 names.
type Level int32

const (
	// DebugLevel is for verbose internal tracing.
	DebugLevel Level = iota
	// InfoLevel is the default operational level, also used for expected
	// conditions such as a stale update or a missing document.
	InfoLevel
	// WarnLevel is for recoverable problems: malformed notification params,
	// a dictionary that failed to load or reload.
	WarnLevel
	// ErrorLevel is for failures writing to the client connection.
	ErrorLevel
)

// ParseLevel maps WORDLIB_LOG_LEVEL's value to a Level. Unrecognized
// values fall back to InfoLevel.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}
