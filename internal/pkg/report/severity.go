// Package report is the reporting sink of the lifecycle engine. Validation
// rejections, transition outcomes and notification events are handed to a
// Reporter as a message plus a Severity.
package report

import (
	"log/slog"
	"strings"
)

// Severity classifies a reported message.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Level maps the severity onto a slog level. Success has no slog counterpart
// and is logged at info.
func (s Severity) Level() slog.Level {
	switch s {
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseSeverity is case-insensitive and reports whether the name was known.
func ParseSeverity(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return Info, true
	case "success":
		return Success, true
	case "warning", "warn":
		return Warning, true
	case "error":
		return Error, true
	default:
		return Info, false
	}
}
