package report

import (
	"context"
	"log/slog"
)

// Reporter accepts human-readable messages. Implementations must not block.
type Reporter interface {
	Report(message string, severity Severity)
}

// Discard drops every message.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(string, Severity) {}

type multi []Reporter

// Multi fans a message out to every non-nil reporter in order.
func Multi(reporters ...Reporter) Reporter {
	m := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) Report(message string, severity Severity) {
	for _, r := range m {
		r.Report(message, severity)
	}
}

// SlogReporter writes reported messages as structured log records.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter tags every record with component=reporter.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	return &SlogReporter{logger: logger.With("component", "reporter")}
}

func (r *SlogReporter) Report(message string, severity Severity) {
	r.logger.Log(context.Background(), severity.Level(), message, "severity", severity.String())
}
