package gfx

import "log/slog"

// ErrorReporter receives non-fatal errors raised at graphics API call sites.
type ErrorReporter interface {
	Report(op string, err error)
}

// ReporterFunc adapts a function to ErrorReporter.
type ReporterFunc func(op string, err error)

func (f ReporterFunc) Report(op string, err error) {
	f(op, err)
}

// LogReporter reports errors to logger at error level.
func LogReporter(logger *slog.Logger) ErrorReporter {
	return ReporterFunc(func(op string, err error) {
		logger.Error("graphics call failed", "op", op, "err", err)
	})
}

// Discard drops every report.
var Discard ErrorReporter = ReporterFunc(func(string, error) {})
