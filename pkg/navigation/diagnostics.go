package navigation

import "log/slog"

// Diagnostics records why links rows were rejected.
// Whether it writes anything is fixed at construction.
type Diagnostics struct {
	enabled bool
	log     *slog.Logger
}

// NewDiagnostics returns a Diagnostics that forwards to log at debug level when
// enabled. A nil log uses slog.Default().
func NewDiagnostics(enabled bool, log *slog.Logger) *Diagnostics {
	if log == nil {
		log = slog.Default()
	}
	return &Diagnostics{enabled: enabled, log: log}
}

// Enabled reports whether messages are forwarded.
func (d *Diagnostics) Enabled() bool {
	return d != nil && d.enabled
}

// Record writes message at debug level and reports whether it was recorded.
func (d *Diagnostics) Record(message string) bool {
	if !d.Enabled() {
		return false
	}
	d.log.Debug(message)
	return true
}

// with returns a copy whose records carry args.
func (d *Diagnostics) with(args ...any) *Diagnostics {
	if !d.Enabled() {
		return d
	}
	return &Diagnostics{enabled: true, log: d.log.With(args...)}
}
