// Package logx wraps log/slog with component tags shared by the PHY driver,
// the bring-up service and the CLI.
package logx

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Component identifies a subsystem for log filtering.
type Component string

const (
	ComponentPHY     Component = "usb2phy"
	ComponentCharger Component = "charger"
	ComponentService Component = "phy-service"
	ComponentProbe   Component = "dtprobe"
	ComponentCLI     Component = "cli"
)

// Format selects the handler used by the default logger.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

var (
	level = new(slog.LevelVar)

	mu   sync.RWMutex
	base *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// SetLevel sets the minimum level for every logger handed out by this package.
func SetLevel(l slog.Level) { level.Set(l) }

// Level returns the current minimum level.
func Level() slog.Level { return level.Level() }

// SetFormat rebuilds the default logger on stderr with the given handler.
func SetFormat(f Format) { SetOutput(os.Stderr, f) }

// SetOutput rebuilds the default logger on w.
func SetOutput(w io.Writer, f Format) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch f {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	mu.Lock()
	base = slog.New(h)
	mu.Unlock()
}

// SetLogger replaces the default logger.
func SetLogger(l *slog.Logger) {
	mu.Lock()
	base = l
	mu.Unlock()
}

// For returns the default logger tagged with component.
func For(c Component) *slog.Logger {
	mu.RLock()
	l := base
	mu.RUnlock()
	return l.With("component", string(c))
}

// Sub tags l with a component nested inside the one l already carries.
func Sub(l *slog.Logger, c Component) *slog.Logger {
	return l.With("sub", string(c))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
