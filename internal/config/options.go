// Package config provides configuration types shared across the module.
package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultRequestTimeout bounds one command round trip to the daemon.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultStopGrace is how long Close waits for the daemon to exit after
	// its stdin closes before force-killing it.
	DefaultStopGrace = 3 * time.Second

	// DefaultScriptName is the bootstrap script filename looked up relative
	// to the working directory when no explicit path is configured.
	DefaultScriptName = "daemon.ahk"
)

// Options configures an automation engine.
type Options struct {
	// Logger is the slog logger for debug output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// ExecutablePath is the explicit path to the AutoHotkey executable.
	// If empty, discovery searches AHK_PATH, PATH, and the default install
	// location.
	ExecutablePath string

	// ScriptPath is the path to the bootstrap daemon script. If empty,
	// DefaultScriptName relative to the working directory is used.
	ScriptPath string

	// Cwd is the working directory for the daemon process.
	Cwd string

	// Env provides additional environment variables for the daemon process.
	Env map[string]string

	// RequestTimeout bounds one command round trip. Zero means
	// DefaultRequestTimeout.
	RequestTimeout time.Duration

	// StopGrace bounds graceful shutdown before force kill. Zero means
	// DefaultStopGrace.
	StopGrace time.Duration

	// NoAutoRestart disables the single restart-and-retry performed when the
	// daemon crashes mid-request.
	NoAutoRestart bool

	// Stderr receives daemon stderr lines as they arrive.
	Stderr func(string)

	// Channel injects a custom daemon channel. Used for testing and
	// alternative transports; when set, process supervision options above
	// are ignored.
	Channel Channel
}

// Timeout returns the effective request timeout.
func (o *Options) Timeout() time.Duration {
	if o.RequestTimeout > 0 {
		return o.RequestTimeout
	}

	return DefaultRequestTimeout
}

// Grace returns the effective stop grace period.
func (o *Options) Grace() time.Duration {
	if o.StopGrace > 0 {
		return o.StopGrace
	}

	return DefaultStopGrace
}
