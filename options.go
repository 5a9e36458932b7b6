package ahk

import (
	"log/slog"
	"time"

	"github.com/spyoungtech/ahk-rewrite/internal/config"
)

// Option configures an Engine using the functional options pattern.
type Option func(*config.Options)

// applyOptions applies functional options to a fresh Options struct.
func applyOptions(opts []Option) *config.Options {
	options := &config.Options{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// WithExecutablePath sets an explicit path to the AutoHotkey executable,
// bypassing discovery via AHK_PATH, PATH, and the default install location.
func WithExecutablePath(path string) Option {
	return func(o *config.Options) {
		o.ExecutablePath = path
	}
}

// WithScriptPath sets the path to the bootstrap daemon script.
// Defaults to "daemon.ahk" in the working directory.
func WithScriptPath(path string) Option {
	return func(o *config.Options) {
		o.ScriptPath = path
	}
}

// WithCwd sets the working directory for the daemon process.
func WithCwd(cwd string) Option {
	return func(o *config.Options) {
		o.Cwd = cwd
	}
}

// WithEnv provides additional environment variables for the daemon process.
// They are merged over the host environment.
func WithEnv(env map[string]string) Option {
	return func(o *config.Options) {
		o.Env = env
	}
}

// WithRequestTimeout bounds one command round trip to the daemon.
// Defaults to 60 seconds.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(o *config.Options) {
		o.RequestTimeout = timeout
	}
}

// WithStopGrace sets how long Close waits for the daemon to exit gracefully
// before force-killing it. Defaults to 3 seconds.
func WithStopGrace(grace time.Duration) Option {
	return func(o *config.Options) {
		o.StopGrace = grace
	}
}

// WithNoAutoRestart disables the single restart-and-retry performed when the
// daemon crashes mid-request. The crash then surfaces as DaemonCrashedError.
func WithNoAutoRestart() Option {
	return func(o *config.Options) {
		o.NoAutoRestart = true
	}
}

// WithStderrCallback receives daemon stderr lines as they arrive.
func WithStderrCallback(callback func(string)) Option {
	return func(o *config.Options) {
		o.Stderr = callback
	}
}

// WithChannel injects a custom daemon channel. Used for testing and
// alternative transports; process supervision options are ignored when set.
func WithChannel(ch Channel) Option {
	return func(o *config.Options) {
		o.Channel = ch
	}
}
