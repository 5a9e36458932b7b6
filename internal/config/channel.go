package config

import (
	"context"
	"time"

	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// Channel defines the framed message exchange with the daemon process.
// Implement this to provide custom channels for testing, mocking, or
// alternative transports.
//
// The default implementation spawns an AutoHotkey subprocess and frames its
// stdout; it is created by the engine unless Options.Channel is set.
type Channel interface {
	// Start launches the daemon and begins reading frames.
	// Returns ExecutableNotFoundError or SpawnError on launch failure.
	Start(ctx context.Context) error

	// Send writes one complete request line. Safe for concurrent use.
	Send(ctx context.Context, data []byte) error

	// Recv blocks until a complete response frame is available or the
	// timeout elapses. On expiry it returns ErrRequestTimeout and leaves the
	// channel usable: a late frame is buffered and discarded by the next
	// Drain. If the daemon exits, Recv returns DaemonCrashedError.
	Recv(ctx context.Context, timeout time.Duration) (wire.Frame, error)

	// Drain discards any buffered frames, returning how many were dropped.
	// Called before each request to resynchronize after a timeout.
	Drain() int

	// Alive reports whether the daemon process is running.
	Alive() bool

	// Restart tears down the current daemon and launches a fresh one.
	Restart(ctx context.Context) error

	// Close terminates the daemon and releases resources.
	// Safe to call multiple times.
	Close() error
}
