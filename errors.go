package ahk

import "github.com/spyoungtech/ahk-rewrite/internal/errors"

// Re-export error types from internal package

// ExecutableNotFoundError indicates the AutoHotkey executable was not found.
type ExecutableNotFoundError = errors.ExecutableNotFoundError

// SpawnError indicates the daemon process failed to launch.
type SpawnError = errors.SpawnError

// EncodingError indicates an argument cannot be represented on the wire.
type EncodingError = errors.EncodingError

// InvalidArgumentError indicates a command call failed validation.
type InvalidArgumentError = errors.InvalidArgumentError

// DaemonCrashedError indicates the daemon process exited unexpectedly.
type DaemonCrashedError = errors.DaemonCrashedError

// ExecutionError indicates the interpreter reported a command failure.
type ExecutionError = errors.ExecutionError

// ResponseParseError indicates a response frame could not be decoded.
type ResponseParseError = errors.ResponseParseError

// EngineError is the base interface for all errors produced by this module.
type EngineError = errors.EngineError

// Re-export sentinel errors from internal package.
var (
	// ErrRequestTimeout indicates no response arrived within the deadline.
	ErrRequestTimeout = errors.ErrRequestTimeout

	// ErrEngineClosed indicates the engine has been closed and cannot be reused.
	ErrEngineClosed = errors.ErrEngineClosed

	// ErrChannelNotStarted indicates the daemon channel is not running.
	ErrChannelNotStarted = errors.ErrChannelNotStarted

	// ErrChannelAlreadyStarted indicates Start was called on a running channel.
	ErrChannelAlreadyStarted = errors.ErrChannelAlreadyStarted

	// ErrStdinClosed indicates the daemon's stdin pipe was closed.
	ErrStdinClosed = errors.ErrStdinClosed
)
