package errors

import (
	"errors"
	"fmt"
)

// EngineError is the base interface for all errors produced by this module.
type EngineError interface {
	error
	IsAHKError() bool
}

// Compile-time verification that all error types implement EngineError.
var (
	_ EngineError = (*ExecutableNotFoundError)(nil)
	_ EngineError = (*SpawnError)(nil)
	_ EngineError = (*EncodingError)(nil)
	_ EngineError = (*InvalidArgumentError)(nil)
	_ EngineError = (*DaemonCrashedError)(nil)
	_ EngineError = (*ExecutionError)(nil)
	_ EngineError = (*ResponseParseError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrRequestTimeout indicates no response arrived within the deadline.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrEngineClosed indicates the engine has been closed and cannot be reused.
	ErrEngineClosed = errors.New("engine closed: engines are single-use, create a new one with New()")

	// ErrChannelNotStarted indicates the daemon channel is not running.
	ErrChannelNotStarted = errors.New("daemon channel not started")

	// ErrChannelAlreadyStarted indicates Start was called on a running channel.
	ErrChannelAlreadyStarted = errors.New("daemon channel already started")

	// ErrStdinClosed indicates the daemon's stdin pipe was closed.
	ErrStdinClosed = errors.New("daemon stdin closed")
)

// ExecutableNotFoundError indicates the AutoHotkey executable was not found.
type ExecutableNotFoundError struct {
	SearchedPaths []string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf(
		"AutoHotkey executable not found in: %v "+
			"(set the AHK_PATH environment variable or use WithExecutablePath)",
		e.SearchedPaths,
	)
}

// IsAHKError implements EngineError.
func (e *ExecutableNotFoundError) IsAHKError() bool { return true }

// SpawnError indicates the daemon process failed to launch.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch daemon process %q: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsAHKError implements EngineError.
func (e *SpawnError) IsAHKError() bool { return true }

// EncodingError indicates a command argument cannot be safely represented
// on the wire. The command is never sent to the daemon.
type EncodingError struct {
	Function string
	Arg      string
	Reason   string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode argument %q for %s: %s", e.Arg, e.Function, e.Reason)
}

// IsAHKError implements EngineError.
func (e *EncodingError) IsAHKError() bool { return true }

// InvalidArgumentError indicates a command call failed catalog validation.
// The command is never sent to the daemon.
type InvalidArgumentError struct {
	Function string
	Err      error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Function, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// IsAHKError implements EngineError.
func (e *InvalidArgumentError) IsAHKError() bool { return true }

// DaemonCrashedError indicates the daemon process exited unexpectedly.
type DaemonCrashedError struct {
	ExitCode int
	Stderr   string
	Err      error
}

func (e *DaemonCrashedError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("daemon process exited unexpectedly (exit %d): %s", e.ExitCode, e.Stderr)
	}

	return fmt.Sprintf("daemon process exited unexpectedly (exit %d): %v", e.ExitCode, e.Err)
}

func (e *DaemonCrashedError) Unwrap() error {
	return e.Err
}

// IsAHKError implements EngineError.
func (e *DaemonCrashedError) IsAHKError() bool { return true }

// ExecutionError indicates the interpreter reported a logical failure while
// executing a command (for example, a window that does not exist). The message
// is the interpreter's verbatim text. Execution errors are never retried.
type ExecutionError struct {
	Message string
}

func (e *ExecutionError) Error() string {
	return e.Message
}

// IsAHKError implements EngineError.
func (e *ExecutionError) IsAHKError() bool { return true }

// ResponseParseError indicates a framed response could not be decoded.
// The raw payload is preserved for diagnostics.
type ResponseParseError struct {
	TypeMark string
	RawData  string
	Err      error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to decode %q response from daemon: %v", e.TypeMark, e.Err)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Err
}

// IsAHKError implements EngineError.
func (e *ResponseParseError) IsAHKError() bool { return true }
