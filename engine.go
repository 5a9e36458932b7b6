package ahk

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spyoungtech/ahk-rewrite/internal/config"
	"github.com/spyoungtech/ahk-rewrite/internal/daemon"
	"github.com/spyoungtech/ahk-rewrite/internal/dispatch"
	"github.com/spyoungtech/ahk-rewrite/internal/exe"
)

// Engine drives one AutoHotkey daemon process. It owns the process, the
// framed channel over its stdio, and the command dispatcher; commands are
// strictly serialized onto the daemon, so an Engine is safe for concurrent
// use. Multiple independent engines may coexist, each with its own process.
//
// Engines are single-use: after Close, create a new one with New.
type Engine struct {
	log  *slog.Logger
	opts *config.Options

	mu      sync.Mutex
	ch      config.Channel
	disp    *dispatch.Dispatcher
	started bool
	closed  bool
}

// New creates an engine. The daemon process is not launched until Start or
// the first command.
func New(opts ...Option) *Engine {
	options := applyOptions(opts)

	logger := options.Logger
	if logger == nil {
		logger = NopLogger()
	}

	return &Engine{
		log:  logger.With("component", "engine"),
		opts: options,
	}
}

// Start launches the daemon process. Optional: the first command starts the
// engine implicitly. Returns ExecutableNotFoundError or SpawnError on launch
// failure, ErrEngineClosed after Close.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return ErrChannelAlreadyStarted
	}

	return e.startLocked(ctx)
}

// startLocked performs the launch. Caller holds e.mu.
func (e *Engine) startLocked(ctx context.Context) error {
	if e.closed {
		return ErrEngineClosed
	}

	ch := e.opts.Channel
	if ch == nil {
		exePath, err := exe.Resolve(e.log, e.opts.ExecutablePath)
		if err != nil {
			return err
		}

		scriptPath := e.opts.ScriptPath
		if scriptPath == "" {
			scriptPath = config.DefaultScriptName
		}

		ch = daemon.NewChannel(e.log, daemon.SupervisorConfig{
			ExePath:    exePath,
			ScriptPath: scriptPath,
			Cwd:        e.opts.Cwd,
			Env:        e.opts.Env,
			Stderr:     e.opts.Stderr,
		}, e.opts.Grace())
	}

	if err := ch.Start(ctx); err != nil {
		return err
	}

	e.ch = ch
	e.disp = dispatch.New(e.log, ch, e.opts)
	e.started = true

	return nil
}

// dispatcher starts the engine if needed and returns the dispatcher.
func (e *Engine) dispatcher(ctx context.Context) (*dispatch.Dispatcher, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEngineClosed
	}

	if !e.started {
		if err := e.startLocked(ctx); err != nil {
			return nil, err
		}
	}

	return e.disp, nil
}

// Call executes a named daemon command directly. Most callers use the typed
// methods instead; Call is the escape hatch for daemon scripts extended with
// custom functions registered in the command catalog.
func (e *Engine) Call(ctx context.Context, function string, args ...any) (any, error) {
	disp, err := e.dispatcher(ctx)
	if err != nil {
		return nil, err
	}

	return disp.Call(ctx, function, args...)
}

// Alive reports whether the daemon process is running.
func (e *Engine) Alive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.started && !e.closed && e.ch.Alive()
}

// Async returns the non-blocking surface of this engine. Each async method
// runs the identical blocking operation in a goroutine and hands back a
// FutureResult; commands still execute one at a time on the daemon.
func (e *Engine) Async() *AsyncEngine {
	return &AsyncEngine{engine: e}
}

// Close terminates the daemon process and releases resources. Safe to call
// multiple times. The engine cannot be reused afterward.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.closed = true

	if e.ch == nil {
		return nil
	}

	return e.ch.Close()
}

// Typed result coercion. The dispatcher returns the decoded value for the
// frame the daemon actually sent; a mismatch here means the catalog and the
// daemon script disagree about a command's result type.

func (e *Engine) voidCall(ctx context.Context, function string, args ...any) error {
	_, err := e.Call(ctx, function, args...)

	return err
}

func (e *Engine) stringCall(ctx context.Context, function string, args ...any) (string, error) {
	return resultAs[string](e, ctx, function, args...)
}

func (e *Engine) intCall(ctx context.Context, function string, args ...any) (int, error) {
	return resultAs[int](e, ctx, function, args...)
}

func (e *Engine) boolCall(ctx context.Context, function string, args ...any) (bool, error) {
	return resultAs[bool](e, ctx, function, args...)
}

func (e *Engine) coordCall(ctx context.Context, function string, args ...any) (Coordinate, error) {
	return resultAs[Coordinate](e, ctx, function, args...)
}

func (e *Engine) posCall(ctx context.Context, function string, args ...any) (Position, error) {
	return resultAs[Position](e, ctx, function, args...)
}

func resultAs[T any](e *Engine, ctx context.Context, function string, args ...any) (T, error) {
	var zero T

	v, err := e.Call(ctx, function, args...)
	if err != nil {
		return zero, err
	}

	result, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", function, v)
	}

	return result, nil
}
