// Package dispatch turns named commands into daemon round trips.
//
// A dispatcher validates a call against the command catalog, encodes it as a
// request line, and exchanges it for exactly one response frame on the
// channel. Round trips are serialized: one request owns the channel until its
// response arrives or the deadline passes.
package dispatch

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/spyoungtech/ahk-rewrite/internal/catalog"
	"github.com/spyoungtech/ahk-rewrite/internal/config"
	"github.com/spyoungtech/ahk-rewrite/internal/errors"
	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// resyncGrace is how long a resynchronizing dispatcher waits for the late
// response of a timed-out request to land before reusing the channel.
const resyncGrace = 50 * time.Millisecond

// Dispatcher executes catalog commands against a daemon channel.
type Dispatcher struct {
	log         *slog.Logger
	ch          config.Channel
	timeout     time.Duration
	autoRestart bool

	// mu serializes round trips so responses pair with their requests.
	mu sync.Mutex

	// suspect records that the last round trip timed out, meaning its
	// response may still be mid-pipe. Guarded by mu.
	suspect bool
}

// New creates a dispatcher over the given channel.
func New(log *slog.Logger, ch config.Channel, opts *config.Options) *Dispatcher {
	return &Dispatcher{
		log:         log.With("component", "dispatcher"),
		ch:          ch,
		timeout:     opts.Timeout(),
		autoRestart: !opts.NoAutoRestart,
	}
}

// Call validates, encodes, and executes one command, returning the decoded
// result. Validation failures surface as InvalidArgumentError or
// EncodingError without touching the daemon. If the daemon crashes
// mid-request the dispatcher restarts it and retries the command once;
// interpreter-reported failures (ExecutionError) are never retried.
func (d *Dispatcher) Call(ctx context.Context, function string, args ...any) (any, error) {
	spec, ok := catalog.Lookup(function)
	if !ok {
		return nil, &errors.InvalidArgumentError{
			Function: function,
			Err:      stderrors.New("unknown command"),
		}
	}

	if err := spec.Validate(args); err != nil {
		return nil, &errors.InvalidArgumentError{Function: function, Err: err}
	}

	fields, err := spec.Format(args)
	if err != nil {
		return nil, &errors.InvalidArgumentError{Function: function, Err: err}
	}

	data, err := wire.Request{Function: function, Args: fields}.Encode()
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	id := ulid.Make().String()
	log := d.log.With("dispatch_id", id, "function", function)

	frame, err := d.roundTrip(ctx, log, data)
	if err == nil {
		return d.decode(log, frame)
	}

	var crash *errors.DaemonCrashedError
	if !stderrors.As(err, &crash) || !d.autoRestart {
		return nil, err
	}

	log.Warn("Daemon crashed mid-request, restarting and retrying once",
		"exit_code", crash.ExitCode)

	if rerr := d.ch.Restart(ctx); rerr != nil {
		log.Error("Daemon restart failed", "error", rerr)

		return nil, rerr
	}

	frame, err = d.roundTrip(ctx, log, data)
	if err != nil {
		return nil, err
	}

	return d.decode(log, frame)
}

// roundTrip performs one send/receive exchange. Stale frames left behind by
// earlier timeouts are discarded first so the response pairs with this
// request.
func (d *Dispatcher) roundTrip(ctx context.Context, log *slog.Logger, data []byte) (wire.Frame, error) {
	if d.suspect {
		d.resync(ctx, log)
		d.suspect = false
	} else if dropped := d.ch.Drain(); dropped > 0 {
		log.Debug("Dropped stale frames before send", "count", dropped)
	}

	start := time.Now()

	if err := d.ch.Send(ctx, data); err != nil {
		return wire.Frame{}, err
	}

	frame, err := d.ch.Recv(ctx, d.timeout)
	if err != nil {
		if stderrors.Is(err, errors.ErrRequestTimeout) {
			d.suspect = true
		}

		return wire.Frame{}, err
	}

	log.Debug("Command round trip complete",
		"type", frame.TypeMark,
		"duration", time.Since(start),
	)

	return frame, nil
}

// resync clears the response of a timed-out request. The stale frame may not
// have been read yet, so when the first drain finds nothing the dispatcher
// waits a grace period for it to land and drains once more.
func (d *Dispatcher) resync(ctx context.Context, log *slog.Logger) {
	if dropped := d.ch.Drain(); dropped > 0 {
		log.Debug("Dropped stale frames before send", "count", dropped)

		return
	}

	select {
	case <-time.After(resyncGrace):
	case <-ctx.Done():
		return
	}

	if dropped := d.ch.Drain(); dropped > 0 {
		log.Debug("Dropped late frame after timeout", "count", dropped)
	}
}

// decode translates the response frame into a Go value. Interpreter errors
// arrive as a well-formed exception frame and decode into ExecutionError.
func (d *Dispatcher) decode(log *slog.Logger, frame wire.Frame) (any, error) {
	result, err := wire.Decode(frame)
	if err != nil {
		var execErr *errors.ExecutionError
		if stderrors.As(err, &execErr) {
			log.Debug("Command reported failure", "message", execErr.Message)
		} else {
			log.Error("Response decode failed", "type", frame.TypeMark, "error", err)
		}

		return nil, err
	}

	return result, nil
}
