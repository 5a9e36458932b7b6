package daemon

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/spyoungtech/ahk-rewrite/internal/config"
	"github.com/spyoungtech/ahk-rewrite/internal/errors"
	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// frameBufferSize is the capacity of the inbound frame channel. Requests are
// serialized upstream, so more than a handful of buffered frames only occurs
// after timeouts leave stale responses behind.
const frameBufferSize = 16

// Channel runs one daemon process and exchanges framed messages with it over
// stdio. A reader goroutine assembles frames from stdout into a buffered
// channel so that late responses survive a Recv timeout and can be discarded
// by the next Drain.
type Channel struct {
	log       *slog.Logger
	cfg       SupervisorConfig
	stopGrace time.Duration

	sendMu sync.Mutex

	mu         sync.Mutex
	sup        *Supervisor
	frames     chan wire.Frame
	errs       chan error
	stop       chan struct{}
	readerDone chan struct{}
	started    bool
	closed     bool
}

// NewChannel creates a channel for the given daemon configuration. The
// process is not launched until Start.
func NewChannel(log *slog.Logger, cfg SupervisorConfig, stopGrace time.Duration) *Channel {
	if stopGrace <= 0 {
		stopGrace = config.DefaultStopGrace
	}

	return &Channel{
		log:       log.With("component", "channel"),
		cfg:       cfg,
		stopGrace: stopGrace,
	}
}

var _ config.Channel = (*Channel)(nil)

// Start launches the daemon process and the frame reader.
func (c *Channel) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrEngineClosed
	}

	if c.started {
		return errors.ErrChannelAlreadyStarted
	}

	return c.startLocked()
}

// startLocked launches a fresh supervisor and reader. Caller holds c.mu.
func (c *Channel) startLocked() error {
	sup := NewSupervisor(c.log, c.cfg)
	if err := sup.Start(); err != nil {
		return err
	}

	c.sup = sup
	c.frames = make(chan wire.Frame, frameBufferSize)
	c.errs = make(chan error, 1)
	c.stop = make(chan struct{})
	c.readerDone = make(chan struct{})
	c.started = true

	go c.readFrames(sup, c.frames, c.errs, c.stop, c.readerDone)

	return nil
}

// readFrames assembles response frames from the daemon's stdout until the
// stream ends. On end of stream it reaps the process and reports a crash
// unless the shutdown was intentional.
func (c *Channel) readFrames(sup *Supervisor, frames chan<- wire.Frame, errs chan<- error, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	br := bufio.NewReader(sup.Stdout())

	for {
		frame, err := wire.ReadFrame(br)
		if err != nil {
			if !stderrors.Is(err, io.EOF) && !stderrors.Is(err, io.ErrUnexpectedEOF) {
				c.log.Debug("Frame read error", "error", err)
			}

			if crash := sup.Reap(); crash != nil {
				errs <- crash
			}

			close(frames)

			return
		}

		c.log.Debug("Frame received", "type", frame.TypeMark, "bytes", len(frame.Payload))

		select {
		case frames <- frame:
		case <-stop:
			close(frames)

			return
		}
	}
}

// Send writes one request line to the daemon's stdin.
func (c *Channel) Send(_ context.Context, data []byte) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	sup := c.sup
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return errors.ErrEngineClosed
	}

	if sup == nil {
		return errors.ErrChannelNotStarted
	}

	return sup.Write(data)
}

// Recv blocks until a frame arrives, the timeout elapses, the daemon exits,
// or the context is canceled.
func (c *Channel) Recv(ctx context.Context, timeout time.Duration) (wire.Frame, error) {
	c.mu.Lock()
	frames := c.frames
	errs := c.errs
	c.mu.Unlock()

	if frames == nil {
		return wire.Frame{}, errors.ErrChannelNotStarted
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case frame, ok := <-frames:
		if !ok {
			return wire.Frame{}, c.exitError(errs)
		}

		return frame, nil
	case err := <-errs:
		return wire.Frame{}, err
	case <-timer.C:
		return wire.Frame{}, fmt.Errorf("%w after %s", errors.ErrRequestTimeout, timeout)
	case <-ctx.Done():
		return wire.Frame{}, ctx.Err()
	}
}

// exitError reports why the frame stream ended.
func (c *Channel) exitError(errs <-chan error) error {
	select {
	case err := <-errs:
		return err
	default:
		return errors.ErrStdinClosed
	}
}

// Drain discards buffered frames left over from timed-out requests.
func (c *Channel) Drain() int {
	c.mu.Lock()
	frames := c.frames
	c.mu.Unlock()

	if frames == nil {
		return 0
	}

	dropped := 0

	for {
		select {
		case frame, ok := <-frames:
			if !ok {
				return dropped
			}

			c.log.Debug("Discarding stale frame", "type", frame.TypeMark)

			dropped++
		default:
			if dropped > 0 {
				c.log.Info("Drained stale frames", "count", dropped)
			}

			return dropped
		}
	}
}

// Alive reports whether the daemon process is running.
func (c *Channel) Alive() bool {
	c.mu.Lock()
	sup := c.sup
	c.mu.Unlock()

	return sup != nil && sup.Alive()
}

// Restart tears down the current daemon and launches a fresh one. Used for
// crash recovery: the replacement process has clean interpreter state.
func (c *Channel) Restart(_ context.Context) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.ErrEngineClosed
	}

	if c.sup != nil {
		c.teardownLocked()
	}

	c.log.Info("Restarting daemon process")

	return c.startLocked()
}

// teardownLocked stops the current process and waits for the reader to
// finish. Caller holds c.mu.
func (c *Channel) teardownLocked() {
	sup := c.sup
	readerDone := c.readerDone

	sup.BeginShutdown()
	close(c.stop)

	if err := sup.CloseStdin(); err != nil {
		c.log.Debug("Closing daemon stdin", "error", err)
	}

	select {
	case <-readerDone:
	case <-time.After(c.stopGrace):
		c.log.Warn("Daemon did not exit within grace period, killing", "grace", c.stopGrace)

		if err := sup.Kill(); err != nil {
			c.log.Error("Failed to kill daemon process", "error", err)
		}

		<-readerDone
	}

	c.sup = nil
	c.frames = nil
	c.errs = nil
	c.stop = nil
	c.readerDone = nil
}

// Close terminates the daemon and releases resources. Safe to call multiple
// times.
func (c *Channel) Close() error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	if c.sup != nil {
		c.teardownLocked()
	}

	c.log.Info("Daemon channel closed")

	return nil
}
