package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spyoungtech/ahk-rewrite/internal/config"
	"github.com/spyoungtech/ahk-rewrite/internal/errors"
	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// step is one scripted Recv outcome.
type step struct {
	frame wire.Frame
	err   error
}

// mockChannel scripts channel behavior for dispatcher tests.
type mockChannel struct {
	mu       sync.Mutex
	sent     []string
	queue    []step
	buffered []wire.Frame
	restarts int
	started  bool
}

func (m *mockChannel) Start(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.started = true

	return nil
}

func (m *mockChannel) Send(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, string(data))

	return nil
}

func (m *mockChannel) Recv(_ context.Context, _ time.Duration) (wire.Frame, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return wire.Frame{}, fmt.Errorf("mock: no scripted response")
	}

	next := m.queue[0]
	m.queue = m.queue[1:]

	return next.frame, next.err
}

func (m *mockChannel) Drain() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.buffered)
	m.buffered = nil

	return n
}

func (m *mockChannel) Alive() bool { return true }

func (m *mockChannel) Restart(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.restarts++

	return nil
}

func (m *mockChannel) Close() error { return nil }

func (m *mockChannel) sentLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.sent...)
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(ch config.Channel, opts *config.Options) *Dispatcher {
	if opts == nil {
		opts = &config.Options{}
	}

	return New(slogDiscard(), ch, opts)
}

// TestCall_Success tests a full validate-encode-roundtrip-decode pass.
func TestCall_Success(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{frame: wire.Frame{TypeMark: wire.TOMCoordinate, Payload: []byte("(100, 200)")}},
	}}
	d := newTestDispatcher(ch, nil)

	result, err := d.Call(context.Background(), "AHKMouseGetPos")
	require.NoError(t, err)
	require.Equal(t, wire.Coordinate{X: 100, Y: 200}, result)
	require.Equal(t, []string{"AHKMouseGetPos\n"}, ch.sentLines())
}

// TestCall_FormatsTypedArgs tests wire formatting of typed argument values,
// including the trailing relative flag that is dropped when empty.
func TestCall_FormatsTypedArgs(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{frame: wire.Frame{TypeMark: wire.TOMNoValue, Payload: []byte{0xee, 0x80, 0x80}}},
		{frame: wire.Frame{TypeMark: wire.TOMNoValue, Payload: []byte{0xee, 0x80, 0x80}}},
	}}
	d := newTestDispatcher(ch, nil)

	result, err := d.Call(context.Background(), "AHKMouseMove", 100, 200, 2, "")
	require.NoError(t, err)
	require.Nil(t, result)

	_, err = d.Call(context.Background(), "AHKMouseMove", 100, 200, 2, "R")
	require.NoError(t, err)

	require.Equal(t, []string{
		"AHKMouseMove,100,200,2\n",
		"AHKMouseMove,100,200,2,R\n",
	}, ch.sentLines())
}

// TestCall_UnknownCommand tests that unknown names never reach the daemon.
func TestCall_UnknownCommand(t *testing.T) {
	ch := &mockChannel{}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "NoSuchCommand")
	require.Error(t, err)

	var argErr *errors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "NoSuchCommand", argErr.Function)
	require.Empty(t, ch.sentLines())
}

// TestCall_InvalidArguments tests that validation failures never reach the
// daemon.
func TestCall_InvalidArguments(t *testing.T) {
	ch := &mockChannel{}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "AHKMouseMove", "not an int", 200, 2, "")
	require.Error(t, err)

	var argErr *errors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Empty(t, ch.sentLines())
}

// TestCall_CrashRetriesOnce tests the single restart-and-retry on an
// unexpected daemon exit mid-request.
func TestCall_CrashRetriesOnce(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{err: &errors.DaemonCrashedError{ExitCode: 2, Stderr: "boom"}},
		{frame: wire.Frame{TypeMark: wire.TOMString, Payload: []byte("recovered")}},
	}}
	d := newTestDispatcher(ch, nil)

	result, err := d.Call(context.Background(), "FromMouse")
	require.NoError(t, err)
	require.Equal(t, "recovered", result)
	assert.Equal(t, 1, ch.restarts)
	assert.Len(t, ch.sentLines(), 2)
}

// TestCall_CrashTwiceSurfaces tests that a second crash is not retried again.
func TestCall_CrashTwiceSurfaces(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{err: &errors.DaemonCrashedError{ExitCode: 2}},
		{err: &errors.DaemonCrashedError{ExitCode: 2}},
	}}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "FromMouse")
	require.Error(t, err)

	var crashErr *errors.DaemonCrashedError
	require.ErrorAs(t, err, &crashErr)
	assert.Equal(t, 1, ch.restarts)
	assert.Len(t, ch.sentLines(), 2)
}

// TestCall_NoAutoRestart tests that crash recovery can be disabled.
func TestCall_NoAutoRestart(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{err: &errors.DaemonCrashedError{ExitCode: 2}},
	}}
	d := newTestDispatcher(ch, &config.Options{NoAutoRestart: true})

	_, err := d.Call(context.Background(), "FromMouse")
	require.Error(t, err)

	var crashErr *errors.DaemonCrashedError
	require.ErrorAs(t, err, &crashErr)
	assert.Equal(t, 0, ch.restarts)
	assert.Len(t, ch.sentLines(), 1)
}

// TestCall_ExecutionErrorNotRetried tests that interpreter-reported failures
// pass through without a restart: the daemon is healthy, the command failed.
func TestCall_ExecutionErrorNotRetried(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{frame: wire.Frame{TypeMark: wire.TOMException, Payload: []byte("there are no active windows")}},
	}}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "FromMouse")
	require.Error(t, err)

	var execErr *errors.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "there are no active windows", execErr.Message)
	assert.Equal(t, 0, ch.restarts)
	assert.Len(t, ch.sentLines(), 1)
}

// strictChannel fails if a Send arrives while a previous round trip is
// still awaiting its Recv.
type strictChannel struct {
	mu       sync.Mutex
	inFlight bool
	violated bool
	count    int
}

func (s *strictChannel) Start(_ context.Context) error { return nil }

func (s *strictChannel) Send(_ context.Context, _ []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		s.violated = true
	}

	s.inFlight = true
	s.count++

	return nil
}

func (s *strictChannel) Recv(_ context.Context, _ time.Duration) (wire.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight = false

	return wire.Frame{TypeMark: wire.TOMString, Payload: []byte("ok")}, nil
}

func (s *strictChannel) Drain() int                      { return 0 }
func (s *strictChannel) Alive() bool                     { return true }
func (s *strictChannel) Restart(_ context.Context) error { return nil }
func (s *strictChannel) Close() error                    { return nil }

// TestCall_SerializesConcurrentCallers tests that concurrent callers never
// interleave round trips on the channel.
func TestCall_SerializesConcurrentCallers(t *testing.T) {
	ch := &strictChannel{}
	d := newTestDispatcher(ch, nil)

	const callers = 16

	var wg sync.WaitGroup

	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			result, err := d.Call(context.Background(), "FromMouse")
			assert.NoError(t, err)
			assert.Equal(t, "ok", result)
		}()
	}

	wg.Wait()

	assert.False(t, ch.violated, "round trips interleaved on the channel")
	assert.Equal(t, callers, ch.count)
}

// TestCall_TimeoutThenResync tests that a timed-out request leaves the
// channel usable: the stale frame is drained before the next round trip and
// the next command succeeds.
func TestCall_TimeoutThenResync(t *testing.T) {
	ch := &mockChannel{queue: []step{
		{err: fmt.Errorf("%w after 10ms", errors.ErrRequestTimeout)},
		{frame: wire.Frame{TypeMark: wire.TOMInteger, Payload: []byte("7")}},
	}}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "FromMouse")
	require.ErrorIs(t, err, errors.ErrRequestTimeout)

	// The late response for the timed-out request arrives afterward.
	ch.mu.Lock()
	ch.buffered = append(ch.buffered, wire.Frame{TypeMark: wire.TOMString, Payload: []byte("stale")})
	ch.mu.Unlock()

	result, err := d.Call(context.Background(), "AHKWinGetCount", "", "", "", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, 7, result)

	ch.mu.Lock()
	defer ch.mu.Unlock()
	assert.Empty(t, ch.buffered, "stale frame should have been drained")
}

// lateChannel models a stale response still mid-pipe when the next call
// begins: the first drains find nothing and the frame only becomes
// drainable on the third attempt.
type lateChannel struct {
	mockChannel
	drains int
	stale  bool
}

func (l *lateChannel) Drain() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.drains++
	if l.drains >= 3 && l.stale {
		l.stale = false

		return 1
	}

	return 0
}

// TestCall_TimeoutDrainsAgainAfterGrace tests that a timeout marks the
// channel suspect: when the pre-send drain finds nothing, the dispatcher
// waits for the late frame to land and drains once more before reuse.
func TestCall_TimeoutDrainsAgainAfterGrace(t *testing.T) {
	ch := &lateChannel{stale: true}
	ch.queue = []step{
		{err: fmt.Errorf("%w after 10ms", errors.ErrRequestTimeout)},
		{frame: wire.Frame{TypeMark: wire.TOMInteger, Payload: []byte("3")}},
	}
	d := newTestDispatcher(ch, nil)

	_, err := d.Call(context.Background(), "FromMouse")
	require.ErrorIs(t, err, errors.ErrRequestTimeout)

	result, err := d.Call(context.Background(), "AHKWinGetCount", "", "", "", "", "", "", "")
	require.NoError(t, err)
	require.Equal(t, 3, result)

	ch.mu.Lock()
	defer ch.mu.Unlock()
	assert.False(t, ch.stale, "late frame should have been drained before reuse")
	assert.GreaterOrEqual(t, ch.drains, 3)
}
