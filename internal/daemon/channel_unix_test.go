//go:build !windows

package daemon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// fakeDaemon writes an executable shell script standing in for the
// interpreter. It ignores the interpreter arguments the supervisor always
// passes and runs the given body.
func fakeDaemon(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-daemon")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	return path
}

// TestChannel_ReceivesFrames tests frame assembly from a live process.
func TestChannel_ReceivesFrames(t *testing.T) {
	exe := fakeDaemon(t, `printf '002\n0\n(100, 200)\n'; read _`)
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: exe, ScriptPath: "daemon.ahk"}, time.Second)

	require.NoError(t, ch.Start(context.Background()))

	t.Cleanup(func() { ch.Close() })

	frame, err := ch.Recv(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, wire.TOMCoordinate, frame.TypeMark)
	assert.Equal(t, "(100, 200)", string(frame.Payload))
	assert.True(t, ch.Alive())
}

// TestChannel_RoundTrip tests a full request/response exchange and graceful
// shutdown when stdin closes.
func TestChannel_RoundTrip(t *testing.T) {
	exe := fakeDaemon(t, `while read line; do printf '005\n0\n%s\n' "$line"; done`)
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: exe, ScriptPath: "daemon.ahk"}, 5*time.Second)

	require.NoError(t, ch.Start(context.Background()))

	require.NoError(t, ch.Send(context.Background(), []byte("AHKMouseGetPos\n")))

	frame, err := ch.Recv(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, wire.TOMString, frame.TypeMark)
	assert.Equal(t, "AHKMouseGetPos", string(frame.Payload))

	// Closing stdin ends the read loop; the exit must not count as a crash.
	require.NoError(t, ch.Close())
}

// TestChannel_RecvTimeout tests that Recv expires with ErrRequestTimeout
// while the process stays silent, and that the channel remains usable.
func TestChannel_RecvTimeout(t *testing.T) {
	exe := fakeDaemon(t, `read _`)
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: exe, ScriptPath: "daemon.ahk"}, time.Second)

	require.NoError(t, ch.Start(context.Background()))

	t.Cleanup(func() { ch.Close() })

	start := time.Now()

	_, err := ch.Recv(context.Background(), 50*time.Millisecond)
	require.ErrorIs(t, err, errors.ErrRequestTimeout)
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, ch.Alive())
}

// TestChannel_CrashDetection tests that a process exiting without producing
// frames surfaces as DaemonCrashedError carrying its exit code and stderr.
func TestChannel_CrashDetection(t *testing.T) {
	var stderrLines []string

	exe := fakeDaemon(t, `echo 'script error: line 1' >&2; exit 2`)
	ch := NewChannel(testLogger(), SupervisorConfig{
		ExePath:    exe,
		ScriptPath: "daemon.ahk",
		Stderr:     func(line string) { stderrLines = append(stderrLines, line) },
	}, time.Second)

	require.NoError(t, ch.Start(context.Background()))

	t.Cleanup(func() { ch.Close() })

	_, err := ch.Recv(context.Background(), 5*time.Second)
	require.Error(t, err)

	var crashErr *errors.DaemonCrashedError
	require.ErrorAs(t, err, &crashErr)
	assert.Equal(t, 2, crashErr.ExitCode)
	assert.Contains(t, crashErr.Stderr, "script error")
	assert.NotEmpty(t, stderrLines)
}

// TestChannel_Restart tests crash recovery via Restart.
func TestChannel_Restart(t *testing.T) {
	exe := fakeDaemon(t, `printf '003\n0\n1\n'; read _`)
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: exe, ScriptPath: "daemon.ahk"}, time.Second)

	require.NoError(t, ch.Start(context.Background()))

	t.Cleanup(func() { ch.Close() })

	first, err := ch.Recv(context.Background(), 5*time.Second)
	require.NoError(t, err)

	require.NoError(t, ch.Restart(context.Background()))

	second, err := ch.Recv(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, first.TypeMark, second.TypeMark)
	assert.True(t, ch.Alive())
}

// TestChannel_DrainDiscardsStale tests that frames arriving after a timeout
// are discarded by the next Drain.
func TestChannel_DrainDiscardsStale(t *testing.T) {
	exe := fakeDaemon(t, `printf '005\n0\nstale\n'; read _`)
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: exe, ScriptPath: "daemon.ahk"}, time.Second)

	require.NoError(t, ch.Start(context.Background()))

	t.Cleanup(func() { ch.Close() })

	// Give the frame time to land in the buffer without receiving it.
	require.Eventually(t, func() bool { return ch.Drain() == 1 },
		5*time.Second, 10*time.Millisecond)
	require.Equal(t, 0, ch.Drain())
}
