package daemon

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestChannelStart_SpawnFailure tests that a missing executable surfaces as
// SpawnError without leaving anything running.
func TestChannelStart_SpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "AutoHotkey.exe")
	ch := NewChannel(testLogger(), SupervisorConfig{
		ExePath:    missing,
		ScriptPath: "daemon.ahk",
	}, time.Second)

	err := ch.Start(context.Background())
	require.Error(t, err)

	var spawnErr *errors.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, missing, spawnErr.Path)
	assert.False(t, ch.Alive())

	require.NoError(t, ch.Close())
}

// TestChannel_NotStarted tests operations before Start.
func TestChannel_NotStarted(t *testing.T) {
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: "x"}, time.Second)

	err := ch.Send(context.Background(), []byte("MouseGetPos\n"))
	require.ErrorIs(t, err, errors.ErrChannelNotStarted)

	_, err = ch.Recv(context.Background(), time.Second)
	require.ErrorIs(t, err, errors.ErrChannelNotStarted)

	require.Equal(t, 0, ch.Drain())
	require.False(t, ch.Alive())
}

// TestChannel_CloseIdempotent tests that Close is safe to repeat and that a
// closed channel rejects further use.
func TestChannel_CloseIdempotent(t *testing.T) {
	ch := NewChannel(testLogger(), SupervisorConfig{ExePath: "x"}, time.Second)

	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())

	err := ch.Start(context.Background())
	require.ErrorIs(t, err, errors.ErrEngineClosed)

	err = ch.Send(context.Background(), []byte("x\n"))
	require.ErrorIs(t, err, errors.ErrEngineClosed)
}

// TestSupervisor_NotStarted tests writes before launch.
func TestSupervisor_NotStarted(t *testing.T) {
	sup := NewSupervisor(testLogger(), SupervisorConfig{ExePath: "x"})

	err := sup.Write([]byte("x\n"))
	require.ErrorIs(t, err, errors.ErrChannelNotStarted)
	require.False(t, sup.Alive())
	require.Equal(t, 0, sup.Pid())
}
