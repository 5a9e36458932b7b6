package exe

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestResolve_ExplicitPath tests that an explicit path is used exclusively.
func TestResolve_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "AutoHotkey.exe")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o755))

	resolved, err := Resolve(testLogger(), path)
	require.NoError(t, err)
	require.Equal(t, path, resolved)
}

// TestResolve_ExplicitPathMissing tests that a bad explicit path fails hard
// instead of falling back to discovery.
func TestResolve_ExplicitPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.exe")

	_, err := Resolve(testLogger(), missing)
	require.Error(t, err)

	var notFound *errors.ExecutableNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{missing}, notFound.SearchedPaths)
}

// TestResolve_ExplicitPathOddExtension tests that an explicit path without
// the .exe extension still resolves but logs a warning.
func TestResolve_ExplicitPathOddExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "autohotkey")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o755))

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	resolved, err := Resolve(log, path)
	require.NoError(t, err)
	require.Equal(t, path, resolved)
	assert.Contains(t, buf.String(), "does not look like a Windows executable")
}

// TestResolve_ExplicitPathIsDirectory tests that a directory is not accepted.
func TestResolve_ExplicitPathIsDirectory(t *testing.T) {
	_, err := Resolve(testLogger(), t.TempDir())
	require.Error(t, err)

	var notFound *errors.ExecutableNotFoundError
	require.ErrorAs(t, err, &notFound)
}

// TestResolve_EnvPath tests discovery via the AHK_PATH environment variable.
func TestResolve_EnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "AutoHotkey.exe")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o755))

	t.Setenv("AHK_PATH", path)

	resolved, err := Resolve(testLogger(), "")
	require.NoError(t, err)
	require.Equal(t, path, resolved)
}

// TestResolve_NotFoundListsSearches tests that the failure names everything
// that was searched, including the bad AHK_PATH value.
func TestResolve_NotFoundListsSearches(t *testing.T) {
	t.Setenv("AHK_PATH", filepath.Join(t.TempDir(), "missing.exe"))
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve(testLogger(), "")
	require.Error(t, err)

	var notFound *errors.ExecutableNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.SearchedPaths, "AutoHotkey.exe")
	assert.Contains(t, notFound.SearchedPaths, DefaultInstallPath)
	assert.Contains(t, notFound.Error(), "AHK_PATH")
}

// TestLooksLikeExecutable tests the extension heuristic.
func TestLooksLikeExecutable(t *testing.T) {
	assert.True(t, LooksLikeExecutable(`C:\tools\AutoHotkey.exe`))
	assert.True(t, LooksLikeExecutable("autohotkey.EXE"))
	assert.False(t, LooksLikeExecutable("/usr/bin/autohotkey"))
}
