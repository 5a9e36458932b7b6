// Package exe locates the AutoHotkey executable.
package exe

import (
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

// DefaultInstallPath is the conventional AutoHotkey install location checked
// as a last resort.
const DefaultInstallPath = `C:\Program Files\AutoHotkey\AutoHotkey.exe`

// candidateNames are the executable names searched in PATH, in order.
var candidateNames = []string{
	"AutoHotkey.exe",
	"AutoHotkeyU64.exe",
	"AutoHotkeyU32.exe",
	"AutoHotkeyA32.exe",
}

// Resolve locates the AutoHotkey executable.
//
// Search order: the explicit path (used exclusively when set), the AHK_PATH
// environment variable, the candidate names in PATH, then the conventional
// install location. Returns ExecutableNotFoundError listing everything that
// was searched.
func Resolve(log *slog.Logger, explicit string) (string, error) {
	if explicit != "" {
		log.Debug("Using explicit executable path", "path", explicit)

		if err := checkFile(explicit); err != nil {
			log.Debug("Explicit executable path not usable", "path", explicit, "error", err)

			return "", &errors.ExecutableNotFoundError{SearchedPaths: []string{explicit}}
		}

		if !LooksLikeExecutable(explicit) {
			log.Warn("Executable path does not look like a Windows executable", "path", explicit)
		}

		return explicit, nil
	}

	searched := make([]string, 0, len(candidateNames)+2)

	if envPath := os.Getenv("AHK_PATH"); envPath != "" {
		log.Debug("Checking AHK_PATH", "path", envPath)

		if err := checkFile(envPath); err == nil {
			return envPath, nil
		}

		searched = append(searched, "$AHK_PATH ("+envPath+")")
	}

	for _, name := range candidateNames {
		if path, err := exec.LookPath(name); err == nil {
			log.Debug("Found executable in PATH", "path", path)

			return path, nil
		}

		searched = append(searched, name)
	}

	log.Debug("Checking default install location", "path", DefaultInstallPath)

	if err := checkFile(DefaultInstallPath); err == nil {
		return DefaultInstallPath, nil
	}

	searched = append(searched, DefaultInstallPath)

	log.Warn("AutoHotkey executable not found", "searched_paths", searched)

	return "", &errors.ExecutableNotFoundError{SearchedPaths: searched}
}

// checkFile verifies the path exists and is a regular file, not a directory.
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return os.ErrInvalid
	}

	return nil
}

// LooksLikeExecutable reports whether the path carries the .exe extension.
// A missing extension usually signals a misconfiguration worth warning about.
func LooksLikeExecutable(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".exe")
}
