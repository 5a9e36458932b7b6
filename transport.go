package ahk

import "github.com/spyoungtech/ahk-rewrite/internal/config"

// Channel defines the framed message exchange with the daemon process.
// Implement this to provide custom channels for testing, mocking, or
// alternative transports, and inject it with WithChannel.
//
// The default implementation spawns an AutoHotkey subprocess and frames its
// stdout.
type Channel = config.Channel
