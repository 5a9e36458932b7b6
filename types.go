package ahk

import "github.com/spyoungtech/ahk-rewrite/internal/wire"

// Re-export decoded response types from the wire package.

// Coordinate is a screen point.
type Coordinate = wire.Coordinate

// Position is a window or control rectangle.
type Position = wire.Position

// ControlRef identifies one control inside a window.
type ControlRef = wire.ControlRef

// WinSpec narrows which windows a window operation targets. A zero WinSpec
// matches the active window for most operations, following the interpreter's
// own defaults.
//
// Title accepts the interpreter's title-match syntax, including
// "ahk_id 0x..." to pin an exact window handle and "ahk_class ..." to match
// by window class.
type WinSpec struct {
	// Title matches against window titles.
	Title string

	// Text requires the window to contain this text.
	Text string

	// ExcludeTitle rejects windows whose title matches.
	ExcludeTitle string

	// ExcludeText rejects windows containing this text.
	ExcludeText string

	// DetectHidden overrides hidden-window detection for this command:
	// "On", "Off", or empty to use the session default set by
	// SetDetectHiddenWindows.
	DetectHidden string

	// MatchMode overrides the title match mode for this command: "1", "2",
	// "3", or "RegEx". Empty uses the session default set by
	// SetTitleMatchMode.
	MatchMode string

	// MatchSpeed overrides the title match speed for this command: "Fast"
	// or "Slow". Empty uses the session default.
	MatchSpeed string
}

// criteria returns the full matching block in wire order: the quartet, then
// the detect-hidden and match mode and speed overrides. Window commands take
// their own arguments first, then this block.
func (w WinSpec) criteria() []any {
	return []any{
		w.Title, w.Text, w.ExcludeTitle, w.ExcludeText,
		w.DetectHidden, w.MatchMode, w.MatchSpeed,
	}
}

// quartet returns only the title/text criteria, for the daemon's older
// window entry points that predate the per-command overrides. Those commands
// ignore DetectHidden, MatchMode, and MatchSpeed.
func (w WinSpec) quartet() []any {
	return []any{w.Title, w.Text, w.ExcludeTitle, w.ExcludeText}
}
