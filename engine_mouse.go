package ahk

import (
	"context"
	"strings"
)

// MouseButton names accepted by Click and MouseClickDrag. Friendly names
// resolve to the interpreter's single-letter codes; already-resolved codes
// and extra buttons ("X1", "X2") pass through unchanged.
var buttonNames = map[string]string{
	"left":       "L",
	"right":      "R",
	"middle":     "M",
	"wheelup":    "WU",
	"wheeldown":  "WD",
	"wheelleft":  "WL",
	"wheelright": "WR",
}

// resolveButton maps a friendly button name to its wire code. An empty name
// means the primary button.
func resolveButton(name string) string {
	if name == "" {
		return "L"
	}

	if code, ok := buttonNames[strings.ToLower(name)]; ok {
		return code
	}

	return name
}

// MouseMove moves the mouse cursor to x, y. Speed ranges 0 (instant) to 100
// (slowest); relative moves are offsets from the current position, flagged
// by a trailing "R" on the wire.
func (e *Engine) MouseMove(ctx context.Context, x, y, speed int, relative bool) error {
	rel := ""
	if relative {
		rel = "R"
	}

	return e.voidCall(ctx, "AHKMouseMove", x, y, speed, rel)
}

// MousePosition returns the current cursor position.
func (e *Engine) MousePosition(ctx context.Context) (Coordinate, error) {
	return e.coordCall(ctx, "AHKMouseGetPos")
}

// ClickOptions configures a Click. The zero value clicks the primary button
// once at the current cursor position.
type ClickOptions struct {
	// X, Y is the click target. Both zero means the current position.
	X int
	Y int

	// Button is a friendly name ("left", "right", "middle", "wheelup", ...)
	// or a wire code ("L", "X1"). Empty means the primary button.
	Button string

	// Count is the number of clicks. Zero means one.
	Count int

	// Direction holds the button down ("D") or releases it ("U").
	// Empty performs a full click.
	Direction string

	// Relative treats X, Y as offsets from the current position.
	Relative bool

	// CoordMode overrides what the coordinates are relative to for this
	// click only: "Screen", "Window", or "Client". Empty uses the session
	// default.
	CoordMode string
}

// Click performs a mouse click.
func (e *Engine) Click(ctx context.Context, opts ClickOptions) error {
	count := opts.Count
	if count == 0 {
		count = 1
	}

	rel := ""
	if opts.Relative {
		rel = "Rel"
	}

	return e.voidCall(ctx, "AHKClick",
		opts.X, opts.Y, resolveButton(opts.Button), count, opts.Direction, rel, opts.CoordMode)
}

// RightClick clicks the secondary button at x, y.
func (e *Engine) RightClick(ctx context.Context, x, y int) error {
	return e.Click(ctx, ClickOptions{X: x, Y: y, Button: "right"})
}

// DoubleClick clicks the primary button twice at x, y.
func (e *Engine) DoubleClick(ctx context.Context, x, y int) error {
	return e.Click(ctx, ClickOptions{X: x, Y: y, Count: 2})
}

// MouseDrag presses button at x1, y1, moves to x2, y2, and releases.
func (e *Engine) MouseDrag(ctx context.Context, button string, x1, y1, x2, y2, speed int, relative bool) error {
	return e.voidCall(ctx, "MouseClickDrag",
		resolveButton(button), x1, y1, x2, y2, speed, relative)
}

// SetCoordMode sets what coordinates for target ("Mouse", "Pixel",
// "ToolTip", ...) are relative to: "Screen", "Window", or "Client".
// The setting applies to all subsequent commands on this engine.
func (e *Engine) SetCoordMode(ctx context.Context, target, relativeTo string) error {
	return e.voidCall(ctx, "AHKSetCoordMode", target, relativeTo)
}

// CoordMode returns the current coordinate mode for target.
func (e *Engine) CoordMode(ctx context.Context, target string) (string, error) {
	return e.stringCall(ctx, "AHKGetCoordMode", target)
}
