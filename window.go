package ahk

import "context"

// Window is a handle to one specific window, pinned by its hwnd so the
// handle stays valid when the title changes. Obtain one from WinGet,
// ListWindows, or WindowFromMouse.
type Window struct {
	engine *Engine
	id     string
}

// newWindow wraps a hex window handle like "0x90cb4".
func (e *Engine) newWindow(id string) *Window {
	return &Window{engine: e, id: id}
}

// ID returns the window handle as a hex string.
func (w *Window) ID() string {
	return w.id
}

// Spec returns the criteria pinning exactly this window. Handle matching is
// exact, so the match mode is forced to fast literal matching regardless of
// the session default.
func (w *Window) Spec() WinSpec {
	return WinSpec{Title: "ahk_id " + w.id, MatchMode: "1", MatchSpeed: "Fast"}
}

// Exists reports whether the window is still present.
func (w *Window) Exists(ctx context.Context) (bool, error) {
	return w.engine.WinExist(ctx, w.Spec())
}

// Title returns the window's current title.
func (w *Window) Title(ctx context.Context) (string, error) {
	return w.engine.WinGetTitle(ctx, w.Spec())
}

// Class returns the window's class.
func (w *Window) Class(ctx context.Context) (string, error) {
	return w.engine.WinGetClass(ctx, w.Spec())
}

// Text returns the window's text.
func (w *Window) Text(ctx context.Context) (string, error) {
	return w.engine.WinGetText(ctx, w.Spec())
}

// Activate brings the window to the foreground.
func (w *Window) Activate(ctx context.Context) error {
	return w.engine.WinActivate(ctx, w.Spec())
}

// Close asks the window to close. A non-empty secondsToWait gives it that
// long before the command returns.
func (w *Window) Close(ctx context.Context, secondsToWait string) error {
	return w.engine.WinClose(ctx, w.Spec(), secondsToWait)
}

// Hide hides the window.
func (w *Window) Hide(ctx context.Context) error {
	return w.engine.WinHide(ctx, w.Spec())
}

// Show unhides the window.
func (w *Window) Show(ctx context.Context) error {
	return w.engine.WinShow(ctx, w.Spec())
}

// Kill forcibly closes the window.
func (w *Window) Kill(ctx context.Context) error {
	return w.engine.WinKill(ctx, w.Spec())
}

// Maximize maximizes the window.
func (w *Window) Maximize(ctx context.Context) error {
	return w.engine.WinMaximize(ctx, w.Spec())
}

// Minimize minimizes the window.
func (w *Window) Minimize(ctx context.Context) error {
	return w.engine.WinMinimize(ctx, w.Spec())
}

// Restore restores the window from a minimized or maximized state.
func (w *Window) Restore(ctx context.Context) error {
	return w.engine.WinRestore(ctx, w.Spec())
}

// SetTitle changes the window's title.
func (w *Window) SetTitle(ctx context.Context, title string) error {
	return w.engine.WinSetTitle(ctx, w.Spec(), title)
}

// SetAlwaysOnTop sets the always-on-top state: "On", "Off", or "Toggle".
func (w *Window) SetAlwaysOnTop(ctx context.Context, value string) error {
	return w.engine.WinSetAlwaysOnTop(ctx, w.Spec(), value)
}

// IsAlwaysOnTop reports whether the window is always on top.
func (w *Window) IsAlwaysOnTop(ctx context.Context) (bool, error) {
	return w.engine.WinIsAlwaysOnTop(ctx, w.Spec())
}

// Move moves and resizes the window.
func (w *Window) Move(ctx context.Context, x, y, width, height int) error {
	return w.engine.WinMove(ctx, w.Spec(), x, y, width, height)
}

// Position returns the window's position and size.
func (w *Window) Position(ctx context.Context) (Position, error) {
	return w.engine.WinGetPos(ctx, w.Spec())
}

// PID returns the id of the process owning the window.
func (w *Window) PID(ctx context.Context) (int, error) {
	return w.engine.WinGetPID(ctx, w.Spec())
}

// Send sends keystrokes directly to the window without activating it.
func (w *Window) Send(ctx context.Context, keys string) error {
	return w.engine.WinSend(ctx, w.Spec(), keys)
}

// SendRaw sends keys literally to the window without activating it.
func (w *Window) SendRaw(ctx context.Context, keys string) error {
	return w.engine.WinSendRaw(ctx, w.Spec(), keys)
}

// Controls returns the window's controls.
func (w *Window) Controls(ctx context.Context) ([]*Control, error) {
	return w.engine.WinGetControls(ctx, w.Spec())
}

// Control is one control inside a Window, identified by its hwnd and class
// name (ClassNN, like "Button1").
type Control struct {
	window *Window
	hwnd   string
	class  string
}

// ID returns the control's hwnd as a hex string.
func (c *Control) ID() string {
	return c.hwnd
}

// Class returns the control's ClassNN name.
func (c *Control) Class() string {
	return c.class
}

// Window returns the control's parent window.
func (c *Control) Window() *Window {
	return c.window
}

// Send sends keystrokes to the control without activating its window.
func (c *Control) Send(ctx context.Context, keys string) error {
	return c.window.engine.ControlSend(ctx, c.window.Spec(), c.class, keys)
}
