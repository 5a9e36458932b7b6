package ahk

import (
	"context"
	"fmt"

	"github.com/spyoungtech/ahk-rewrite/internal/wire"
)

// Window operations take a WinSpec and pass its matching criteria after any
// operation-specific arguments, following the daemon script's calling
// convention. Newer daemon entry points take the full criteria block; the
// older ones take only the title/text quartet.

// WinGetTitle returns the title of the first matching window.
func (e *Engine) WinGetTitle(ctx context.Context, spec WinSpec) (string, error) {
	return e.stringCall(ctx, "AHKWinGetTitle", spec.criteria()...)
}

// WinGetClass returns the window class of the first matching window.
func (e *Engine) WinGetClass(ctx context.Context, spec WinSpec) (string, error) {
	return e.stringCall(ctx, "WinGetClass", spec.quartet()...)
}

// WinGetText returns the text of the first matching window.
func (e *Engine) WinGetText(ctx context.Context, spec WinSpec) (string, error) {
	return e.stringCall(ctx, "AHKWinGetText", spec.criteria()...)
}

// WinActivate brings the first matching window to the foreground.
func (e *Engine) WinActivate(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinActivate", spec.quartet()...)
}

// WinActivateBottom activates the bottommost matching window.
func (e *Engine) WinActivateBottom(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinActivateBottom", spec.quartet()...)
}

// WinExist reports whether any window matches.
func (e *Engine) WinExist(ctx context.Context, spec WinSpec) (bool, error) {
	return e.boolCall(ctx, "AHKWinExist", spec.criteria()...)
}

// WinClose closes the first matching window. A non-empty secondsToWait gives
// the window that long to close before the command returns.
func (e *Engine) WinClose(ctx context.Context, spec WinSpec, secondsToWait string) error {
	return e.voidCall(ctx, "AHKWinClose",
		spec.Title, spec.Text, secondsToWait, spec.ExcludeTitle, spec.ExcludeText,
		spec.DetectHidden, spec.MatchMode, spec.MatchSpeed)
}

// WinHide hides the first matching window.
func (e *Engine) WinHide(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinHide", spec.quartet()...)
}

// WinShow unhides the first matching window.
func (e *Engine) WinShow(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinShow", spec.quartet()...)
}

// WinKill forcibly closes the first matching window.
func (e *Engine) WinKill(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinKill", spec.quartet()...)
}

// WinMaximize maximizes the first matching window.
func (e *Engine) WinMaximize(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinMaximize", spec.quartet()...)
}

// WinMinimize minimizes the first matching window.
func (e *Engine) WinMinimize(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinMinimize", spec.quartet()...)
}

// WinRestore restores the first matching window from a minimized or
// maximized state.
func (e *Engine) WinRestore(ctx context.Context, spec WinSpec) error {
	return e.voidCall(ctx, "WinRestore", spec.quartet()...)
}

// WinSetTitle changes the title of the first matching window.
func (e *Engine) WinSetTitle(ctx context.Context, spec WinSpec, newTitle string) error {
	return e.voidCall(ctx, "AHKWinSetTitle", prepend(newTitle, spec.criteria())...)
}

// WinSetAlwaysOnTop sets the always-on-top state of the first matching
// window: "On", "Off", or "Toggle".
func (e *Engine) WinSetAlwaysOnTop(ctx context.Context, spec WinSpec, value string) error {
	return e.voidCall(ctx, "AHKWinSetAlwaysOnTop", prepend(value, spec.criteria())...)
}

// WinIsAlwaysOnTop reports whether the first matching window is always on
// top.
func (e *Engine) WinIsAlwaysOnTop(ctx context.Context, spec WinSpec) (bool, error) {
	return e.boolCall(ctx, "AHKWinIsAlwaysOnTop", spec.criteria()...)
}

// WinMove moves and resizes the first matching window.
func (e *Engine) WinMove(ctx context.Context, spec WinSpec, x, y, width, height int) error {
	return e.voidCall(ctx, "AHKWinMove",
		spec.Title, spec.Text, x, y, width, height,
		spec.ExcludeTitle, spec.ExcludeText,
		spec.DetectHidden, spec.MatchMode, spec.MatchSpeed)
}

// WinGetPos returns the position and size of the first matching window.
func (e *Engine) WinGetPos(ctx context.Context, spec WinSpec) (Position, error) {
	return e.posCall(ctx, "AHKWinGetPos", spec.criteria()...)
}

// WinGet returns a handle to the first (topmost) matching window.
func (e *Engine) WinGet(ctx context.Context, spec WinSpec) (*Window, error) {
	return e.windowCall(ctx, "AHKWinGetID", spec.criteria()...)
}

// WinGetLast returns a handle to the last (bottommost) matching window.
func (e *Engine) WinGetLast(ctx context.Context, spec WinSpec) (*Window, error) {
	return e.windowCall(ctx, "AHKWinGetIDLast", spec.criteria()...)
}

// WinGetPID returns the process id owning the first matching window.
func (e *Engine) WinGetPID(ctx context.Context, spec WinSpec) (int, error) {
	return e.intCall(ctx, "AHKWinGetPID", spec.criteria()...)
}

// WinGetCount returns how many windows match.
func (e *Engine) WinGetCount(ctx context.Context, spec WinSpec) (int, error) {
	return e.intCall(ctx, "AHKWinGetCount", spec.criteria()...)
}

// ListWindows returns a handle for every matching window. A zero WinSpec
// lists all windows.
func (e *Engine) ListWindows(ctx context.Context, spec WinSpec) ([]*Window, error) {
	v, err := e.Call(ctx, "AHKWindowList", spec.criteria()...)
	if err != nil {
		return nil, err
	}

	ids, ok := v.([]wire.WindowID)
	if !ok {
		return nil, fmt.Errorf("AHKWindowList: unexpected result type %T", v)
	}

	windows := make([]*Window, 0, len(ids))
	for _, id := range ids {
		windows = append(windows, e.newWindow(string(id)))
	}

	return windows, nil
}

// WinGetControls returns the controls of the first matching window.
func (e *Engine) WinGetControls(ctx context.Context, spec WinSpec) ([]*Control, error) {
	v, err := e.Call(ctx, "AHKWinGetControlList", spec.criteria()...)
	if err != nil {
		return nil, err
	}

	list, ok := v.(wire.ControlList)
	if !ok {
		return nil, fmt.Errorf("AHKWinGetControlList: unexpected result type %T", v)
	}

	win := e.newWindow(list.WindowID)

	controls := make([]*Control, 0, len(list.Controls))
	for _, ref := range list.Controls {
		controls = append(controls, &Control{window: win, hwnd: ref.Hwnd, class: ref.Class})
	}

	return controls, nil
}

// WindowFromMouse returns a handle to the window under the mouse cursor.
func (e *Engine) WindowFromMouse(ctx context.Context) (*Window, error) {
	id, err := e.stringCall(ctx, "FromMouse")
	if err != nil {
		return nil, err
	}

	return e.newWindow(id), nil
}

// WinSend sends keystrokes directly to the first matching window without
// activating it.
func (e *Engine) WinSend(ctx context.Context, spec WinSpec, keys string) error {
	return e.voidCall(ctx, "WinSend", prepend(keys, spec.quartet())...)
}

// WinSendRaw sends keys literally to the first matching window without
// activating it.
func (e *Engine) WinSendRaw(ctx context.Context, spec WinSpec, keys string) error {
	return e.voidCall(ctx, "WinSendRaw", prepend(keys, spec.quartet())...)
}

// ControlSend sends keystrokes to a control (by ClassNN, like "Edit1") of
// the first matching window.
func (e *Engine) ControlSend(ctx context.Context, spec WinSpec, control, keys string) error {
	args := append([]any{control, keys}, spec.criteria()...)

	return e.voidCall(ctx, "AHKControlSend", args...)
}

// SetTitleMatchMode sets the session default title match mode and speed.
// Mode is "1", "2", "3", or "RegEx"; speed is "Fast" or "Slow". Either may
// be empty to leave that default unchanged.
func (e *Engine) SetTitleMatchMode(ctx context.Context, mode, speed string) error {
	return e.voidCall(ctx, "AHKSetTitleMatchMode", mode, speed)
}

// TitleMatchMode returns the session's current title match mode.
func (e *Engine) TitleMatchMode(ctx context.Context) (string, error) {
	return e.stringCall(ctx, "AHKGetTitleMatchMode")
}

// TitleMatchSpeed returns the session's current title match speed.
func (e *Engine) TitleMatchSpeed(ctx context.Context) (string, error) {
	return e.stringCall(ctx, "AHKGetTitleMatchSpeed")
}

// SetDetectHiddenWindows sets whether window commands see hidden windows by
// default.
func (e *Engine) SetDetectHiddenWindows(ctx context.Context, value bool) error {
	state := "Off"
	if value {
		state = "On"
	}

	return e.voidCall(ctx, "AHKSetDetectHiddenWindows", state)
}

// windowCall executes a command returning a window handle.
func (e *Engine) windowCall(ctx context.Context, function string, args ...any) (*Window, error) {
	v, err := e.Call(ctx, function, args...)
	if err != nil {
		return nil, err
	}

	id, ok := v.(wire.WindowID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected result type %T", function, v)
	}

	return e.newWindow(string(id)), nil
}

// prepend builds the argument list for commands taking one value before the
// window criteria.
func prepend(arg any, criteria []any) []any {
	return append([]any{arg}, criteria...)
}
