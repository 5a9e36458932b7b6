package ahk

import "context"

// AsyncEngine is the non-blocking surface of an Engine, obtained from
// Engine.Async. Every method runs the same code path as its blocking
// counterpart in a goroutine and returns a FutureResult immediately.
// Commands still execute strictly one at a time on the daemon.
type AsyncEngine struct {
	engine *Engine
}

// newVoidFuture adapts an error-only operation to a future.
func newVoidFuture(fn func() error) *FutureResult[struct{}] {
	return newFuture(func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// Mouse

// MouseMove moves the cursor. See Engine.MouseMove.
func (a *AsyncEngine) MouseMove(ctx context.Context, x, y, speed int, relative bool) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.MouseMove(ctx, x, y, speed, relative) })
}

// MousePosition returns the cursor position. See Engine.MousePosition.
func (a *AsyncEngine) MousePosition(ctx context.Context) *FutureResult[Coordinate] {
	return newFuture(func() (Coordinate, error) { return a.engine.MousePosition(ctx) })
}

// Click performs a mouse click. See Engine.Click.
func (a *AsyncEngine) Click(ctx context.Context, opts ClickOptions) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.Click(ctx, opts) })
}

// MouseDrag drags the mouse. See Engine.MouseDrag.
func (a *AsyncEngine) MouseDrag(ctx context.Context, button string, x1, y1, x2, y2, speed int, relative bool) *FutureResult[struct{}] {
	return newVoidFuture(func() error {
		return a.engine.MouseDrag(ctx, button, x1, y1, x2, y2, speed, relative)
	})
}

// SetCoordMode sets the coordinate reference. See Engine.SetCoordMode.
func (a *AsyncEngine) SetCoordMode(ctx context.Context, target, relativeTo string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SetCoordMode(ctx, target, relativeTo) })
}

// CoordMode returns the current coordinate mode for target. See Engine.CoordMode.
func (a *AsyncEngine) CoordMode(ctx context.Context, target string) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.CoordMode(ctx, target) })
}

// RightClick clicks the secondary button. See Engine.RightClick.
func (a *AsyncEngine) RightClick(ctx context.Context, x, y int) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.RightClick(ctx, x, y) })
}

// DoubleClick clicks the primary button twice. See Engine.DoubleClick.
func (a *AsyncEngine) DoubleClick(ctx context.Context, x, y int) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.DoubleClick(ctx, x, y) })
}

// Keyboard

// Send sends simulated keystrokes. See Engine.Send.
func (a *AsyncEngine) Send(ctx context.Context, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.Send(ctx, keys) })
}

// SendRaw sends keys literally. See Engine.SendRaw.
func (a *AsyncEngine) SendRaw(ctx context.Context, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SendRaw(ctx, keys) })
}

// SendInput sends keys via SendInput. See Engine.SendInput.
func (a *AsyncEngine) SendInput(ctx context.Context, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SendInput(ctx, keys) })
}

// SendEvent sends keys via the keyboard event method. See Engine.SendEvent.
func (a *AsyncEngine) SendEvent(ctx context.Context, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SendEvent(ctx, keys) })
}

// SendPlay sends keys via SendPlay. See Engine.SendPlay.
func (a *AsyncEngine) SendPlay(ctx context.Context, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SendPlay(ctx, keys) })
}

// KeyDown presses and holds a key. See Engine.KeyDown.
func (a *AsyncEngine) KeyDown(ctx context.Context, key string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.KeyDown(ctx, key) })
}

// KeyUp releases a held key. See Engine.KeyUp.
func (a *AsyncEngine) KeyUp(ctx context.Context, key string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.KeyUp(ctx, key) })
}

// KeyPress presses and releases a key. See Engine.KeyPress.
func (a *AsyncEngine) KeyPress(ctx context.Context, key string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.KeyPress(ctx, key) })
}

// KeyState reports whether a key is down. See Engine.KeyState.
func (a *AsyncEngine) KeyState(ctx context.Context, key, mode string) *FutureResult[bool] {
	return newFuture(func() (bool, error) { return a.engine.KeyState(ctx, key, mode) })
}

// KeyWait waits for a key event. See Engine.KeyWait.
func (a *AsyncEngine) KeyWait(ctx context.Context, key, options string) *FutureResult[bool] {
	return newFuture(func() (bool, error) { return a.engine.KeyWait(ctx, key, options) })
}

// SetKeyDelay sets keystroke timing. See Engine.SetKeyDelay.
func (a *AsyncEngine) SetKeyDelay(ctx context.Context, delay, pressDuration int) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SetKeyDelay(ctx, delay, pressDuration) })
}

// SetCapsLockState sets the CapsLock state. See Engine.SetCapsLockState.
func (a *AsyncEngine) SetCapsLockState(ctx context.Context, state string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SetCapsLockState(ctx, state) })
}

// Type sends text literally. See Engine.Type.
func (a *AsyncEngine) Type(ctx context.Context, text string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.Type(ctx, text) })
}

// Windows

// WinGetTitle returns a window title. See Engine.WinGetTitle.
func (a *AsyncEngine) WinGetTitle(ctx context.Context, spec WinSpec) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.WinGetTitle(ctx, spec) })
}

// WinGetClass returns a window class. See Engine.WinGetClass.
func (a *AsyncEngine) WinGetClass(ctx context.Context, spec WinSpec) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.WinGetClass(ctx, spec) })
}

// WinGetText returns a window's text. See Engine.WinGetText.
func (a *AsyncEngine) WinGetText(ctx context.Context, spec WinSpec) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.WinGetText(ctx, spec) })
}

// WinActivate activates a window. See Engine.WinActivate.
func (a *AsyncEngine) WinActivate(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinActivate(ctx, spec) })
}

// WinActivateBottom activates the bottommost match. See Engine.WinActivateBottom.
func (a *AsyncEngine) WinActivateBottom(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinActivateBottom(ctx, spec) })
}

// WinExist reports whether any window matches. See Engine.WinExist.
func (a *AsyncEngine) WinExist(ctx context.Context, spec WinSpec) *FutureResult[bool] {
	return newFuture(func() (bool, error) { return a.engine.WinExist(ctx, spec) })
}

// WinClose closes a window. See Engine.WinClose.
func (a *AsyncEngine) WinClose(ctx context.Context, spec WinSpec, secondsToWait string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinClose(ctx, spec, secondsToWait) })
}

// WinHide hides a window. See Engine.WinHide.
func (a *AsyncEngine) WinHide(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinHide(ctx, spec) })
}

// WinShow unhides a window. See Engine.WinShow.
func (a *AsyncEngine) WinShow(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinShow(ctx, spec) })
}

// WinKill forcibly closes a window. See Engine.WinKill.
func (a *AsyncEngine) WinKill(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinKill(ctx, spec) })
}

// WinMaximize maximizes a window. See Engine.WinMaximize.
func (a *AsyncEngine) WinMaximize(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinMaximize(ctx, spec) })
}

// WinMinimize minimizes a window. See Engine.WinMinimize.
func (a *AsyncEngine) WinMinimize(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinMinimize(ctx, spec) })
}

// WinRestore restores a window. See Engine.WinRestore.
func (a *AsyncEngine) WinRestore(ctx context.Context, spec WinSpec) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinRestore(ctx, spec) })
}

// WinSetTitle changes a window title. See Engine.WinSetTitle.
func (a *AsyncEngine) WinSetTitle(ctx context.Context, spec WinSpec, newTitle string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinSetTitle(ctx, spec, newTitle) })
}

// WinSetAlwaysOnTop sets the always-on-top state. See Engine.WinSetAlwaysOnTop.
func (a *AsyncEngine) WinSetAlwaysOnTop(ctx context.Context, spec WinSpec, value string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinSetAlwaysOnTop(ctx, spec, value) })
}

// WinIsAlwaysOnTop reports the always-on-top state. See Engine.WinIsAlwaysOnTop.
func (a *AsyncEngine) WinIsAlwaysOnTop(ctx context.Context, spec WinSpec) *FutureResult[bool] {
	return newFuture(func() (bool, error) { return a.engine.WinIsAlwaysOnTop(ctx, spec) })
}

// WinMove moves and resizes a window. See Engine.WinMove.
func (a *AsyncEngine) WinMove(ctx context.Context, spec WinSpec, x, y, width, height int) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinMove(ctx, spec, x, y, width, height) })
}

// WinGet returns a window handle. See Engine.WinGet.
func (a *AsyncEngine) WinGet(ctx context.Context, spec WinSpec) *FutureResult[*Window] {
	return newFuture(func() (*Window, error) { return a.engine.WinGet(ctx, spec) })
}

// WinGetLast returns the bottommost matching window. See Engine.WinGetLast.
func (a *AsyncEngine) WinGetLast(ctx context.Context, spec WinSpec) *FutureResult[*Window] {
	return newFuture(func() (*Window, error) { return a.engine.WinGetLast(ctx, spec) })
}

// WinGetPos returns a window rectangle. See Engine.WinGetPos.
func (a *AsyncEngine) WinGetPos(ctx context.Context, spec WinSpec) *FutureResult[Position] {
	return newFuture(func() (Position, error) { return a.engine.WinGetPos(ctx, spec) })
}

// ListWindows lists matching windows. See Engine.ListWindows.
func (a *AsyncEngine) ListWindows(ctx context.Context, spec WinSpec) *FutureResult[[]*Window] {
	return newFuture(func() ([]*Window, error) { return a.engine.ListWindows(ctx, spec) })
}

// WinGetPID returns a window's process ID. See Engine.WinGetPID.
func (a *AsyncEngine) WinGetPID(ctx context.Context, spec WinSpec) *FutureResult[int] {
	return newFuture(func() (int, error) { return a.engine.WinGetPID(ctx, spec) })
}

// WinGetCount counts matching windows. See Engine.WinGetCount.
func (a *AsyncEngine) WinGetCount(ctx context.Context, spec WinSpec) *FutureResult[int] {
	return newFuture(func() (int, error) { return a.engine.WinGetCount(ctx, spec) })
}

// WinGetControls lists a window's controls. See Engine.WinGetControls.
func (a *AsyncEngine) WinGetControls(ctx context.Context, spec WinSpec) *FutureResult[[]*Control] {
	return newFuture(func() ([]*Control, error) { return a.engine.WinGetControls(ctx, spec) })
}

// WindowFromMouse returns the window under the mouse. See Engine.WindowFromMouse.
func (a *AsyncEngine) WindowFromMouse(ctx context.Context) *FutureResult[*Window] {
	return newFuture(func() (*Window, error) { return a.engine.WindowFromMouse(ctx) })
}

// WinSend sends keystrokes to a window. See Engine.WinSend.
func (a *AsyncEngine) WinSend(ctx context.Context, spec WinSpec, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinSend(ctx, spec, keys) })
}

// WinSendRaw sends literal text to a window. See Engine.WinSendRaw.
func (a *AsyncEngine) WinSendRaw(ctx context.Context, spec WinSpec, text string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.WinSendRaw(ctx, spec, text) })
}

// ControlSend sends keystrokes to a control. See Engine.ControlSend.
func (a *AsyncEngine) ControlSend(ctx context.Context, spec WinSpec, control, keys string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.ControlSend(ctx, spec, control, keys) })
}

// SetTitleMatchMode sets the default title match mode. See Engine.SetTitleMatchMode.
func (a *AsyncEngine) SetTitleMatchMode(ctx context.Context, mode, speed string) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SetTitleMatchMode(ctx, mode, speed) })
}

// TitleMatchMode returns the current title match mode. See Engine.TitleMatchMode.
func (a *AsyncEngine) TitleMatchMode(ctx context.Context) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.TitleMatchMode(ctx) })
}

// TitleMatchSpeed returns the current title match speed. See Engine.TitleMatchSpeed.
func (a *AsyncEngine) TitleMatchSpeed(ctx context.Context) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.TitleMatchSpeed(ctx) })
}

// SetDetectHiddenWindows sets default hidden-window detection. See Engine.SetDetectHiddenWindows.
func (a *AsyncEngine) SetDetectHiddenWindows(ctx context.Context, value bool) *FutureResult[struct{}] {
	return newVoidFuture(func() error { return a.engine.SetDetectHiddenWindows(ctx, value) })
}

// Screen

// PixelGetColor samples a pixel. See Engine.PixelGetColor.
func (a *AsyncEngine) PixelGetColor(ctx context.Context, x, y int, options string) *FutureResult[string] {
	return newFuture(func() (string, error) { return a.engine.PixelGetColor(ctx, x, y, options) })
}

// PixelSearch searches for a pixel color. See Engine.PixelSearch.
func (a *AsyncEngine) PixelSearch(ctx context.Context, x1, y1, x2, y2 int, color string, variation int, options string) *FutureResult[Coordinate] {
	return newFuture(func() (Coordinate, error) {
		return a.engine.PixelSearch(ctx, x1, y1, x2, y2, color, variation, options)
	})
}

// ImageSearch searches for an image. See Engine.ImageSearch.
func (a *AsyncEngine) ImageSearch(ctx context.Context, x1, y1, x2, y2 int, imagePath, options string) *FutureResult[Coordinate] {
	return newFuture(func() (Coordinate, error) {
		return a.engine.ImageSearch(ctx, x1, y1, x2, y2, imagePath, options)
	})
}

// Call executes a named daemon command. See Engine.Call.
func (a *AsyncEngine) Call(ctx context.Context, function string, args ...any) *FutureResult[any] {
	return newFuture(func() (any, error) { return a.engine.Call(ctx, function, args...) })
}
