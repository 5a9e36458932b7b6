package ahk

import "context"

// Send sends simulated keystrokes, interpreting special key syntax such as
// "{Enter}" and "^c". The daemon's send functions also take a key delay and
// press duration, sent empty to use the session defaults.
func (e *Engine) Send(ctx context.Context, keys string) error {
	return e.voidCall(ctx, "AHKSend", keys, "", "")
}

// SendRaw sends keys literally, without interpreting special syntax.
func (e *Engine) SendRaw(ctx context.Context, keys string) error {
	return e.voidCall(ctx, "AHKSendRaw", keys, "", "")
}

// SendInput sends keys using the SendInput method, which is faster and more
// reliable than the default.
func (e *Engine) SendInput(ctx context.Context, keys string) error {
	return e.voidCall(ctx, "AHKSendInput", keys)
}

// SendEvent sends keys using the keyboard event method, honoring SetKeyDelay.
func (e *Engine) SendEvent(ctx context.Context, keys string) error {
	return e.voidCall(ctx, "SendEvent", keys)
}

// SendPlay sends keys using the SendPlay method, which can reach programs
// that ignore the other methods.
func (e *Engine) SendPlay(ctx context.Context, keys string) error {
	return e.voidCall(ctx, "AHKSendPlay", keys, "", "")
}

// KeyDown presses and holds a key until KeyUp.
func (e *Engine) KeyDown(ctx context.Context, key string) error {
	return e.SendInput(ctx, "{"+key+" down}")
}

// KeyUp releases a key held by KeyDown.
func (e *Engine) KeyUp(ctx context.Context, key string) error {
	return e.SendInput(ctx, "{"+key+" up}")
}

// KeyPress presses and releases a key.
func (e *Engine) KeyPress(ctx context.Context, key string) error {
	if err := e.KeyDown(ctx, key); err != nil {
		return err
	}

	return e.KeyUp(ctx, key)
}

// KeyState reports whether a key is down. Mode "P" checks the physical
// state, "T" the toggle state (for CapsLock and friends); empty checks the
// logical state.
func (e *Engine) KeyState(ctx context.Context, key, mode string) (bool, error) {
	return e.boolCall(ctx, "AHKKeyState", key, mode)
}

// KeyWait blocks until a key is released (or pressed, with the "D" option).
// Options use the interpreter's KeyWait syntax, for example "DT5" to wait
// for a press with a five second limit; empty options are omitted from the
// wire. Reports false if the wait timed out.
func (e *Engine) KeyWait(ctx context.Context, key, options string) (bool, error) {
	v, err := e.intCall(ctx, "AHKKeyWait", key, options)
	if err != nil {
		return false, err
	}

	return v == 0, nil
}

// SetKeyDelay sets the delay between keystrokes and the press duration, in
// milliseconds, for SendEvent.
func (e *Engine) SetKeyDelay(ctx context.Context, delay, pressDuration int) error {
	return e.voidCall(ctx, "SetKeyDelay", delay, pressDuration)
}

// SetCapsLockState sets CapsLock to "On", "Off", "AlwaysOn", or "AlwaysOff".
func (e *Engine) SetCapsLockState(ctx context.Context, state string) error {
	return e.voidCall(ctx, "SetCapsLockState", state)
}

// Type sends text literally via SendRaw. Convenience wrapper for plain text
// entry.
func (e *Engine) Type(ctx context.Context, text string) error {
	return e.SendRaw(ctx, text)
}
