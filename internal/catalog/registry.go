package catalog

import "github.com/spyoungtech/ahk-rewrite/internal/wire"

// winCriteria is the window-matching block the AHK-prefixed window commands
// trail with: the title/text quartet, then the per-command detect-hidden
// override ("On", "Off", or empty) and the title match mode and speed
// overrides. An "ahk_id 0x..." value in title pins a specific window handle.
var winCriteria = []Param{
	{Name: "title", Kind: KindString},
	{Name: "text", Kind: KindString},
	{Name: "exclude_title", Kind: KindString},
	{Name: "exclude_text", Kind: KindString},
	{Name: "detect_hidden", Kind: KindString},
	{Name: "match_mode", Kind: KindString},
	{Name: "match_speed", Kind: KindString},
}

// winQuartet is the bare title/text criteria taken by the daemon's older
// window entry points, which predate the per-command overrides.
var winQuartet = []Param{
	{Name: "title", Kind: KindString},
	{Name: "text", Kind: KindString},
	{Name: "exclude_title", Kind: KindString},
	{Name: "exclude_text", Kind: KindString},
}

func withCriteria(params ...Param) []Param {
	return append(params, winCriteria...)
}

func withQuartet(params ...Param) []Param {
	return append(params, winQuartet...)
}

// registry maps daemon function names to their specs. The parameter lists
// pin the calling convention of the daemon script; the script and this table
// must change together.
var registry = map[string]*Spec{
	// Mouse
	"AHKMouseMove": {
		Function: "AHKMouseMove",
		Params: []Param{
			{Name: "x", Kind: KindInt},
			{Name: "y", Kind: KindInt},
			{Name: "speed", Kind: KindInt},
			// "R" for a relative move, omitted otherwise.
			{Name: "relative", Kind: KindString, Optional: true},
		},
		Result: wire.TOMNoValue,
	},
	"AHKMouseGetPos": {
		Function: "AHKMouseGetPos",
		Params:   []Param{},
		Result:   wire.TOMCoordinate,
	},
	"AHKClick": {
		Function: "AHKClick",
		Params: []Param{
			{Name: "x", Kind: KindInt},
			{Name: "y", Kind: KindInt},
			{Name: "button", Kind: KindString},
			{Name: "click_count", Kind: KindInt},
			{Name: "direction", Kind: KindString},
			// "Rel" for a relative click, empty otherwise.
			{Name: "relative", Kind: KindString},
			{Name: "coord_mode", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"MouseClickDrag": {
		Function: "MouseClickDrag",
		Params: []Param{
			{Name: "button", Kind: KindString},
			{Name: "x1", Kind: KindInt},
			{Name: "y1", Kind: KindInt},
			{Name: "x2", Kind: KindInt},
			{Name: "y2", Kind: KindInt},
			{Name: "speed", Kind: KindInt},
			{Name: "relative", Kind: KindBool},
		},
		Result: wire.TOMNoValue,
	},
	"AHKSetCoordMode": {
		Function: "AHKSetCoordMode",
		Params: []Param{
			{Name: "target", Kind: KindString},
			{Name: "relative_to", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"AHKGetCoordMode": {
		Function: "AHKGetCoordMode",
		Params: []Param{
			{Name: "target", Kind: KindString},
		},
		Result: wire.TOMString,
	},

	// Keyboard
	"AHKSend":     sendSpec("AHKSend"),
	"AHKSendRaw":  sendSpec("AHKSendRaw"),
	"AHKSendPlay": sendSpec("AHKSendPlay"),
	"AHKSendInput": {
		Function: "AHKSendInput",
		Params: []Param{
			{Name: "keys", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"SendEvent": {
		Function: "SendEvent",
		Params: []Param{
			{Name: "keys", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"SetKeyDelay": {
		Function: "SetKeyDelay",
		Params: []Param{
			{Name: "delay", Kind: KindInt},
			{Name: "press_duration", Kind: KindInt},
		},
		Result: wire.TOMNoValue,
	},
	"AHKKeyState": {
		Function: "AHKKeyState",
		Params: []Param{
			{Name: "key_name", Kind: KindString},
			{Name: "mode", Kind: KindString},
		},
		Result: wire.TOMBoolean,
	},
	"AHKKeyWait": {
		Function: "AHKKeyWait",
		Params: []Param{
			{Name: "key_name", Kind: KindString},
			// "D", "L", "T{n}" flags, appended only when present.
			{Name: "options", Kind: KindString, Optional: true},
		},
		Result: wire.TOMInteger,
	},
	"SetCapsLockState": {
		Function: "SetCapsLockState",
		Params: []Param{
			{Name: "state", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},

	// Session defaults
	"AHKSetTitleMatchMode": {
		Function: "AHKSetTitleMatchMode",
		Params: []Param{
			{Name: "match_mode", Kind: KindString},
			{Name: "match_speed", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"AHKGetTitleMatchMode": {
		Function: "AHKGetTitleMatchMode",
		Params:   []Param{},
		Result:   wire.TOMString,
	},
	"AHKGetTitleMatchSpeed": {
		Function: "AHKGetTitleMatchSpeed",
		Params:   []Param{},
		Result:   wire.TOMString,
	},
	"AHKSetDetectHiddenWindows": {
		Function: "AHKSetDetectHiddenWindows",
		Params: []Param{
			{Name: "value", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},

	// Window state
	"AHKWinGetTitle": {Function: "AHKWinGetTitle", Params: withCriteria(), Result: wire.TOMString},
	"AHKWinGetText":  {Function: "AHKWinGetText", Params: withCriteria(), Result: wire.TOMString},
	"WinGetClass":    {Function: "WinGetClass", Params: withQuartet(), Result: wire.TOMString},
	"WinActivate":    {Function: "WinActivate", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinActivateBottom": {
		Function: "WinActivateBottom",
		Params:   withQuartet(),
		Result:   wire.TOMNoValue,
	},
	"AHKWinClose": {
		Function: "AHKWinClose",
		Params: []Param{
			{Name: "title", Kind: KindString},
			{Name: "text", Kind: KindString},
			{Name: "seconds_to_wait", Kind: KindString},
			{Name: "exclude_title", Kind: KindString},
			{Name: "exclude_text", Kind: KindString},
			{Name: "detect_hidden", Kind: KindString},
			{Name: "match_mode", Kind: KindString},
			{Name: "match_speed", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"WinHide":     {Function: "WinHide", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinShow":     {Function: "WinShow", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinKill":     {Function: "WinKill", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinMaximize": {Function: "WinMaximize", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinMinimize": {Function: "WinMinimize", Params: withQuartet(), Result: wire.TOMNoValue},
	"WinRestore":  {Function: "WinRestore", Params: withQuartet(), Result: wire.TOMNoValue},
	"AHKWinSetTitle": {
		Function: "AHKWinSetTitle",
		Params:   withCriteria(Param{Name: "new_title", Kind: KindString}),
		Result:   wire.TOMNoValue,
	},
	"AHKWinSetAlwaysOnTop": {
		Function: "AHKWinSetAlwaysOnTop",
		Params:   withCriteria(Param{Name: "value", Kind: KindString}),
		Result:   wire.TOMNoValue,
	},
	"AHKWinIsAlwaysOnTop": {
		Function: "AHKWinIsAlwaysOnTop",
		Params:   withCriteria(),
		Result:   wire.TOMBoolean,
	},
	"AHKWinMove": {
		Function: "AHKWinMove",
		Params: []Param{
			{Name: "title", Kind: KindString},
			{Name: "text", Kind: KindString},
			{Name: "x", Kind: KindInt},
			{Name: "y", Kind: KindInt},
			{Name: "width", Kind: KindInt},
			{Name: "height", Kind: KindInt},
			{Name: "exclude_title", Kind: KindString},
			{Name: "exclude_text", Kind: KindString},
			{Name: "detect_hidden", Kind: KindString},
			{Name: "match_mode", Kind: KindString},
			{Name: "match_speed", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	},
	"AHKWinGetPos":    {Function: "AHKWinGetPos", Params: withCriteria(), Result: wire.TOMPosition},
	"AHKWinGetID":     {Function: "AHKWinGetID", Params: withCriteria(), Result: wire.TOMWindowID},
	"AHKWinGetIDLast": {Function: "AHKWinGetIDLast", Params: withCriteria(), Result: wire.TOMWindowID},
	"AHKWinGetPID":    {Function: "AHKWinGetPID", Params: withCriteria(), Result: wire.TOMInteger},
	"AHKWinGetCount":  {Function: "AHKWinGetCount", Params: withCriteria(), Result: wire.TOMInteger},
	"AHKWinExist":     {Function: "AHKWinExist", Params: withCriteria(), Result: wire.TOMBoolean},
	"AHKWindowList":   {Function: "AHKWindowList", Params: withCriteria(), Result: wire.TOMWindowIDList},
	"AHKWinGetControlList": {
		Function: "AHKWinGetControlList",
		Params:   withCriteria(),
		Result:   wire.TOMControlList,
	},
	"FromMouse": {Function: "FromMouse", Params: []Param{}, Result: wire.TOMString},
	"WinSend": {
		Function: "WinSend",
		Params:   withQuartet(Param{Name: "keys", Kind: KindString}),
		Result:   wire.TOMNoValue,
	},
	"WinSendRaw": {
		Function: "WinSendRaw",
		Params:   withQuartet(Param{Name: "keys", Kind: KindString}),
		Result:   wire.TOMNoValue,
	},
	"AHKControlSend": {
		Function: "AHKControlSend",
		Params: withCriteria(
			Param{Name: "control", Kind: KindString},
			Param{Name: "keys", Kind: KindString},
		),
		Result: wire.TOMNoValue,
	},

	// Screen
	"PixelGetColor": {
		Function: "PixelGetColor",
		Params: []Param{
			{Name: "x", Kind: KindInt},
			{Name: "y", Kind: KindInt},
			{Name: "options", Kind: KindString},
		},
		Result: wire.TOMString,
	},
	"PixelSearch": {
		Function: "PixelSearch",
		Params: []Param{
			{Name: "x1", Kind: KindInt},
			{Name: "y1", Kind: KindInt},
			{Name: "x2", Kind: KindInt},
			{Name: "y2", Kind: KindInt},
			{Name: "color", Kind: KindString},
			{Name: "variation", Kind: KindInt},
			{Name: "options", Kind: KindString},
		},
		Result: wire.TOMCoordinate,
	},
	"AHKImageSearch": {
		Function: "AHKImageSearch",
		Params: []Param{
			{Name: "x1", Kind: KindInt},
			{Name: "y1", Kind: KindInt},
			{Name: "x2", Kind: KindInt},
			{Name: "y2", Kind: KindInt},
			// Search options ride as "*option" prefixes on the path itself.
			{Name: "image_path", Kind: KindString},
		},
		Result: wire.TOMTuple,
	},
}

// sendSpec covers the keystroke functions that take a key delay and press
// duration after the keys, sent as empty fields when unset.
func sendSpec(function string) *Spec {
	return &Spec{
		Function: function,
		Params: []Param{
			{Name: "keys", Kind: KindString},
			{Name: "key_delay", Kind: KindString},
			{Name: "press_duration", Kind: KindString},
		},
		Result: wire.TOMNoValue,
	}
}
