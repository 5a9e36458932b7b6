package wire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

// Type order marks emitted by the daemon script. Their values are fixed by
// the script's registration order and are part of the wire contract.
const (
	TOMTuple        = "001"
	TOMCoordinate   = "002"
	TOMInteger      = "003"
	TOMBoolean      = "004"
	TOMString       = "005"
	TOMWindowIDList = "006"
	TOMNoValue      = "007"
	TOMException    = "008"
	TOMControlList  = "009"
	TOMWindowID     = "00a"
	TOMPosition     = "00b"
)

// noValueSentinel is the exact payload of a no-value response: U+E000 in UTF-8.
var noValueSentinel = []byte{0xee, 0x80, 0x80}

// Coordinate is a screen point.
type Coordinate struct {
	X int
	Y int
}

// Position is a window or control rectangle.
type Position struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ControlRef identifies one control inside a window.
type ControlRef struct {
	Hwnd  string
	Class string
}

// ControlList is the decoded form of a windowcontrollist response.
type ControlList struct {
	WindowID string
	Controls []ControlRef
}

// WindowID is a decoded window handle, distinct from a plain string payload.
type WindowID string

// Decode interprets a frame according to its type order mark.
//
// Successful responses come back as the natural Go value: nil (no value),
// string, int, bool, Coordinate, Position, WindowID, []WindowID, ControlList,
// or []any for a bare tuple. An exception frame decodes to an ExecutionError
// carrying the interpreter's verbatim message. Malformed payloads produce
// ResponseParseError.
func Decode(f Frame) (any, error) {
	switch f.TypeMark {
	case TOMNoValue:
		if !bytes.Equal(f.Payload, noValueSentinel) {
			return nil, parseErr(f, fmt.Errorf("unexpected no-value payload % x", f.Payload))
		}

		return nil, nil

	case TOMString:
		return string(f.Payload), nil

	case TOMInteger:
		n, err := strconv.Atoi(strings.TrimSpace(string(f.Payload)))
		if err != nil {
			return nil, parseErr(f, err)
		}

		return n, nil

	case TOMBoolean:
		switch strings.TrimSpace(string(f.Payload)) {
		case "1":
			return true, nil
		case "0":
			return false, nil
		default:
			return nil, parseErr(f, fmt.Errorf("boolean payload must be 0 or 1, got %q", f.Payload))
		}

	case TOMCoordinate:
		nums, err := decodeIntTuple(f, 2)
		if err != nil {
			return nil, err
		}

		return Coordinate{X: nums[0], Y: nums[1]}, nil

	case TOMPosition:
		nums, err := decodeIntTuple(f, 4)
		if err != nil {
			return nil, err
		}

		return Position{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil

	case TOMTuple:
		val, err := parseLiteral(string(f.Payload))
		if err != nil {
			return nil, parseErr(f, err)
		}

		seq, ok := val.([]any)
		if !ok {
			return nil, parseErr(f, fmt.Errorf("expected tuple, got %T", val))
		}

		return seq, nil

	case TOMWindowID:
		return WindowID(strings.TrimSpace(string(f.Payload))), nil

	case TOMWindowIDList:
		return decodeWindowIDList(f.Payload), nil

	case TOMControlList:
		return decodeControlList(f)

	case TOMException:
		return nil, &errors.ExecutionError{Message: string(f.Payload)}

	default:
		return nil, parseErr(f, fmt.Errorf("unknown type order mark"))
	}
}

// decodeIntTuple parses a payload like "(100, 200)" into exactly n integers.
func decodeIntTuple(f Frame, n int) ([]int, error) {
	val, err := parseLiteral(string(f.Payload))
	if err != nil {
		return nil, parseErr(f, err)
	}

	seq, ok := val.([]any)
	if !ok || len(seq) != n {
		return nil, parseErr(f, fmt.Errorf("expected tuple of %d integers, got %q", n, f.Payload))
	}

	nums := make([]int, n)

	for i, item := range seq {
		num, ok := item.(int)
		if !ok {
			return nil, parseErr(f, fmt.Errorf("element %d is not an integer in %q", i, f.Payload))
		}

		nums[i] = num
	}

	return nums, nil
}

// decodeWindowIDList splits a comma-joined id list, tolerating the trailing
// comma the script emits after the last element.
func decodeWindowIDList(payload []byte) []WindowID {
	parts := strings.Split(strings.TrimRight(string(payload), ","), ",")
	ids := make([]WindowID, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		ids = append(ids, WindowID(part))
	}

	return ids
}

// decodeControlList parses a payload like
// ('0x90cb4', [('0x101a2', 'Button1'), ('0x201a4', 'Edit1')]).
func decodeControlList(f Frame) (ControlList, error) {
	val, err := parseLiteral(string(f.Payload))
	if err != nil {
		return ControlList{}, parseErr(f, err)
	}

	outer, ok := val.([]any)
	if !ok || len(outer) != 2 {
		return ControlList{}, parseErr(f, fmt.Errorf("expected (id, controls) pair in %q", f.Payload))
	}

	id, ok := outer[0].(string)
	if !ok {
		return ControlList{}, parseErr(f, fmt.Errorf("window id is not a string in %q", f.Payload))
	}

	rawControls, ok := outer[1].([]any)
	if !ok {
		return ControlList{}, parseErr(f, fmt.Errorf("control list is not a sequence in %q", f.Payload))
	}

	list := ControlList{
		WindowID: id,
		Controls: make([]ControlRef, 0, len(rawControls)),
	}

	for _, raw := range rawControls {
		pair, ok := raw.([]any)
		if !ok || len(pair) != 2 {
			return ControlList{}, parseErr(f, fmt.Errorf("malformed control entry %v", raw))
		}

		hwnd, hok := pair[0].(string)

		class, cok := pair[1].(string)
		if !hok || !cok {
			return ControlList{}, parseErr(f, fmt.Errorf("malformed control entry %v", raw))
		}

		list.Controls = append(list.Controls, ControlRef{Hwnd: hwnd, Class: class})
	}

	return list, nil
}

func parseErr(f Frame, err error) *errors.ResponseParseError {
	return &errors.ResponseParseError{
		TypeMark: f.TypeMark,
		RawData:  string(f.Payload),
		Err:      err,
	}
}
