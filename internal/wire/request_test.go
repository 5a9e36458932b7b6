package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

// TestRequestEncode_Basic tests simple request encoding.
func TestRequestEncode_Basic(t *testing.T) {
	data, err := Request{Function: "AHKMouseMove", Args: []string{"100", "200", "2"}}.Encode()
	require.NoError(t, err)
	require.Equal(t, "AHKMouseMove,100,200,2\n", string(data))
}

// TestRequestEncode_NoArgs tests encoding a command with no arguments.
func TestRequestEncode_NoArgs(t *testing.T) {
	data, err := Request{Function: "AHKMouseGetPos"}.Encode()
	require.NoError(t, err)
	require.Equal(t, "AHKMouseGetPos\n", string(data))
}

// TestRequestEncode_NewlineEscape tests that newlines in arguments are
// escaped so the request stays on one line.
func TestRequestEncode_NewlineEscape(t *testing.T) {
	data, err := Request{Function: "AHKSend", Args: []string{"line one\nline two"}}.Encode()
	require.NoError(t, err)
	require.Equal(t, "AHKSend,line one`nline two\n", string(data))
}

// TestRequestEncode_RejectsUnencodable tests that arguments which cannot
// ride in one field are rejected before any process interaction.
func TestRequestEncode_RejectsUnencodable(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{name: "separator", arg: "a,b"},
		{name: "carriage return", arg: "a\rb"},
		{name: "nul byte", arg: "a\x00b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Request{Function: "AHKSend", Args: []string{tt.arg}}.Encode()
			require.Error(t, err)

			var encErr *errors.EncodingError
			require.ErrorAs(t, err, &encErr)
			assert.Equal(t, "AHKSend", encErr.Function)
			assert.Equal(t, tt.arg, encErr.Arg)
		})
	}
}

// TestRequestEncode_RejectsBadFunctionName tests function name validation.
func TestRequestEncode_RejectsBadFunctionName(t *testing.T) {
	_, err := Request{Function: ""}.Encode()
	require.Error(t, err)

	_, err = Request{Function: "Mouse,Move"}.Encode()
	require.Error(t, err)

	var encErr *errors.EncodingError
	require.ErrorAs(t, err, &encErr)
}
