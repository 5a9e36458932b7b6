package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseLiteral tests the literal subset the daemon script produces.
func TestParseLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{name: "integer", input: "42", want: 42},
		{name: "negative", input: "-7", want: -7},
		{name: "hex", input: "0x1a2", want: 0x1a2},
		{name: "single quoted", input: "'hello'", want: "hello"},
		{name: "double quoted", input: `"hello"`, want: "hello"},
		{name: "escaped quote", input: `'it\'s'`, want: "it's"},
		{name: "empty tuple", input: "()", want: []any{}},
		{name: "pair", input: "(100, 200)", want: []any{100, 200}},
		{name: "list", input: "[1, 2, 3]", want: []any{1, 2, 3}},
		{
			name:  "nested",
			input: "('0x90cb4', [('0x101a2', 'Button1')])",
			want:  []any{"0x90cb4", []any{[]any{"0x101a2", "Button1"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLiteral(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// TestParseLiteral_Errors tests malformed literals.
func TestParseLiteral_Errors(t *testing.T) {
	inputs := []string{"", "(1, 2", "'unterminated", "(1,, 2)", "1 2", "{}"}

	for _, input := range inputs {
		_, err := parseLiteral(input)
		require.Error(t, err, "input %q", input)
	}
}
