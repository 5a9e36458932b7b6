package wire

import (
	"strings"

	"github.com/spyoungtech/ahk-rewrite/internal/errors"
)

// Separator is the reserved field separator of the request line format.
const Separator = ","

// escapedNewline is the daemon script's escape spelling for a literal newline
// inside an argument value.
const escapedNewline = "`n"

// Request is the wire form of one command invocation: the daemon-side
// function name and its positional arguments, already formatted as strings.
type Request struct {
	Function string
	Args     []string
}

// Encode renders the request as a single line:
//
//	Function,arg1,arg2\n
//
// Newlines inside argument values are escaped as `n. Values that contain the
// field separator, carriage returns, or NUL bytes cannot be represented
// unambiguously and are rejected with EncodingError before any process
// interaction.
func (r Request) Encode() ([]byte, error) {
	if r.Function == "" {
		return nil, &errors.EncodingError{Function: r.Function, Reason: "empty function name"}
	}

	if strings.ContainsAny(r.Function, Separator+"\n\r\x00") {
		return nil, &errors.EncodingError{
			Function: r.Function,
			Arg:      r.Function,
			Reason:   "function name contains reserved characters",
		}
	}

	var sb strings.Builder

	sb.WriteString(r.Function)

	for _, arg := range r.Args {
		if reason := checkArg(arg); reason != "" {
			return nil, &errors.EncodingError{Function: r.Function, Arg: arg, Reason: reason}
		}

		sb.WriteString(Separator)
		sb.WriteString(strings.ReplaceAll(arg, "\n", escapedNewline))
	}

	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// checkArg returns a non-empty reason if the value cannot ride in one field.
func checkArg(arg string) string {
	switch {
	case strings.Contains(arg, Separator):
		return "contains the reserved field separator " + Separator
	case strings.Contains(arg, "\r"):
		return "contains a carriage return"
	case strings.Contains(arg, "\x00"):
		return "contains a NUL byte"
	default:
		return ""
	}
}
