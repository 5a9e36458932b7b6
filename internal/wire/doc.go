// Package wire implements the daemon script's message protocol.
//
// Requests are single lines of the form "Function,arg1,arg2\n" where newlines
// inside argument values are escaped as `n. Responses are framed as three
// sections: a three-byte type order mark line, a line carrying the count of
// newlines inside the payload, and the payload itself. Both formats are a
// pinned external contract with the daemon script and must be preserved
// byte for byte.
package wire
