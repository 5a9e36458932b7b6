// Package daemon supervises the AutoHotkey interpreter process and exchanges
// framed messages with it over its standard I/O pipes.
//
// Supervisor owns the OS process: spawn, liveness, stderr capture, and
// deterministic teardown. Channel layers the wire framing on top: a reader
// goroutine re-assembles response frames from stdout and hands them to Recv,
// while Send serializes request lines onto stdin.
package daemon
