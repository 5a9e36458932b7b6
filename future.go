package ahk

import "context"

// FutureResult holds the eventual outcome of a non-blocking call. Obtain one
// from the Async surface of an Engine, then collect it with Result.
//
// A FutureResult is single-use and always resolves: the underlying command
// keeps its own timeout, so Result without a context deadline still returns.
type FutureResult[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// newFuture runs fn in a goroutine and resolves the future with its outcome.
func newFuture[T any](fn func() (T, error)) *FutureResult[T] {
	f := &FutureResult[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		f.val, f.err = fn()
	}()

	return f
}

// Done returns a channel closed when the result is available. Use it to
// select over multiple futures without blocking.
func (f *FutureResult[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the call completes or ctx is canceled. Cancellation
// abandons the wait, not the command: the command still runs to completion
// against its own timeout.
func (f *FutureResult[T]) Result(ctx context.Context) (T, error) {
	// An already-resolved future returns its value even if ctx is done.
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}

	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}
