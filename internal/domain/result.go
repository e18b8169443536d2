package domain

import "fmt"

// Unit is the payload type for results that carry no value.
type Unit struct{}

// Result is a two-state outcome carrier: a success holding a value of T, or a
// failure holding a human-readable business error. Expected business failures
// travel as failed Results; they are never returned as Go errors.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok creates a successful result holding value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail creates a failed result with an error message.
func Fail[T any](format string, args ...any) Result[T] {
	if len(args) == 0 {
		return Result[T]{err: format}
	}
	return Result[T]{err: fmt.Sprintf(format, args...)}
}

// Done is shorthand for a successful valueless result.
func Done() Result[Unit] {
	return Ok(Unit{})
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value. Calling it on a failed result is a
// programming error and panics.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("domain: Value() called on failed result: %s", r.err))
	}
	return r.value
}

// Err returns the failure message, or the empty string for a success.
func (r Result[T]) Err() string {
	return r.err
}

// FailFrom carries the failure of another result into a result of a different
// payload type.
func FailFrom[T, U any](r Result[U]) Result[T] {
	return Fail[T](r.err)
}
