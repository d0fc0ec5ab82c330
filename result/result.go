package result

import "fmt"

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether the state ends an operation.
func (s State) Terminal() bool {
	return s == StateSuccess || s == StateError
}

// Result is the lifecycle of one asynchronous operation. Exactly one of
// idle, loading, success (with data) or error (with message) holds.
// The zero value is Idle.
type Result[T any] struct {
	state   State
	data    T
	message string
}

func Idle[T any]() Result[T] {
	return Result[T]{state: StateIdle}
}

func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{state: StateSuccess, data: data}
}

func Error[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

func (r Result[T]) State() State {
	return r.state
}

// Data returns the payload and true only for a success.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.state == StateSuccess
}

// Message returns the error text; empty unless the state is error.
func (r Result[T]) Message() string {
	return r.message
}

func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) IsError() bool   { return r.state == StateError }

func (r Result[T]) String() string {
	if r.state == StateError {
		return fmt.Sprintf("error(%s)", r.message)
	}
	return r.state.String()
}
