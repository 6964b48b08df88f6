package model

import "fmt"

// ValidationError is raised by the context builder before any handler
// runs: a required field is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// PreconditionError is raised when a heavy action is dispatched without a
// live remote connection. The handler is never invoked.
type PreconditionError struct {
	Action string
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("action %s requires a live remote connection", e.Action)
}

// HandlerError wraps any fault raised inside a handler, including
// recovered panics. Always recoverable at the engine boundary.
type HandlerError struct {
	Action string
	Cause  error
}

func (e HandlerError) Error() string {
	return fmt.Sprintf("action %s failed: %v", e.Action, e.Cause)
}

func (e HandlerError) Unwrap() error {
	return e.Cause
}

// EngineError marks a failure of the pool machinery itself, never of the
// handler.
type EngineError struct {
	Message string
}

func (e EngineError) Error() string {
	return e.Message
}
