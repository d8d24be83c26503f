package assistant

import "fmt"

// CompletionError wraps a failed or timed-out model call. It aborts the
// turn; retry policy belongs to the caller.
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion call failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// MalformedArgumentsError signals that the model's action arguments do not
// match the declared schema.
type MalformedArgumentsError struct {
	Action string
	Err    error
}

func (e *MalformedArgumentsError) Error() string {
	return fmt.Sprintf("malformed arguments for %s: %v", e.Action, e.Err)
}

func (e *MalformedArgumentsError) Unwrap() error { return e.Err }

// UnknownActionError signals an action name outside the fixed declared set.
// The set is fixed at compile time, so this is a programming-error signal.
type UnknownActionError struct {
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q requested", e.Action)
}
