package code

import (
	"fmt"
	"strings"
)

// StateError reports an operation that is not legal at the cursor's
// position in a construct, or an operation on a cursor that is no longer
// the innermost open one.
type StateError struct {
	Op     string
	State  string
	Reason string
}

func (e *StateError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("code: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("code: %s in %s: %s", e.Op, e.State, e.Reason)
}

// ArgumentError reports a required argument that was empty, or a
// single-line argument that contained a line break.
type ArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must not be empty"
	}
	return fmt.Sprintf("code: %s: %s %s", e.Op, e.Arg, reason)
}

func requireArg(op, name, value string) error {
	if value == "" {
		return &ArgumentError{Op: op, Arg: name}
	}
	return requireInline(op, name, value)
}

// requireInline rejects line breaks in text that renders inside one line.
func requireInline(op, name, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return &ArgumentError{Op: op, Arg: name, Reason: "must not contain a line break"}
	}
	return nil
}
