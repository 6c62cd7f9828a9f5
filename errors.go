package capi

import (
	"errors"
	"fmt"
)

// CallError is the uniform failure value for a contract entry-point
// call. It covers both payload decoding failures and errors reported by
// the handler logic itself; the two are deliberately indistinguishable
// to the caller — the rendered cause chain is the only contract of
// failure.
type CallError struct {
	Entry string // entry-point name, e.g. "execute"
	Err   error  // underlying cause
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Entry, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// NewCallError wraps an entry-point failure.
func NewCallError(entry string, err error) *CallError {
	return &CallError{Entry: entry, Err: err}
}

// NotImplementedError is reported when an optional entry point (Sudo,
// Reply, or Migrate) is invoked on a contract that does not supply one.
type NotImplementedError struct {
	Entry string // "Sudo", "Reply", or "Migrate"
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s not implemented on the contract", e.Entry)
}

// AsNotImplemented checks whether an error is a NotImplementedError
// anywhere in its chain and returns it.
func AsNotImplemented(err error) (*NotImplementedError, bool) {
	var n *NotImplementedError
	if errors.As(err, &n) {
		return n, true
	}
	return nil, false
}
