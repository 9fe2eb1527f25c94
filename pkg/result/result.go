// Package result provides the generic envelopes shared by RPC-style
// interfaces: a success/error result wrapper and a paged list container.
package result

import "github.com/leapstack-labs/proftree/pkg/errcode"

// Result is the envelope for one service call: either a successful
// payload or an error stack describing why the call failed.
type Result[T any] struct {
	Success    bool           `json:"success"`
	ErrorStack *errcode.Stack `json:"errorStack,omitempty"`
	Data       T              `json:"data,omitempty"`
}

// OK wraps data in a successful result.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail wraps an error stack in a failed result.
func Fail[T any](stack *errcode.Stack) Result[T] {
	return Result[T]{ErrorStack: stack}
}
