// Package errs defines the typed error taxonomy shared by the rrb engine and
// the pool serializer.
package errs

import (
	"errors"
	"fmt"
)

// Error codes. Pool/load codes match the kinds enumerated for the
// serialization format; the remaining codes cover precondition and
// transient-misuse failures that the engine itself can raise.
const (
	CodeIncompatibleBits     = "INCOMPATIBLE_BITS"
	CodeInvalidNodeID        = "INVALID_NODE_ID"
	CodeInvalidChildCount    = "INVALID_CHILD_COUNT"
	CodePoolHasCycles        = "POOL_HAS_CYCLES"
	CodeMixedDepth           = "MIXED_DEPTH_CHILDREN"
	CodeRelaxedNotAllowed    = "RELAXED_NODE_NOT_ALLOWED"
	CodeVectorCorrupted      = "VECTOR_CORRUPTED"
	CodeIndexOutOfRange      = "INDEX_OUT_OF_RANGE"
	CodeTransientInvalidated = "TRANSIENT_INVALIDATED"
	CodeTransform            = "ELEMENT_TRANSFORM_FAILED"
)

// Error is an application error carrying a stable Code alongside a
// human-readable Message and an optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Code, so that
// sentinel comparisons via errors.Is keep working across wraps.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates an *Error with no wrapped cause.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error that wraps an underlying cause.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Sentinel values, one per code, for errors.Is comparisons.
var (
	ErrIncompatibleBits     = New(CodeIncompatibleBits, "incompatible bits")
	ErrInvalidNodeID        = New(CodeInvalidNodeID, "invalid node id")
	ErrInvalidChildCount    = New(CodeInvalidChildCount, "invalid children count")
	ErrPoolHasCycles        = New(CodePoolHasCycles, "pool has cycles")
	ErrMixedDepth           = New(CodeMixedDepth, "same depth children")
	ErrRelaxedNotAllowed    = New(CodeRelaxedNotAllowed, "relaxed node not allowed")
	ErrVectorCorrupted      = New(CodeVectorCorrupted, "vector corrupted")
	ErrIndexOutOfRange      = New(CodeIndexOutOfRange, "index out of range")
	ErrTransientInvalidated = New(CodeTransientInvalidated, "transient used after persist")
)

// Code extracts the Code carried by err, or CodeUnknown-equivalent "" if err
// is not (or does not wrap) an *Error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
