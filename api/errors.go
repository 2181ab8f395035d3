// File: api/errors.go
//
// Common error values and error handling utilities for the ringcore library.
// License: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// Status errors shared across the library. Every operation reports failure
// through one of these values; none of the core paths log or panic.
var (
	// ErrInvalidArgument is returned by Init when the attribute set is
	// unusable: nil attributes, nil or undersized storage, non-positive
	// element size, or an element count that is not a power of two.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrRegistryExhausted is returned by Init when every registry slot
	// has already been handed out. Slots are never reclaimed.
	ErrRegistryExhausted = fmt.Errorf("registry exhausted")

	// ErrInvalidHandle is returned by Put/Get for a handle outside the
	// allocated range.
	ErrInvalidHandle = fmt.Errorf("invalid handle")

	// ErrBufferFull is the routine flow-control signal from Put.
	// Callers in a handler context should treat it as backpressure,
	// not as a fault.
	ErrBufferFull = fmt.Errorf("buffer full")

	// ErrBufferEmpty is the routine flow-control signal from Get.
	ErrBufferEmpty = fmt.Errorf("buffer empty")

	// ErrPoolExhausted is returned by fixed pool Alloc when no free
	// block remains.
	ErrPoolExhausted = fmt.Errorf("pool exhausted")

	// ErrForeignBlock is returned by fixed pool Free for a pointer that
	// does not belong to the pool.
	ErrForeignBlock = fmt.Errorf("block does not belong to pool")

	// ErrPortClosed is returned by serial port operations after Close.
	ErrPortClosed = fmt.Errorf("port is closed")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeRegistryExhausted
	ErrCodeInvalidHandle
	ErrCodeBufferFull
	ErrCodeBufferEmpty
	ErrCodePoolExhausted
	ErrCodeInternal
)

// Error represents a structured error with code and context. Err, when
// set, is the underlying sentinel, so errors.Is keeps matching through
// a wrapped failure.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the underlying sentinel for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError attaches a code to a sentinel failure. The sentinel stays
// reachable through Unwrap.
func WrapError(code ErrorCode, err error) *Error {
	return &Error{
		Code:    code,
		Message: err.Error(),
		Context: make(map[string]any),
		Err:     err,
	}
}

// CodeOf maps an error to its ErrorCode. Coded errors report their own
// code; bare sentinels map to theirs; anything else is ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrRegistryExhausted):
		return ErrCodeRegistryExhausted
	case errors.Is(err, ErrInvalidHandle):
		return ErrCodeInvalidHandle
	case errors.Is(err, ErrBufferFull):
		return ErrCodeBufferFull
	case errors.Is(err, ErrBufferEmpty):
		return ErrCodeBufferEmpty
	case errors.Is(err, ErrPoolExhausted):
		return ErrCodePoolExhausted
	}
	return ErrCodeInternal
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
