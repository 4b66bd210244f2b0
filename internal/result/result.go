// Package result defines the envelope returned by every public engine
// operation: either {ok:true, data} or {ok:false, error}.
package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Class is a coarse category for a failure.
type Class string

const (
	ClassNotRepository Class = "not_a_repository"
	ClassPrecondition  Class = "precondition_failed"
	ClassTimeout       Class = "timeout"
	ClassCanceled      Class = "canceled"
	ClassExternalTool  Class = "external_tool"
)

// Classifier lets an error choose its own Class.
type Classifier interface {
	ResultClass() Class
}

// None is the payload of operations that succeed without data.
type None struct{}

// Result is a success/failure envelope.
type Result[T any] struct {
	OK    bool   `json:"ok"`
	Data  T      `json:"data"`
	Error string `json:"error,omitempty"`
	Class Class  `json:"errorClass,omitempty"`
}

// Success wraps data in a successful Result.
func Success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Failure wraps err in a failed Result. The error text is kept verbatim.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{Error: err.Error(), Class: Classify(err)}
}

// From converts a (value, error) pair into a Result.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(data)
}

// MarshalJSON encodes {ok:true, data} or {ok:false, error}. Successful
// results always carry data, even when it is null.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.OK {
		return json.Marshal(struct {
			OK   bool `json:"ok"`
			Data T    `json:"data"`
		}{true, r.Data})
	}
	return json.Marshal(struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
		Class Class  `json:"errorClass,omitempty"`
	}{false, r.Error, r.Class})
}

// Err returns the failure as an error, or nil for a success.
func (r Result[T]) Err() error {
	if r.OK {
		return nil
	}
	return &Error{Message: r.Error, Class: r.Class}
}

// Classify maps an error to a Class.
func Classify(err error) Class {
	var c Classifier
	switch {
	case errors.As(err, &c):
		return c.ResultClass()
	case errors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case errors.Is(err, context.Canceled):
		return ClassCanceled
	default:
		return ClassExternalTool
	}
}

// Error is a failure reconstructed from a Result.
type Error struct {
	Message string
	Class   Class
}

func (e *Error) Error() string {
	return e.Message
}

// ResultClass returns the class recorded on the failed Result.
func (e *Error) ResultClass() Class {
	return e.Class
}

// Guard runs fn and converts a panic into a failed Result.
func Guard[T any](fn func() Result[T]) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](fmt.Errorf("internal error: %v", r))
		}
	}()
	return fn()
}
