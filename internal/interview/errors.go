package interview

import (
	"errors"
	"fmt"
)

// Kind classifies engine errors so transport layers can map them to a
// status code without string matching.
type Kind string

const (
	KindNotFound               Kind = "NOT_FOUND"
	KindUnauthorized           Kind = "UNAUTHORIZED"
	KindValidation             Kind = "VALIDATION_ERROR"
	KindGenerationFailed       Kind = "GENERATION_FAILED"
	KindSessionEnded           Kind = "SESSION_ENDED"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindSchema                 Kind = "SCHEMA_ERROR"
)

// Error is the only error type the engine returns to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two engine errors by kind alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf extracts the kind from an error chain, or "" if the chain
// contains no engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func errUnauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "session belongs to another user"}
}

func errValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func errGeneration(msg string, err error) *Error {
	return &Error{Kind: KindGenerationFailed, Message: msg, Err: err}
}

func errSessionEnded() *Error {
	return &Error{Kind: KindSessionEnded, Message: "interview has already ended"}
}

func errConcurrent(msg string, err error) *Error {
	return &Error{Kind: KindConcurrentModification, Message: msg, Err: err}
}
