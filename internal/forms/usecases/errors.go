package usecases

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindInfrastructure
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

const (
	MessageFormNameNotUnique = "Form name must be unique"
	MessageFormNotFound      = "Form not found"
)

// Error is a failure classified for the transport layer. Message is safe to
// show to clients.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(message string, err error) error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func notFoundError(err error) error {
	return &Error{Kind: KindNotFound, Message: MessageFormNotFound, Err: err}
}

func infrastructureError(err error) error {
	return &Error{Kind: KindInfrastructure, Message: err.Error(), Err: err}
}

// KindOf returns the kind carried by err, or zero when it carries none.
func KindOf(err error) ErrorKind {
	var kindErr *Error
	if errors.As(err, &kindErr) {
		return kindErr.Kind
	}
	return 0
}
