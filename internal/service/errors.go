package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence failure")
)

const (
	MsgCustomerCreated = "Customer created successfully"
	MsgProductCreated  = "Product created successfully"
	MsgOrderCreated    = "Order created successfully"
	MsgEmailExists     = "Email already exists"
	MsgNoProducts      = "At least one product must be selected"
)

// domainError несёт готовое сообщение для payload и категорию для errors.Is.
type domainError struct {
	kind  error
	msg   string
	cause error
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

func newError(kind error, format string, args ...any) error {
	return &domainError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func persistence(err error) error {
	return &domainError{kind: ErrPersistence, msg: err.Error(), cause: err}
}

func errEmailExists() error { return newError(ErrConflict, MsgEmailExists) }
