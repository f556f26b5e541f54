package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("already exists")
	ErrNotFound   = errors.New("not found")
	ErrInvalidID  = errors.New("invalid identifier")
	ErrNoPlans    = errors.New("no EMI plans provided")
)

type FieldError struct {
	Field   string
	Message string
}

// A ValidationError lists every violated field rule.
//
// It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type validation struct {
	fields []FieldError
}

func (v *validation) require(ok bool, field, msg string) {
	if !ok {
		v.fields = append(v.fields, FieldError{field, msg})
	}
}

func (v *validation) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
