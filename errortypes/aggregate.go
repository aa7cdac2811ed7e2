package errortypes

import (
	"bytes"
	"strconv"
)

// AggregateErrors bundles the findings of a validation pass into a single
// error value. It unwraps to its parts, so errors.Is and errors.As see
// through it.
type AggregateErrors struct {
	Message string
	Errors  []error
}

// NewAggregateErrors builds an AggregateErrors struct.
func NewAggregateErrors(msg string, errs []error) AggregateErrors {
	return AggregateErrors{
		Message: msg,
		Errors:  errs,
	}
}

// Error implements the standard error interface.
func (e AggregateErrors) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}

	b := bytes.Buffer{}
	b.WriteString(e.Message)

	if len(e.Errors) == 1 {
		b.WriteString(" (1 error):\n")
	} else {
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(len(e.Errors)))
		b.WriteString(" errors):\n")
	}

	for i, err := range e.Errors {
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(": ")
		b.WriteString(err.Error())
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap exposes the bundled errors to the errors package helpers.
func (e AggregateErrors) Unwrap() []error {
	return e.Errors
}
