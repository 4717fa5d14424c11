package domain

import (
	"errors"
	"strings"
)

// Field identifies which argument token a validation error refers to.
type Field string

const (
	FieldMonth Field = "month"
	FieldHours Field = "hours"
	FieldRate  Field = "rate"
)

// FieldError is a validation failure for one input field. The message text
// is part of the CLI's external contract and must stay byte-identical.
type FieldError struct {
	Field   Field
	Message string
}

func (e FieldError) Error() string { return e.Message }

var (
	ErrInvalidMonth = FieldError{FieldMonth, "The first argument should be a valid month in the yyyy-MM format"}
	ErrInvalidHours = FieldError{FieldHours, "The hours argument should be a positive integer"}
	ErrInvalidRate  = FieldError{FieldRate, "The rate argument should be a positive decimal"}
)

// ErrWrongArity is reported by the shell before any validation runs.
var ErrWrongArity = errors.New("Please provide three arguments")

// FieldErrors is an ordered, non-empty collection of field errors. Order is
// always month before hours before rate, never failure-arrival order.
type FieldErrors []FieldError

func (es FieldErrors) Error() string {
	return strings.Join(es.Messages(), "\n")
}

// Messages returns one display line per failing field, in order.
func (es FieldErrors) Messages() []string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Message
	}
	return msgs
}
