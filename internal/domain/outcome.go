package domain

// Outcome is a sum over success-with-value and failure-with-field-errors.
// Values are built only through Ok and Fail, so a success can never carry
// errors and a failure always carries at least one, in field order.
type Outcome[T any] struct {
	value T
	errs  FieldErrors
}

// Ok builds a successful outcome.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Fail builds a failed outcome from one or more field errors, preserving
// the order given.
func Fail[T any](errs ...FieldError) Outcome[T] {
	return Outcome[T]{errs: append(FieldErrors(nil), errs...)}
}

// Failed is the variant discriminant.
func (o Outcome[T]) Failed() bool { return len(o.errs) > 0 }

// Value returns the success value. It is the zero value when Failed.
func (o Outcome[T]) Value() T { return o.value }

// Errs returns the ordered field errors, empty on success.
func (o Outcome[T]) Errs() FieldErrors { return o.errs }

// Err adapts the outcome to the error interface: nil on success, the
// ordered FieldErrors otherwise.
func (o Outcome[T]) Err() error {
	if len(o.errs) == 0 {
		return nil
	}
	return o.errs
}
