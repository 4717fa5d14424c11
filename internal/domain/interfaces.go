package domain

// Composer merges the three field validations into one outcome under an
// aggregation policy. Implementations must be idempotent and must never
// leak parser internals past the FieldError catalog.
type Composer interface {
	Compose(in RawInput) Outcome[ValidatedFields]
}

// Calculator derives earnings from fully validated fields. It is total:
// ValidatedFields guarantees both operands are non-negative.
type Calculator interface {
	Calculate(f ValidatedFields) Earnings
}
