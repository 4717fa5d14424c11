package compose

import (
	"fmt"
	"strings"

	"wagecalc/internal/domain"
	"wagecalc/internal/services/validate"
)

// Policy selects how field failures are aggregated.
type Policy string

const (
	// PolicyFailFast reports only the first failing field; later validators
	// never run once a field has failed.
	PolicyFailFast Policy = "failfast"
	// PolicyAccumulate runs every validator and reports each failing field,
	// always in month, hours, rate order.
	PolicyAccumulate Policy = "accumulate"
)

// ParsePolicy maps a configuration token to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyFailFast:
		return PolicyFailFast, nil
	case PolicyAccumulate:
		return PolicyAccumulate, nil
	default:
		return "", fmt.Errorf("unknown aggregation policy %q: must be %q or %q", s, PolicyFailFast, PolicyAccumulate)
	}
}

// Service combines the three field validations into a single outcome under
// the configured policy. Both policies produce identical ValidatedFields
// for identical valid input; they differ only in failure shape.
type Service struct {
	fields *validate.Service
	policy Policy
}

// New returns a composer over the given field validators.
func New(fields *validate.Service, policy Policy) *Service {
	return &Service{fields: fields, policy: policy}
}

// Policy reports the configured aggregation policy.
func (s *Service) Policy() Policy { return s.policy }

// Compose validates all three fields of in and merges the results.
func (s *Service) Compose(in domain.RawInput) domain.Outcome[domain.ValidatedFields] {
	if s.policy == PolicyAccumulate {
		return s.accumulate(in)
	}
	return s.failFast(in)
}

// failFast checks month, then hours, then rate, and stops at the first
// failure. The single error is returned alone.
func (s *Service) failFast(in domain.RawInput) domain.Outcome[domain.ValidatedFields] {
	month := s.fields.Month(in.Month)
	if month.Failed() {
		return domain.Fail[domain.ValidatedFields](month.Errs()...)
	}
	hours := s.fields.Hours(in.Hours)
	if hours.Failed() {
		return domain.Fail[domain.ValidatedFields](hours.Errs()...)
	}
	rate := s.fields.Rate(in.Rate)
	if rate.Failed() {
		return domain.Fail[domain.ValidatedFields](rate.Errs()...)
	}
	return domain.Ok(domain.ValidatedFields{
		Month: month.Value(),
		Hours: hours.Value(),
		Rate:  rate.Value(),
	})
}

// accumulate runs all three validators unconditionally and collects every
// failure in the fixed field order.
func (s *Service) accumulate(in domain.RawInput) domain.Outcome[domain.ValidatedFields] {
	month := s.fields.Month(in.Month)
	hours := s.fields.Hours(in.Hours)
	rate := s.fields.Rate(in.Rate)

	var errs domain.FieldErrors
	errs = append(errs, month.Errs()...)
	errs = append(errs, hours.Errs()...)
	errs = append(errs, rate.Errs()...)
	if len(errs) > 0 {
		return domain.Fail[domain.ValidatedFields](errs...)
	}
	return domain.Ok(domain.ValidatedFields{
		Month: month.Value(),
		Hours: hours.Value(),
		Rate:  rate.Value(),
	})
}

// Compile-time assertion that Service implements domain.Composer.
var _ domain.Composer = (*Service)(nil)
