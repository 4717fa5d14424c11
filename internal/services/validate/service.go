package validate

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"wagecalc/internal/domain"
)

// monthLayout requires a four-digit year and a zero-padded month, 01-12.
const monthLayout = "2006-01"

// Service validates raw argument tokens into typed field values. It is
// stateless; every method is pure, total and safe for concurrent use, and
// no method's result depends on any other's.
type Service struct{}

// New returns a field validation service.
func New() *Service { return &Service{} }

// Month accepts a yyyy-MM token with a real month number and yields the
// token unchanged.
func (s *Service) Month(raw string) domain.Outcome[domain.Month] {
	if _, err := time.Parse(monthLayout, raw); err != nil {
		return domain.Fail[domain.Month](domain.ErrInvalidMonth)
	}
	return domain.Ok(domain.Month(raw))
}

// Hours accepts a base-10 integer within int32 range, zero or above. No
// fractional or exponent forms.
func (s *Service) Hours(raw string) domain.Outcome[domain.Hours] {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return domain.Fail[domain.Hours](domain.ErrInvalidHours)
	}
	return domain.Ok(domain.Hours(n))
}

// Rate accepts a decimal number, zero or above, with exact precision.
func (s *Service) Rate(raw string) domain.Outcome[domain.Rate] {
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return domain.Fail[domain.Rate](domain.ErrInvalidRate)
	}
	return domain.Ok(domain.Rate(d))
}
