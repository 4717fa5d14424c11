package earnings

import (
	"github.com/shopspring/decimal"

	"wagecalc/internal/domain"
)

// Service derives earnings from validated fields.
type Service struct{}

// New returns an earnings calculator.
func New() *Service { return &Service{} }

// Calculate multiplies hours by rate with exact decimal arithmetic. It
// cannot fail: ValidatedFields guarantees both operands are non-negative.
func (s *Service) Calculate(f domain.ValidatedFields) domain.Earnings {
	h := decimal.NewFromInt(int64(f.Hours))
	return domain.Earnings(h.Mul(f.Rate.Decimal()))
}

// Compile-time assertion that Service implements domain.Calculator.
var _ domain.Calculator = (*Service)(nil)
