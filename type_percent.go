package orgbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Percent float64

// DefaultLaunderingPercent is the laundering rate a fresh account starts with.
const DefaultLaunderingPercent Percent = 75

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Fraction returns p/100 as an exact decimal.
func (p Percent) Fraction() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

// ValidateLaunderingPercent enforces the configurable range of the
// laundering converter.
func ValidateLaunderingPercent(p Percent) error {
	if p < 1 || p > 100 {
		return invalid("percentage", "must be between 1 and 100, got %v", float64(p))
	}
	return nil
}
