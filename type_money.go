package orgbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// BaseCurrency is the unit every balance and rate is ultimately expressed in.
const BaseCurrency = "USD"

// Money represents a monetary value as an exact decimal plus a currency code.
// Arithmetic never goes through floats.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// USD builds a Money in the base currency.
func USD[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return M(value, BaseCurrency)
}

// currency resolves the full currency record; go-money falls back to a
// synthetic currency for codes it does not know (VC-coin).
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and thousand separators.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) MulDec(d decimal.Decimal) Money {
	return Money{value: m.value.Mul(d), cur: m.cur}
}

// Floor truncates to whole major units.
func (m Money) Floor() Money { return Money{value: m.value.Floor(), cur: m.cur} }

// Round rounds half away from zero to the given number of decimal places.
func (m Money) Round(places int32) Money {
	return Money{value: m.value.Round(places), cur: m.cur}
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Persisted documents carry money as bare numbers in the base unit, the
// layout the account pages always used. The currency code is implied by the
// field, so it is not serialized.

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.value.UnmarshalJSON(data); err != nil {
		return err
	}
	if m.cur == "" {
		m.cur = BaseCurrency
	}
	return nil
}

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
