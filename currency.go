package orgbook

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Currency is one foreign-currency holding: an amount of units plus the base
// value of one unit. API-sourced rates are refreshed from outside and are
// not user-editable; manual rates are.
type Currency struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Symbol    string          `json:"symbol"`
	Icon      string          `json:"icon"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      Money           `json:"rate"` // base value of one unit
	IsAPIRate bool            `json:"isApiRate"`
}

// Value is the holding's worth in the base currency.
func (c Currency) Value() Money {
	return c.Rate.MulDec(c.Amount)
}

// Currencies is an account's set of holdings.
type Currencies []Currency

// DefaultCurrencies returns the holdings a fresh account starts with.
func DefaultCurrencies() Currencies {
	return Currencies{
		{ID: "btc", Name: "Bitcoin", Symbol: "BTC", Icon: "₿", Rate: USD(0), IsAPIRate: true},
		{ID: "euro", Name: "Euro", Symbol: "EUR", Icon: "€", Rate: USD(4.818)},
		{ID: "vccoin", Name: "VC-coin", Symbol: "VC", Icon: "⚡", Rate: USD(95)},
	}
}

// Get returns a pointer into the set for the given id.
func (cs Currencies) Get(id string) (*Currency, bool) {
	for i := range cs {
		if cs[i].ID == id {
			return &cs[i], true
		}
	}
	return nil, false
}

// All yields the holdings in declaration order.
func (cs Currencies) All() iter.Seq[Currency] {
	return func(yield func(Currency) bool) {
		for _, c := range cs {
			if !yield(c) {
				return
			}
		}
	}
}

// TotalValue sums every holding's base value.
func (cs Currencies) TotalValue() Money {
	total := USD(0)
	for _, c := range cs {
		total = total.Add(c.Value())
	}
	return total
}

// Apply mutates a holding's amount with the same add/subtract/edit semantics
// as a ledger field, and records exactly one journal entry with the currency
// id as the field name. Holdings count toward the legitimate side, so the
// entry kind is white.
func (cs Currencies) Apply(j *Journal, id string, op Operation, amount decimal.Decimal, reason string) (Entry, error) {
	if err := validateReason(reason); err != nil {
		return Entry{}, err
	}
	c, ok := cs.Get(id)
	if !ok {
		return Entry{}, ErrUnknownCurrency
	}
	before := M(c.Amount, c.Symbol)
	after, err := nextBalance(before, op, amount)
	if err != nil {
		return Entry{}, err
	}
	c.Amount = after.value

	logged := M(amount, c.Symbol)
	if op == OpEdit {
		logged = after
	}
	e := newEntry(KindWhite, op, id, logged, reason, before, after)
	j.Record(e)
	return e, nil
}

// SetRate overrides a manually configured rate. Rates fetched from an API
// are rejected unchanged, as are non-positive rates.
func (cs Currencies) SetRate(id string, rate Money) error {
	c, ok := cs.Get(id)
	if !ok {
		return ErrUnknownCurrency
	}
	if c.IsAPIRate {
		return ErrRateNotEditable
	}
	if !rate.IsPositive() {
		return invalid("rate", "must be positive, got %s", rate)
	}
	c.Rate = rate
	return nil
}

// SetAPIRate installs a freshly fetched rate on an API-sourced currency.
// Manual currencies are left alone.
func (cs Currencies) SetAPIRate(id string, rate Money) error {
	c, ok := cs.Get(id)
	if !ok {
		return ErrUnknownCurrency
	}
	if !c.IsAPIRate {
		return ErrRateNotEditable
	}
	if !rate.IsPositive() {
		return invalid("rate", "must be positive, got %s", rate)
	}
	c.Rate = rate
	return nil
}

// MergeSaved folds a persisted document into the default set: amounts always
// come from the document, manual rates too, while API rates keep whatever
// the current session has fetched. Unknown saved ids are dropped.
func (cs Currencies) MergeSaved(saved Currencies) {
	for _, s := range saved {
		c, ok := cs.Get(s.ID)
		if !ok {
			continue
		}
		c.Amount = s.Amount
		if !c.IsAPIRate {
			c.Rate = s.Rate
		}
	}
}
