package orgbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// refreshWindow is how long a fetched exchange pair is considered fresh.
const refreshWindow = 3 * 24 * time.Hour

// ExchangeRate is one row of the converter board: a buy/sell pair for an
// instrument, in the base currency. Quoted rows are refreshed from a price
// source with a spread applied; editable rows are maintained by hand.
type ExchangeRate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Icon        string    `json:"icon"`
	BuyRate     Money     `json:"buyRate"`
	SellRate    Money     `json:"sellRate"`
	IsEditable  bool      `json:"isEditable"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// DaysUntilRefresh returns how many whole days remain of the freshness
// window, never negative.
func (r ExchangeRate) DaysUntilRefresh(now time.Time) int {
	elapsed := int(now.Sub(r.LastUpdated).Hours() / 24)
	remaining := int(refreshWindow.Hours()/24) - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ExchangeBoard is an account's converter board.
type ExchangeBoard []ExchangeRate

// DefaultExchangeBoard returns the board a fresh account starts with.
func DefaultExchangeBoard(now time.Time) ExchangeBoard {
	return ExchangeBoard{
		{ID: "btc", Name: "Bitcoin", Symbol: "BTC", Icon: "₿", BuyRate: USD(95000), SellRate: USD(93000), LastUpdated: now},
		{ID: "eur", Name: "Euro", Symbol: "EUR", Icon: "€", BuyRate: USD(1.08), SellRate: USD(1.06), LastUpdated: now},
		{ID: "vc", Name: "VC-coin", Symbol: "VC", Icon: "⚡", BuyRate: USD(95), SellRate: USD(90), IsEditable: true, LastUpdated: now},
	}
}

// Get returns a pointer into the board for the given id.
func (b ExchangeBoard) Get(id string) (*ExchangeRate, bool) {
	for i := range b {
		if b[i].ID == id {
			return &b[i], true
		}
	}
	return nil, false
}

func validatePair(buy, sell Money) error {
	if !buy.IsPositive() {
		return invalid("buy rate", "must be positive, got %s", buy)
	}
	if !sell.IsPositive() {
		return invalid("sell rate", "must be positive, got %s", sell)
	}
	if !sell.LessThan(buy) {
		return invalid("sell rate", "must be below the buy rate (%s >= %s)", sell, buy)
	}
	return nil
}

// SetManual overrides an editable pair. Quoted rows are rejected unchanged.
func (b ExchangeBoard) SetManual(id string, buy, sell Money, now time.Time) error {
	r, ok := b.Get(id)
	if !ok {
		return ErrUnknownCurrency
	}
	if !r.IsEditable {
		return ErrRateNotEditable
	}
	if err := validatePair(buy, sell); err != nil {
		return err
	}
	r.BuyRate, r.SellRate, r.LastUpdated = buy, sell, now
	return nil
}

// ApplyQuote derives a buy/sell pair from a fetched spot price: spread
// percent above for buying, below for selling, both rounded to the given
// number of decimal places. Editable rows never take quotes.
func (b ExchangeBoard) ApplyQuote(id string, spot Money, spread Percent, places int32, now time.Time) error {
	r, ok := b.Get(id)
	if !ok {
		return ErrUnknownCurrency
	}
	if r.IsEditable {
		return ErrRateNotEditable
	}
	if !spot.IsPositive() {
		return invalid("spot price", "must be positive, got %s", spot)
	}
	one := decimal.NewFromInt(1)
	up := one.Add(spread.Fraction())
	down := one.Sub(spread.Fraction())
	r.BuyRate = spot.MulDec(up).Round(places)
	r.SellRate = spot.MulDec(down).Round(places)
	r.LastUpdated = now
	return nil
}
