// Package rates talks to the two public price sources the tracker consumes:
// a Bitcoin spot price and a USD/EUR rate. Both are read-only, unauthorized
// lookups returning a single number. Failures are wrapped in FetchError and
// never treated as fatal; callers keep the last known rate.
package rates

import (
	"context"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/mzheln/orgbook"
)

//go:generate mockgen -source=sources.go -destination=mocks/source.go -package=mocks

// Source is one external price provider.
type Source interface {
	// Name identifies the provider in logs and errors.
	Name() string
	// Rate returns the current price of one unit in US dollars.
	Rate(ctx context.Context) (decimal.Decimal, error)
}

// pluck extracts a single numeric value from a decoded JSON payload.
// jsonpath is never clear about whether it returns a list of one answer or
// a single answer, so both are accepted.
func pluck(payload any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, payload)
	if err != nil {
		return 0, fmt.Errorf("path %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
	return val, nil
}

// CoinGecko serves the Bitcoin spot price in USD.
type CoinGecko struct {
	Client *http.Client
	addr   string // test override
}

func (CoinGecko) Name() string { return "coingecko" }

func (s CoinGecko) Rate(ctx context.Context) (decimal.Decimal, error) {
	addr := s.addr
	if addr == "" {
		addr = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"
	}
	var payload any
	if err := jwget(ctx, s.Client, addr, &payload); err != nil {
		return decimal.Decimal{}, &orgbook.FetchError{Source: s.Name(), Err: err}
	}
	val, err := pluck(payload, "$.bitcoin.usd")
	if err != nil {
		return decimal.Decimal{}, &orgbook.FetchError{Source: s.Name(), Err: err}
	}
	return decimal.NewFromFloat(val), nil
}

// ExchangeRateAPI serves the dollar price of one euro, derived from the
// provider's USD-based table (USD per EUR = 1 / rates.EUR).
type ExchangeRateAPI struct {
	Client *http.Client
	addr   string // test override
}

func (ExchangeRateAPI) Name() string { return "exchangerate-api" }

func (s ExchangeRateAPI) Rate(ctx context.Context) (decimal.Decimal, error) {
	addr := s.addr
	if addr == "" {
		addr = "https://api.exchangerate-api.com/v4/latest/USD"
	}
	var payload any
	if err := jwget(ctx, s.Client, addr, &payload); err != nil {
		return decimal.Decimal{}, &orgbook.FetchError{Source: s.Name(), Err: err}
	}
	val, err := pluck(payload, "$.rates.EUR")
	if err != nil {
		return decimal.Decimal{}, &orgbook.FetchError{Source: s.Name(), Err: err}
	}
	if val == 0 {
		return decimal.Decimal{}, &orgbook.FetchError{Source: s.Name(), Err: fmt.Errorf("zero EUR rate")}
	}
	return decimal.NewFromInt(1).Div(decimal.NewFromFloat(val)), nil
}
