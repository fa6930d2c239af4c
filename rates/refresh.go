package rates

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mzheln/orgbook"
)

// Spread and rounding applied when a fresh spot price is turned into a
// buy/sell pair on the exchange board.
const (
	btcSpread orgbook.Percent = 2
	eurSpread orgbook.Percent = 1.5
)

// Refresher pulls fresh rates from the configured sources into an account's
// currency registry and exchange board.
type Refresher struct {
	Bitcoin Source
	Euro    Source
}

// NewRefresher wires the default public sources.
func NewRefresher() *Refresher {
	return &Refresher{
		Bitcoin: CoinGecko{Client: DefaultClient},
		Euro:    ExchangeRateAPI{Client: DefaultClient},
	}
}

// Refresh queries all sources and applies whatever succeeded. A failing
// source is logged and folded into the returned error; its previous rate
// stays in place so the account keeps valuing holdings with stale data
// rather than none.
func (r *Refresher) Refresh(ctx context.Context, cs orgbook.Currencies, board orgbook.ExchangeBoard, now time.Time) error {
	var errs []error

	if r.Bitcoin != nil {
		spot, err := r.Bitcoin.Rate(ctx)
		if err != nil {
			log.Printf("skipping %s: %v", r.Bitcoin.Name(), err)
			errs = append(errs, err)
		} else {
			if err := cs.SetAPIRate("btc", orgbook.USD(spot)); err != nil {
				errs = append(errs, err)
			}
			if err := board.ApplyQuote("btc", orgbook.USD(spot), btcSpread, 0, now); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if r.Euro != nil {
		spot, err := r.Euro.Rate(ctx)
		if err != nil {
			log.Printf("skipping %s: %v", r.Euro.Name(), err)
			errs = append(errs, err)
		} else {
			if err := board.ApplyQuote("eur", orgbook.USD(spot), eurSpread, 4, now); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}
