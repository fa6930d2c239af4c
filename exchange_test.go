package orgbook

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestExchangeBoard_ApplyQuote(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		spot     float64
		spread   Percent
		places   int32
		wantBuy  float64
		wantSell float64
	}{
		{name: "bitcoin whole dollars", id: "btc", spot: 100000, spread: 2, places: 0, wantBuy: 102000, wantSell: 98000},
		{name: "bitcoin rounds", id: "btc", spot: 99999, spread: 2, places: 0, wantBuy: 101999, wantSell: 97999},
		{name: "euro four places", id: "eur", spot: 1.08, spread: 1.5, places: 4, wantBuy: 1.0962, wantSell: 1.0638},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			board := DefaultExchangeBoard(testNow.Add(-48 * time.Hour))
			if err := board.ApplyQuote(tc.id, USD(tc.spot), tc.spread, tc.places, testNow); err != nil {
				t.Fatalf("ApplyQuote() failed: %v", err)
			}
			r, _ := board.Get(tc.id)
			if !r.BuyRate.Equal(USD(tc.wantBuy)) {
				t.Errorf("buy = %s, want %s", r.BuyRate, USD(tc.wantBuy))
			}
			if !r.SellRate.Equal(USD(tc.wantSell)) {
				t.Errorf("sell = %s, want %s", r.SellRate, USD(tc.wantSell))
			}
			if !r.LastUpdated.Equal(testNow) {
				t.Errorf("lastUpdated = %v, want %v", r.LastUpdated, testNow)
			}
		})
	}
}

func TestExchangeBoard_ApplyQuoteRejections(t *testing.T) {
	board := DefaultExchangeBoard(testNow)

	// Manual instruments never take quotes.
	if err := board.ApplyQuote("vc", USD(100), 2, 0, testNow); !errors.Is(err, ErrRateNotEditable) {
		t.Errorf("ApplyQuote(vc) error = %v, want ErrRateNotEditable", err)
	}
	if err := board.ApplyQuote("doge", USD(100), 2, 0, testNow); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("ApplyQuote(doge) error = %v, want ErrUnknownCurrency", err)
	}
	if err := board.ApplyQuote("btc", USD(0), 2, 0, testNow); err == nil {
		t.Error("ApplyQuote with zero spot succeeded, want error")
	}
}

func TestExchangeBoard_SetManual(t *testing.T) {
	board := DefaultExchangeBoard(testNow)

	if err := board.SetManual("vc", USD(98), USD(92), testNow); err != nil {
		t.Fatalf("SetManual() failed: %v", err)
	}
	vc, _ := board.Get("vc")
	if !vc.BuyRate.Equal(USD(98)) || !vc.SellRate.Equal(USD(92)) {
		t.Errorf("pair = %s/%s, want %s/%s", vc.BuyRate, vc.SellRate, USD(98), USD(92))
	}

	// The sell rate must stay strictly below the buy rate.
	var verr *ValidationError
	if err := board.SetManual("vc", USD(90), USD(95), testNow); !errors.As(err, &verr) {
		t.Errorf("SetManual(sell > buy) error = %v, want *ValidationError", err)
	}
	if err := board.SetManual("vc", USD(95), USD(95), testNow); !errors.As(err, &verr) {
		t.Errorf("SetManual(sell == buy) error = %v, want *ValidationError", err)
	}

	if err := board.SetManual("btc", USD(98), USD(92), testNow); !errors.Is(err, ErrRateNotEditable) {
		t.Errorf("SetManual(btc) error = %v, want ErrRateNotEditable", err)
	}
	if err := board.SetManual("doge", USD(98), USD(92), testNow); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("SetManual(doge) error = %v, want ErrUnknownCurrency", err)
	}
}

func TestExchangeRate_DaysUntilRefresh(t *testing.T) {
	testCases := []struct {
		name string
		age  time.Duration
		want int
	}{
		{name: "fresh", age: 0, want: 3},
		{name: "one day old", age: 24 * time.Hour, want: 2},
		{name: "almost stale", age: 71 * time.Hour, want: 1},
		{name: "stale", age: 72 * time.Hour, want: 0},
		{name: "long stale", age: 300 * time.Hour, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := ExchangeRate{LastUpdated: testNow.Add(-tc.age)}
			if got := r.DaysUntilRefresh(testNow); got != tc.want {
				t.Errorf("DaysUntilRefresh() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDefaultExchangeBoard(t *testing.T) {
	board := DefaultExchangeBoard(testNow)
	btc, _ := board.Get("btc")
	if btc.IsEditable || !btc.BuyRate.Equal(USD(95000)) || !btc.SellRate.Equal(USD(93000)) {
		t.Errorf("btc defaults wrong: %+v", btc)
	}
	eur, _ := board.Get("eur")
	if eur.IsEditable || !eur.BuyRate.Equal(USD(1.08)) || !eur.SellRate.Equal(USD(1.06)) {
		t.Errorf("eur defaults wrong: %+v", eur)
	}
	vc, _ := board.Get("vc")
	if !vc.IsEditable || !vc.BuyRate.Equal(USD(95)) || !vc.SellRate.Equal(USD(90)) {
		t.Errorf("vc defaults wrong: %+v", vc)
	}
}
