package orgbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AccountID is the storage namespace of a single character, derived from its
// display name: lower-cased, with whitespace runs collapsed to underscores.
// Using a value type here keeps document addressing out of ad hoc string
// concatenation.
type AccountID string

// NewAccountID derives the account identifier from a display name.
func NewAccountID(displayName string) (AccountID, error) {
	fields := strings.Fields(strings.ToLower(displayName))
	if len(fields) == 0 {
		return "", invalid("account name", "must not be empty")
	}
	return AccountID(strings.Join(fields, "_")), nil
}

func (id AccountID) String() string { return string(id) }

// Domain names one persisted document kind within an account namespace.
type Domain string

const (
	DomainFinances             Domain = "finances"
	DomainTransactions         Domain = "transactions"
	DomainLaunderingPercentage Domain = "laundering_percentage"
	DomainCurrencies           Domain = "currencies"
	DomainCurrencyRates        Domain = "currency_rates"
	DomainItems                Domain = "items"
	DomainProperty             Domain = "property"
	DomainNotes                Domain = "notes"
	DomainBinders              Domain = "binders"
	DomainExchangeRates        Domain = "exchange_rates"
)

// Key returns the document key for this domain in the given account
// namespace, e.g. "big_smoke_finances".
func (d Domain) Key(id AccountID) string {
	return fmt.Sprintf("%s_%s", id, d)
}

// newID returns an opaque identifier for journal entries and registry
// records. Wall-clock nanoseconds are unique enough for a single
// synchronous session.
func newID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
