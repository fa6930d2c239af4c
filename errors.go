package orgbook

import (
	"errors"
	"fmt"
)

// This file centralizes the domain error taxonomy. Validation failures block
// a mutation before anything is persisted; storage and fetch failures are
// recoverable and must never crash a session.

var (
	// ErrNothingToLaunder is returned when a laundering conversion is
	// requested with no dirty money on the books.
	ErrNothingToLaunder = errors.New("no dirty money to launder")

	// ErrUnknownCurrency is returned for operations addressing a currency id
	// that is not part of the account's holdings.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrRateNotEditable is returned when a manual rate edit targets a
	// currency whose rate is sourced from an external API.
	ErrRateNotEditable = errors.New("rate is API-sourced and not editable")
)

// ValidationError reports malformed or out-of-range user input. It is raised
// before any mutation occurs, so rejected operations leave state untouched.
type ValidationError struct {
	Field  string // offending input field
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// StorageError reports an unreadable or malformed persisted document.
// Callers recover by falling back to the domain's default data set.
type StorageError struct {
	Key string // document key, e.g. "big_smoke_finances"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage document %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FetchError reports an unreachable rate source or an unexpected payload
// shape. Callers recover by retaining the last known rate.
type FetchError struct {
	Source string // provider name, e.g. "coingecko"
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
