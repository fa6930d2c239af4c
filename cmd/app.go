// Package cmd implements the CLI application to manage an account book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/store"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", envOr("OBK_DATA", ".obk"), "Path to the data directory holding account documents")
var accountName = flag.String("account", os.Getenv("OBK_ACCOUNT"), "Account the command operates on")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Commands are all the subcommands a main package registers.
var Commands = []subcommands.Command{
	&balancesCmd{},
	&addCmd{},
	&subCmd{},
	&setCmd{},
	&launderCmd{},
	&txCmd{},
	&currencyCmd{},
	&fetchCmd{},
	&convertCmd{},
	&itemCmd{},
	&propertyCmd{},
	&noteCmd{},
	&binderCmd{},
	&accountsCmd{},
	&topicCmd{},
}

// session is everything a command needs from disk: the selected account and
// a store over the data directory. Domains are loaded on demand.
type session struct {
	store *store.Store
	id    orgbook.AccountID
}

// openSession resolves the account flag and opens the data directory.
func openSession() (*session, error) {
	if *accountName == "" {
		return nil, fmt.Errorf("no account selected: use -account or the OBK_ACCOUNT environment variable")
	}
	id, err := orgbook.NewAccountID(*accountName)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(*dataDir)
	if err != nil {
		return nil, err
	}
	return &session{store: st, id: id}, nil
}

// load decodes one domain document into v. A missing document leaves v at
// its default; a corrupt one is logged and also falls back, the bad file
// stays on disk untouched until the next successful save.
func (s *session) load(d orgbook.Domain, v any) {
	err := s.store.Load(s.id, d, v)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Printf("warning: %v, starting from defaults", err)
	}
}

func (s *session) save(d orgbook.Domain, v any) error {
	return s.store.Save(s.id, d, v)
}

// Ledger loads the six balances, zero-valued when never saved.
func (s *session) Ledger() *orgbook.Ledger {
	l := orgbook.NewLedger()
	s.load(orgbook.DomainFinances, l)
	return l
}

// Journal loads the transaction history, empty when never saved.
func (s *session) Journal() *orgbook.Journal {
	j := orgbook.NewJournal()
	s.load(orgbook.DomainTransactions, j)
	return j
}

// Percent loads the configured laundering percentage.
func (s *session) Percent() orgbook.Percent {
	p := orgbook.DefaultLaunderingPercent
	s.load(orgbook.DomainLaunderingPercentage, &p)
	return p
}

// savedRates is the persisted snapshot of the last successful API fetch, so
// a fresh session values holdings with the last known rate instead of zero.
type savedRates struct {
	BTC       orgbook.Money `json:"btc"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// Currencies loads the holdings merged over the default set, with the last
// fetched API rate applied when one is cached.
func (s *session) Currencies() orgbook.Currencies {
	cs := orgbook.DefaultCurrencies()

	var cached savedRates
	s.load(orgbook.DomainCurrencyRates, &cached)
	if cached.BTC.IsPositive() {
		if err := cs.SetAPIRate("btc", cached.BTC); err != nil {
			log.Printf("warning: ignoring cached bitcoin rate: %v", err)
		}
	}

	var saved orgbook.Currencies
	s.load(orgbook.DomainCurrencies, &saved)
	cs.MergeSaved(saved)
	return cs
}

// Board loads the converter board, or the default one when never saved.
func (s *session) Board() orgbook.ExchangeBoard {
	var board orgbook.ExchangeBoard
	s.load(orgbook.DomainExchangeRates, &board)
	if len(board) == 0 {
		board = orgbook.DefaultExchangeBoard(time.Now())
	}
	return board
}

func (s *session) Inventory() orgbook.Inventory {
	var inv orgbook.Inventory
	s.load(orgbook.DomainItems, &inv)
	return inv
}

func (s *session) Properties() orgbook.Properties {
	var ps orgbook.Properties
	s.load(orgbook.DomainProperty, &ps)
	return ps
}

func (s *session) Notes() orgbook.Notes {
	var ns orgbook.Notes
	s.load(orgbook.DomainNotes, &ns)
	return ns
}

func (s *session) Binders() orgbook.Binders {
	var bs orgbook.Binders
	s.load(orgbook.DomainBinders, &bs)
	return bs
}

// saveFinances persists the ledger and journal together, the journal first
// so a committed balance always has its entry on disk.
func (s *session) saveFinances(l *orgbook.Ledger, j *orgbook.Journal) error {
	if err := s.save(orgbook.DomainTransactions, j); err != nil {
		return err
	}
	return s.save(orgbook.DomainFinances, l)
}

// printMarkdown renders markdown to the terminal; on render failure the raw
// markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and maps it to an exit status: user mistakes are
// usage errors, everything else a plain failure.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	var verr *orgbook.ValidationError
	if errors.As(err, &verr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
