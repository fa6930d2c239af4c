package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/rates"
	"github.com/mzheln/orgbook/renderer"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh API rates and the exchange board" }
func (*fetchCmd) Usage() string {
	return `obk fetch

  Queries the price sources and refreshes the Bitcoin holding rate and the
  quoted exchange board pairs. A failing source keeps its previous rate.
`
}

func (*fetchCmd) SetFlags(*flag.FlagSet) {}

func (*fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	cs, board := s.Currencies(), s.Board()
	now := time.Now()

	refreshErr := rates.NewRefresher().Refresh(ctx, cs, board, now)

	// Persist whatever did refresh before reporting failures.
	if btc, ok := cs.Get("btc"); ok && btc.Rate.IsPositive() {
		cached := savedRates{BTC: btc.Rate, FetchedAt: now}
		if err := s.save(orgbook.DomainCurrencyRates, cached); err != nil {
			return fail(err)
		}
	}
	if err := s.save(orgbook.DomainExchangeRates, board); err != nil {
		return fail(err)
	}

	if refreshErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: some rates kept their previous value: %v\n", refreshErr)
	}
	printMarkdown(renderer.ExchangeBoardMarkdown(board, now))
	return subcommands.ExitSuccess
}
