package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type convertCmd struct {
	id   string
	buy  float64
	sell float64
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "show or edit the exchange board" }
func (*convertCmd) Usage() string {
	return `obk convert [-c <id> -buy <rate> -sell <rate>]

  Without flags, shows the exchange board with refresh countdowns. With a
  pair of rates, overrides a manual instrument; the sell rate must stay
  below the buy rate. Quoted instruments are refreshed with "obk fetch".
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "c", "", "Instrument id (btc, eur, vc)")
	f.Float64Var(&c.buy, "buy", 0, "New buy rate in dollars")
	f.Float64Var(&c.sell, "sell", 0, "New sell rate in dollars")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	board := s.Board()
	now := time.Now()

	if c.id != "" {
		if err := board.SetManual(c.id, orgbook.USD(c.buy), orgbook.USD(c.sell), now); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainExchangeRates, board); err != nil {
			return fail(err)
		}
		r, _ := board.Get(c.id)
		fmt.Printf("%s pair set to buy %s / sell %s\n", r.Name, r.BuyRate, r.SellRate)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ExchangeBoardMarkdown(board, now))
	return subcommands.ExitSuccess
}
