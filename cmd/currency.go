package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type currencyCmd struct {
	id     string
	op     string
	reason string
	rate   float64
}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show or mutate currency holdings" }
func (*currencyCmd) Usage() string {
	return `obk currency [-c <id> -op <add|sub|set> -r <reason> <amount>] [-c <id> -rate <rate>]

  Without flags, lists the holdings. With -op, mutates the holding's amount
  the same way ledger balances are mutated, recording a transaction. With
  -rate, overrides a manual rate (API-sourced rates are not editable).
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "c", "", "Currency id (btc, euro, vccoin)")
	f.StringVar(&c.op, "op", "", "Mutation to apply: add, sub or set")
	f.StringVar(&c.reason, "r", "", "Reason for the mutation")
	f.Float64Var(&c.rate, "rate", 0, "New manual rate in dollars per unit")
}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	cs := s.Currencies()

	switch {
	case c.rate != 0:
		if err := cs.SetRate(c.id, orgbook.USD(c.rate)); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainCurrencies, cs); err != nil {
			return fail(err)
		}
		cur, _ := cs.Get(c.id)
		fmt.Printf("%s rate set to %s\n", cur.Name, cur.Rate)

	case c.op != "":
		if f.NArg() != 1 {
			f.Usage()
			return subcommands.ExitUsageError
		}
		amount, err := decimal.NewFromString(f.Arg(0))
		if err != nil {
			return fail(fmt.Errorf("invalid amount %q: %w", f.Arg(0), err))
		}
		op, err := parseCurrencyOp(c.op)
		if err != nil {
			return fail(err)
		}
		j := s.Journal()
		e, err := cs.Apply(j, c.id, op, amount, c.reason)
		if err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainTransactions, j); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainCurrencies, cs); err != nil {
			return fail(err)
		}
		fmt.Printf("%s\n%s -> %s\n", renderer.Entry(e), e.BalanceBefore, e.BalanceAfter)

	default:
		printMarkdown(renderer.BalancesMarkdown(s.Ledger(), cs))
	}
	return subcommands.ExitSuccess
}

// parseCurrencyOp accepts the same short names the ledger commands use.
func parseCurrencyOp(s string) (orgbook.Operation, error) {
	switch s {
	case "add":
		return orgbook.OpAdd, nil
	case "sub":
		return orgbook.OpSubtract, nil
	case "set":
		return orgbook.OpEdit, nil
	default:
		return "", fmt.Errorf("unknown mutation: %q (want add, sub or set)", s)
	}
}
