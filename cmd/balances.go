package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook/renderer"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show all balances and the grand total" }
func (*balancesCmd) Usage() string {
	return `obk balances

  Shows the six balances, the currency holdings with their rates, and the
  grand total.
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (*balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.BalancesMarkdown(s.Ledger(), s.Currencies()))
	return subcommands.ExitSuccess
}
