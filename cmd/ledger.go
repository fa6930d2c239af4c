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

// runLedgerOp parses the positional amount, applies one mutation to the
// selected field and persists both the ledger and the journal.
func runLedgerOp(op orgbook.Operation, field, reason string, f *flag.FlagSet) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		return fail(fmt.Errorf("invalid amount %q: %w", f.Arg(0), err))
	}
	fd, err := orgbook.ParseField(field)
	if err != nil {
		return fail(err)
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	l, j := s.Ledger(), s.Journal()
	e, err := l.Apply(j, fd, op, amount, reason)
	if err != nil {
		return fail(err)
	}
	if err := s.saveFinances(l, j); err != nil {
		return fail(err)
	}
	fmt.Printf("%s\n%s: %s -> %s\n", renderer.Entry(e), fd.DisplayName(), e.BalanceBefore, e.BalanceAfter)
	return subcommands.ExitSuccess
}

// --- add ---

type addCmd struct {
	field  string
	reason string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "increase a balance" }
func (*addCmd) Usage() string {
	return `obk add -f <field> -r <reason> <amount>

  Adds a positive amount to one of the six balances and records the
  transaction.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "f", string(orgbook.FieldCash), "Balance to credit (cash, bank_account, deposit, dirty_money, org_account, territory_account)")
	f.StringVar(&c.reason, "r", "", "Reason for the transaction (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runLedgerOp(orgbook.OpAdd, c.field, c.reason, f)
}

// --- sub ---

type subCmd struct {
	field  string
	reason string
}

func (*subCmd) Name() string     { return "sub" }
func (*subCmd) Synopsis() string { return "decrease a balance, clamping at zero" }
func (*subCmd) Usage() string {
	return `obk sub -f <field> -r <reason> <amount>

  Subtracts a positive amount from one of the six balances. Subtracting more
  than the balance holds leaves it at zero.
`
}

func (c *subCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "f", string(orgbook.FieldCash), "Balance to debit")
	f.StringVar(&c.reason, "r", "", "Reason for the transaction (required)")
}

func (c *subCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runLedgerOp(orgbook.OpSubtract, c.field, c.reason, f)
}

// --- set ---

type setCmd struct {
	field  string
	reason string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set a balance outright" }
func (*setCmd) Usage() string {
	return `obk set -f <field> -r <reason> <amount>

  Replaces a balance with a new non-negative amount. The journal records the
  new balance.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.field, "f", string(orgbook.FieldCash), "Balance to set")
	f.StringVar(&c.reason, "r", "", "Reason for the transaction (required)")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runLedgerOp(orgbook.OpEdit, c.field, c.reason, f)
}
