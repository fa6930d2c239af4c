package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
)

type launderCmd struct {
	percent float64
	preview bool
}

func (*launderCmd) Name() string     { return "launder" }
func (*launderCmd) Synopsis() string { return "convert dirty money into cash" }
func (*launderCmd) Usage() string {
	return `obk launder [-p <percent>] [-n]

  Converts the whole dirty money balance into cash at the configured
  percentage. A percentage given with -p is stored as the new default.
  With -n only the credited amount is shown, nothing changes.
`
}

func (c *launderCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.percent, "p", 0, "Laundering percentage (1-100); overrides and stores the configured one")
	f.BoolVar(&c.preview, "n", false, "Preview the credited amount without converting")
}

func (c *launderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}

	pct := s.Percent()
	if c.percent != 0 {
		pct = orgbook.Percent(c.percent)
		if err := orgbook.ValidateLaunderingPercent(pct); err != nil {
			return fail(err)
		}
	}

	l := s.Ledger()
	if c.preview {
		fmt.Printf("Laundering %s at %s would credit %s\n", l.DirtyMoney, pct, orgbook.LaunderPreview(l, pct))
		return subcommands.ExitSuccess
	}

	j := s.Journal()
	laundered, err := orgbook.Launder(l, j, pct)
	if err != nil {
		return fail(err)
	}
	if err := s.saveFinances(l, j); err != nil {
		return fail(err)
	}
	if c.percent != 0 {
		if err := s.save(orgbook.DomainLaunderingPercentage, pct); err != nil {
			return fail(err)
		}
	}
	fmt.Printf("Laundered at %s: %s credited to cash, dirty money now %s\n", pct, laundered, l.DirtyMoney)
	return subcommands.ExitSuccess
}
