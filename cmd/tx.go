package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type txCmd struct {
	kinds string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, most recent first" }
func (*txCmd) Usage() string {
	return `obk tx [-k <kinds>] [-head <n>] [-tail <n>]

  Lists journal entries, most recent first. -k takes a comma separated list
  of kinds (white, black, laundering) to filter on.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kinds, "k", "", "Comma separated entry kinds to show")
	f.IntVar(&c.head, "head", 0, "Show only the first N entries")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N entries")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var filters []func(orgbook.Entry) bool
	if c.kinds != "" {
		for _, name := range strings.Split(c.kinds, ",") {
			k, err := orgbook.ParseKind(strings.TrimSpace(name))
			if err != nil {
				return fail(err)
			}
			filters = append(filters, orgbook.ByKind(k))
		}
	}

	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	j := s.Journal()

	var entries []orgbook.Entry
	for e := range j.Entries(filters...) {
		entries = append(entries, e)
	}
	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	if c.tail > 0 && len(entries) > c.tail {
		entries = entries[len(entries)-c.tail:]
	}

	trimmed := orgbook.NewJournal()
	for i := len(entries) - 1; i >= 0; i-- {
		trimmed.Record(entries[i])
	}
	printMarkdown(renderer.JournalMarkdown(trimmed))
	return subcommands.ExitSuccess
}
