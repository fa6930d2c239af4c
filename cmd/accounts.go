package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook/store"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts with persisted data" }
func (*accountsCmd) Usage() string {
	return `obk accounts

  Lists every account that has at least one document in the data directory.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, err := store.Open(*dataDir)
	if err != nil {
		return fail(err)
	}
	ids, err := st.Accounts()
	if err != nil {
		return fail(err)
	}
	if len(ids) == 0 {
		fmt.Println("No accounts yet.")
		return subcommands.ExitSuccess
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return subcommands.ExitSuccess
}
