package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/mzheln/orgbook/cmd"
)

// completion describes the command tree for shell completion. It returns
// immediately unless invoked by the shell's completion machinery.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":    predict.Dirs("*"),
			"account": predict.Nothing,
		},
	}
	root.Complete("obk")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
