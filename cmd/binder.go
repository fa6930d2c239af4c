package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type binderCmd struct {
	add      bool
	remove   string
	render   string
	name     string
	command  string
	category string
	usage    string
	time     int
	reason   string
	query    string
}

func (*binderCmd) Name() string     { return "binder" }
func (*binderCmd) Synopsis() string { return "manage command shortcuts" }
func (*binderCmd) Usage() string {
	return `obk binder [-cat <category>] [-q <query>]
obk binder -add -n <name> -cat <category> -u <recon|everywhere> [-t <time>] [-r <reason>] [-m <command>]
obk binder -render <id>
obk binder -rm <id>

  Without action flags, searches the stored shortcuts. -render prints the
  expanded chat command of one binder, the report id left as a placeholder.
`
}

func (c *binderCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new binder")
	f.StringVar(&c.remove, "rm", "", "Remove the binder with this id")
	f.StringVar(&c.render, "render", "", "Print the expanded command of the binder with this id")
	f.StringVar(&c.name, "n", "", "Binder name")
	f.StringVar(&c.command, "m", "", "Stored command, required for everywhere binders")
	f.StringVar(&c.category, "cat", "", "Binder category (jail, mute, ban, warn, pm, other)")
	f.StringVar(&c.usage, "u", string(orgbook.UsageRecon), "Where the binder applies: recon or everywhere")
	f.IntVar(&c.time, "t", 0, "Punishment time, bounds depend on the category")
	f.StringVar(&c.reason, "r", "", "Reason the rendered command carries")
	f.StringVar(&c.query, "q", "", "Free text search over names and commands")
}

func (c *binderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	bs := s.Binders()

	switch {
	case c.add:
		b, err := bs.Add(orgbook.Binder{
			Name:     c.name,
			Command:  c.command,
			Category: orgbook.BinderCategory(c.category),
			Usage:    orgbook.BinderUsage(c.usage),
			Time:     c.time,
			Reason:   c.reason,
		})
		if err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainBinders, bs); err != nil {
			return fail(err)
		}
		fmt.Printf("Added binder %q (%s): %s\n", b.Name, b.ID, b.Render())

	case c.render != "":
		for _, b := range bs {
			if b.ID == c.render {
				fmt.Println(b.Render())
				return subcommands.ExitSuccess
			}
		}
		return fail(fmt.Errorf("binder %q not found", c.render))

	case c.remove != "":
		if err := bs.Remove(c.remove); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainBinders, bs); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed binder %s\n", c.remove)

	default:
		var category orgbook.BinderCategory
		if c.category != "" {
			category, err = orgbook.ParseBinderCategory(c.category)
			if err != nil {
				return fail(err)
			}
		}
		printMarkdown(renderer.BindersMarkdown(bs, category, c.query))
	}
	return subcommands.ExitSuccess
}
