package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type itemCmd struct {
	add      bool
	remove   string
	update   string
	name     string
	category string
	query    string
	quantity int64
	from     float64
	to       float64
}

func (*itemCmd) Name() string     { return "item" }
func (*itemCmd) Synopsis() string { return "manage the item inventory" }
func (*itemCmd) Usage() string {
	return `obk item [-cat <category>] [-q <query>]
obk item -add -n <name> -cat <category> -count <quantity> [-from <price> -to <price>]
obk item -rm <id>
obk item -set <id> [-n <name>] [-count <quantity>] ...

  Without action flags, lists the inventory, optionally one category
  (skins, accessories, certificates, resources) and a name search.
`
}

func (c *itemCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new item")
	f.StringVar(&c.remove, "rm", "", "Remove the item with this id")
	f.StringVar(&c.update, "set", "", "Update the item with this id")
	f.StringVar(&c.name, "n", "", "Item name")
	f.StringVar(&c.category, "cat", "", "Item category")
	f.StringVar(&c.query, "q", "", "Free text search over item names")
	f.Int64Var(&c.quantity, "count", 1, "Quantity")
	f.Float64Var(&c.from, "from", 0, "Lower market price")
	f.Float64Var(&c.to, "to", 0, "Upper market price")
}

func (c *itemCmd) item() orgbook.Item {
	to := c.to
	if to == 0 {
		to = c.from
	}
	return orgbook.Item{
		Name:      c.name,
		Category:  orgbook.ItemCategory(c.category),
		Quantity:  c.quantity,
		PriceFrom: orgbook.USD(c.from),
		PriceTo:   orgbook.USD(to),
	}
}

func (c *itemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	inv := s.Inventory()

	switch {
	case c.add:
		it, err := inv.Add(c.item())
		if err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainItems, inv); err != nil {
			return fail(err)
		}
		fmt.Printf("Added item %q (%s)\n", it.Name, it.ID)

	case c.remove != "":
		if err := inv.Remove(c.remove); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainItems, inv); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed item %s\n", c.remove)

	case c.update != "":
		if err := inv.Update(c.update, c.item()); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainItems, inv); err != nil {
			return fail(err)
		}
		fmt.Printf("Updated item %s\n", c.update)

	default:
		var category orgbook.ItemCategory
		if c.category != "" {
			category, err = orgbook.ParseItemCategory(c.category)
			if err != nil {
				return fail(err)
			}
		}
		printMarkdown(renderer.ItemsMarkdown(inv, category, c.query))
	}
	return subcommands.ExitSuccess
}
