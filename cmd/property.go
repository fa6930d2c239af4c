package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type propertyCmd struct {
	add      bool
	remove   string
	update   string
	name     string
	category string
	from     float64
	to       float64
}

func (*propertyCmd) Name() string     { return "property" }
func (*propertyCmd) Synopsis() string { return "manage owned property" }
func (*propertyCmd) Usage() string {
	return `obk property
obk property -add -n <name> -cat <movable|immovable> [-from <price> -to <price>]
obk property -rm <id>
obk property -set <id> [-n <name>] ...

  Without action flags, lists owned property by category.
`
}

func (c *propertyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new property")
	f.StringVar(&c.remove, "rm", "", "Remove the property with this id")
	f.StringVar(&c.update, "set", "", "Update the property with this id")
	f.StringVar(&c.name, "n", "", "Property name")
	f.StringVar(&c.category, "cat", "", "Property category")
	f.Float64Var(&c.from, "from", 0, "Lower market price")
	f.Float64Var(&c.to, "to", 0, "Upper market price")
}

func (c *propertyCmd) property() orgbook.Property {
	to := c.to
	if to == 0 {
		to = c.from
	}
	return orgbook.Property{
		Name:      c.name,
		Category:  orgbook.PropertyCategory(c.category),
		PriceFrom: orgbook.USD(c.from),
		PriceTo:   orgbook.USD(to),
	}
}

func (c *propertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	ps := s.Properties()

	switch {
	case c.add:
		p, err := ps.Add(c.property())
		if err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainProperty, ps); err != nil {
			return fail(err)
		}
		fmt.Printf("Added property %q (%s)\n", p.Name, p.ID)

	case c.remove != "":
		if err := ps.Remove(c.remove); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainProperty, ps); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed property %s\n", c.remove)

	case c.update != "":
		if err := ps.Update(c.update, c.property()); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainProperty, ps); err != nil {
			return fail(err)
		}
		fmt.Printf("Updated property %s\n", c.update)

	default:
		printMarkdown(renderer.PropertiesMarkdown(ps))
	}
	return subcommands.ExitSuccess
}
