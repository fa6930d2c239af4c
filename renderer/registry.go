package renderer

import (
	"fmt"
	"strings"

	"github.com/mzheln/orgbook"
)

// ItemsMarkdown renders inventory search results, optionally restricted to
// a category and a name query.
func ItemsMarkdown(inv orgbook.Inventory, category orgbook.ItemCategory, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Items\n\n")
	header := false
	for it := range inv.Search(category, query) {
		if !header {
			fmt.Fprintln(&b, "| ID | Name | Category | Qty | Price |")
			fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
			header = true
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			it.ID, it.Name, it.Category.Label(), it.Quantity, priceRange(it.PriceFrom, it.PriceTo))
	}
	if !header {
		fmt.Fprintf(&b, "No items.\n")
	}
	return b.String()
}

// PropertiesMarkdown renders owned property split into movable and immovable
// sections.
func PropertiesMarkdown(ps orgbook.Properties) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Property\n\n")
	for _, cat := range []orgbook.PropertyCategory{orgbook.PropertyImmovable, orgbook.PropertyMovable} {
		header := false
		for p := range ps.ByCategory(cat) {
			if !header {
				fmt.Fprintf(&b, "## %s\n\n", cat.Label())
				fmt.Fprintln(&b, "| ID | Name | Price |")
				fmt.Fprintln(&b, "|:---|:---|---:|")
				header = true
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", p.ID, p.Name, priceRange(p.PriceFrom, p.PriceTo))
		}
		if header {
			fmt.Fprintf(&b, "\n")
		}
	}
	if len(ps) == 0 {
		fmt.Fprintf(&b, "No property.\n")
	}
	return b.String()
}

func priceRange(from, to orgbook.Money) string {
	if from.Equal(to) {
		return from.String()
	}
	return fmt.Sprintf("%s - %s", from, to)
}

// NotesMarkdown renders notes in display order: dated plans first, then
// newest-first. The query searches titles and content.
func NotesMarkdown(ns orgbook.Notes, category orgbook.NoteCategory, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Notes\n\n")
	sorted := ns.Search(category, query)
	if len(sorted) == 0 {
		fmt.Fprintf(&b, "No notes.\n")
		return b.String()
	}
	for _, n := range sorted {
		fmt.Fprintf(&b, "## %s [%s]\n\n", n.Title, n.Category)
		if n.Deadline != nil {
			fmt.Fprintf(&b, "Deadline: %s\n\n", n.Deadline.Format("2006-01-02"))
		}
		if n.Content != "" {
			fmt.Fprintf(&b, "%s\n\n", n.Content)
		}
		fmt.Fprintf(&b, "id: %s\n\n", n.ID)
	}
	return b.String()
}

// BindersMarkdown renders shortcut search results with their expanded
// commands.
func BindersMarkdown(bs orgbook.Binders, category orgbook.BinderCategory, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Binders\n\n")
	header := false
	for bd := range bs.Search(category, query) {
		if !header {
			fmt.Fprintln(&b, "| ID | Name | Category | Usage | Command |")
			fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
			header = true
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | `%s` |\n",
			bd.ID, bd.Name, bd.Category, bd.Usage, bd.Render())
	}
	if !header {
		fmt.Fprintf(&b, "No binders.\n")
	}
	return b.String()
}
