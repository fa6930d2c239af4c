// Package renderer formats account state into markdown reports for the
// terminal. Each report is a plain string; the caller decides whether to
// pretty-print it.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/mzheln/orgbook"
)

// BalancesMarkdown renders the six-field ledger, the currency holdings and
// the headline totals.
func BalancesMarkdown(l *orgbook.Ledger, cs orgbook.Currencies) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balances\n\n")

	fmt.Fprintln(&b, "| Balance | Side | Amount |")
	fmt.Fprintln(&b, "|:---|:---|---:|")
	for _, f := range orgbook.Fields {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", f.DisplayName(), f.Kind(), l.Balance(f))
	}
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "White total: %s\n\n", l.WhiteTotal())
	fmt.Fprintf(&b, "Black total: %s\n\n", l.BlackTotal())

	if len(cs) > 0 {
		fmt.Fprintf(&b, "## Currencies\n\n")
		fmt.Fprintln(&b, "| Currency | Amount | Rate | Value |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for c := range cs.All() {
			rate := c.Rate.String()
			if c.IsAPIRate && c.Rate.IsZero() {
				rate = "not fetched"
			}
			fmt.Fprintf(&b, "| %s %s | %s | %s | %s |\n", c.Icon, c.Name, c.Amount, rate, c.Value())
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "**Grand total: %s**\n", orgbook.GrandTotal(l, cs))
	return b.String()
}

// Currency mutations journal the currency id as the field and a unit count
// as the amount. The persisted layout does not carry a currency code, so
// those cells render as bare numbers instead of base money.
func isCurrencyEntry(e orgbook.Entry) bool {
	_, err := orgbook.ParseField(e.Field)
	return err != nil
}

func amountCell(e orgbook.Entry, m orgbook.Money) string {
	if isCurrencyEntry(e) {
		return m.Decimal().String()
	}
	return m.String()
}

func changeCell(e orgbook.Entry, m orgbook.Money) string {
	if !isCurrencyEntry(e) {
		return m.SignedString()
	}
	d := m.Decimal()
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + d.String()
	default:
		return d.String()
	}
}

// Entry renders a single journal entry to a one-line string.
func Entry(e orgbook.Entry) string {
	field := orgbook.Field(e.Field).DisplayName()
	amount := amountCell(e, e.Amount)
	switch {
	case e.Kind == orgbook.KindLaundering:
		return fmt.Sprintf("Laundered %s (%s)", amount, e.Reason)
	case e.Operation == orgbook.OpAdd:
		return fmt.Sprintf("Added %s to %s (%s)", amount, field, e.Reason)
	case e.Operation == orgbook.OpSubtract:
		return fmt.Sprintf("Subtracted %s from %s (%s)", amount, field, e.Reason)
	case e.Operation == orgbook.OpEdit:
		return fmt.Sprintf("Set %s to %s (%s)", field, amount, e.Reason)
	default:
		return fmt.Sprintf("%s %s on %s (%s)", e.Operation, amount, field, e.Reason)
	}
}

// JournalMarkdown renders journal entries, most recent first, as a table.
func JournalMarkdown(j *orgbook.Journal, filters ...func(orgbook.Entry) bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	header := false
	for e := range j.Entries(filters...) {
		if !header {
			fmt.Fprintln(&b, "| Date | Type | Entry | Change | Before | After |")
			fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
			header = true
		}
		change := e.BalanceAfter.Sub(e.BalanceBefore)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Kind, Entry(e), changeCell(e, change),
			amountCell(e, e.BalanceBefore), amountCell(e, e.BalanceAfter))
	}
	if !header {
		fmt.Fprintf(&b, "No transactions recorded.\n")
	}
	return b.String()
}

// ExchangeBoardMarkdown renders the converter board with refresh countdowns.
func ExchangeBoardMarkdown(board orgbook.ExchangeBoard, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Exchange Board\n\n")
	fmt.Fprintln(&b, "| Instrument | Buy | Sell | Source | Refresh in |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|---:|")
	for _, r := range board {
		source := "quoted"
		if r.IsEditable {
			source = "manual"
		}
		fmt.Fprintf(&b, "| %s %s | %s | %s | %s | %dd |\n",
			r.Icon, r.Name, r.BuyRate, r.SellRate, source, r.DaysUntilRefresh(now))
	}
	return b.String()
}
