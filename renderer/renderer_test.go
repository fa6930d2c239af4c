package renderer_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

func TestBalancesMarkdown(t *testing.T) {
	l := &orgbook.Ledger{
		Cash:       orgbook.USD(1500),
		DirtyMoney: orgbook.USD(300),
	}
	cs := orgbook.Currencies{
		{ID: "euro", Name: "Euro", Icon: "€", Amount: decimal.NewFromInt(100), Rate: orgbook.USD(4.818)},
	}

	md := renderer.BalancesMarkdown(l, cs)

	for _, want := range []string{
		"# Balances",
		"| Cash | white | $1,500.00 |",
		"| Dirty money | black | $300.00 |",
		"White total: $1,500.00",
		"Black total: $300.00",
		"| € Euro | 100 | $4.81 | $481.80 |",
		"Grand total: $2,281.80",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("BalancesMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestBalancesMarkdown_UnfetchedAPIRate(t *testing.T) {
	cs := orgbook.Currencies{
		{ID: "btc", Name: "Bitcoin", Rate: orgbook.USD(0), IsAPIRate: true},
	}
	md := renderer.BalancesMarkdown(orgbook.NewLedger(), cs)
	if !strings.Contains(md, "not fetched") {
		t.Errorf("BalancesMarkdown() must flag an unfetched API rate:\n%s", md)
	}
}

func TestEntry(t *testing.T) {
	l, j := orgbook.NewLedger(), orgbook.NewJournal()

	add, err := l.Apply(j, orgbook.FieldCash, orgbook.OpAdd, decimal.NewFromInt(100), "sold skins")
	if err != nil {
		t.Fatal(err)
	}
	if got := renderer.Entry(add); got != "Added $100.00 to Cash (sold skins)" {
		t.Errorf("Entry(add) = %q", got)
	}

	sub, err := l.Apply(j, orgbook.FieldCash, orgbook.OpSubtract, decimal.NewFromInt(30), "fees")
	if err != nil {
		t.Fatal(err)
	}
	if got := renderer.Entry(sub); got != "Subtracted $30.00 from Cash (fees)" {
		t.Errorf("Entry(sub) = %q", got)
	}

	set, err := l.Apply(j, orgbook.FieldDeposit, orgbook.OpEdit, decimal.NewFromInt(500), "audit")
	if err != nil {
		t.Fatal(err)
	}
	if got := renderer.Entry(set); got != "Set Deposit to $500.00 (audit)" {
		t.Errorf("Entry(set) = %q", got)
	}
}

func TestEntry_Laundering(t *testing.T) {
	l := &orgbook.Ledger{DirtyMoney: orgbook.USD(100)}
	j := orgbook.NewJournal()
	if _, err := orgbook.Launder(l, j, 75); err != nil {
		t.Fatal(err)
	}
	for e := range j.Entries() {
		got := renderer.Entry(e)
		if !strings.HasPrefix(got, "Laundered $100.00") {
			t.Errorf("Entry(laundering) = %q, want Laundered $100.00 prefix", got)
		}
	}
}

func TestJournalMarkdown_Empty(t *testing.T) {
	md := renderer.JournalMarkdown(orgbook.NewJournal())
	if !strings.Contains(md, "No transactions recorded.") {
		t.Errorf("JournalMarkdown() = %q", md)
	}
}

func TestJournalMarkdown_SignedChange(t *testing.T) {
	l, j := orgbook.NewLedger(), orgbook.NewJournal()
	if _, err := l.Apply(j, orgbook.FieldCash, orgbook.OpAdd, decimal.NewFromInt(100), "sold skins"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Apply(j, orgbook.FieldCash, orgbook.OpSubtract, decimal.NewFromInt(30), "fees"); err != nil {
		t.Fatal(err)
	}

	md := renderer.JournalMarkdown(j)
	for _, want := range []string{
		"| +$100.00 | $0.00 | $100.00 |",
		"| -$30.00 | $100.00 | $70.00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("JournalMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

// Currency mutations survive a reload with only the unit count, so they must
// never be dressed up as base money.
func TestJournalMarkdown_CurrencyEntryAfterReload(t *testing.T) {
	cs, j := orgbook.DefaultCurrencies(), orgbook.NewJournal()
	if _, err := cs.Apply(j, "btc", orgbook.OpAdd, decimal.RequireFromString("0.5"), "bought"); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(j)
	if err != nil {
		t.Fatal(err)
	}
	reloaded := orgbook.NewJournal()
	if err := json.Unmarshal(raw, reloaded); err != nil {
		t.Fatal(err)
	}

	for e := range reloaded.Entries() {
		if got := renderer.Entry(e); got != "Added 0.5 to btc (bought)" {
			t.Errorf("Entry() = %q, want Added 0.5 to btc (bought)", got)
		}
	}
	md := renderer.JournalMarkdown(reloaded)
	if !strings.Contains(md, "| +0.5 | 0 | 0.5 |") {
		t.Errorf("JournalMarkdown() must keep unit counts bare:\n%s", md)
	}
	if strings.Contains(md, "$0.50") {
		t.Errorf("JournalMarkdown() renders a unit count as dollars:\n%s", md)
	}
}

func TestExchangeBoardMarkdown(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	board := orgbook.DefaultExchangeBoard(now.Add(-24 * time.Hour))

	md := renderer.ExchangeBoardMarkdown(board, now)
	for _, want := range []string{
		"# Exchange Board",
		"| ₿ Bitcoin | $95,000.00 | $93,000.00 | quoted | 2d |",
		"| ⚡ VC-coin | $95.00 | $90.00 | manual | 2d |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ExchangeBoardMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestBindersMarkdown(t *testing.T) {
	var bs orgbook.Binders
	if _, err := bs.Add(orgbook.Binder{
		Name: "mute spam", Category: orgbook.BinderMute,
		Usage: orgbook.UsageRecon, Time: 60, Reason: "spam",
	}); err != nil {
		t.Fatal(err)
	}

	md := renderer.BindersMarkdown(bs, "", "")
	if !strings.Contains(md, "`/mute {reconID} 60 spam`") {
		t.Errorf("BindersMarkdown() missing rendered command:\n%s", md)
	}
}

func TestNotesMarkdown(t *testing.T) {
	var ns orgbook.Notes
	if _, err := ns.Add(orgbook.Note{Title: "stash", Category: orgbook.NoteIllegal, Content: "docks"}); err != nil {
		t.Fatal(err)
	}
	md := renderer.NotesMarkdown(ns, "", "")
	for _, want := range []string{"## stash [illegal]", "docks"} {
		if !strings.Contains(md, want) {
			t.Errorf("NotesMarkdown() missing %q in:\n%s", want, md)
		}
	}

	if md := renderer.NotesMarkdown(ns, "", "warehouse"); !strings.Contains(md, "No notes.") {
		t.Errorf("NotesMarkdown() with unmatched query = %q", md)
	}
}

func TestItemsMarkdown_PriceRange(t *testing.T) {
	var inv orgbook.Inventory
	if _, err := inv.Add(orgbook.Item{
		Name: "AK skin", Category: orgbook.ItemSkins, Quantity: 2,
		PriceFrom: orgbook.USD(100), PriceTo: orgbook.USD(150),
	}); err != nil {
		t.Fatal(err)
	}
	md := renderer.ItemsMarkdown(inv, "", "")
	if !strings.Contains(md, "$100.00 - $150.00") {
		t.Errorf("ItemsMarkdown() missing price range:\n%s", md)
	}

	if md := renderer.ItemsMarkdown(inv, "", "ak"); !strings.Contains(md, "AK skin") {
		t.Errorf("ItemsMarkdown() query missed the item:\n%s", md)
	}
	if md := renderer.ItemsMarkdown(inv, "", "deagle"); !strings.Contains(md, "No items.") {
		t.Errorf("ItemsMarkdown() with unmatched query = %q", md)
	}
}
