package orgbook

import (
	"encoding/json"
	"testing"
)

func entryWithKind(k Kind, field string) Entry {
	return newEntry(k, OpAdd, field, USD(10), "test", USD(0), USD(10))
}

func TestJournal_EntriesNewestFirst(t *testing.T) {
	j := NewJournal()
	j.Record(entryWithKind(KindWhite, "cash"))
	j.Record(entryWithKind(KindBlack, "dirty_money"))
	j.Record(entryWithKind(KindWhite, "deposit"))

	var fields []string
	for e := range j.Entries() {
		fields = append(fields, e.Field)
	}
	want := []string{"deposit", "dirty_money", "cash"}
	if len(fields) != len(want) {
		t.Fatalf("got %d entries, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, fields[i], want[i])
		}
	}
}

func TestJournal_EntriesFilters(t *testing.T) {
	j := NewJournal()
	j.Record(entryWithKind(KindWhite, "cash"))
	j.Record(entryWithKind(KindBlack, "dirty_money"))
	j.Record(entryWithKind(KindLaundering, "dirty_money"))
	j.Record(entryWithKind(KindWhite, "deposit"))

	count := func(filters ...func(Entry) bool) int {
		n := 0
		for range j.Entries(filters...) {
			n++
		}
		return n
	}

	if got := count(ByKind(KindWhite)); got != 2 {
		t.Errorf("white entries = %d, want 2", got)
	}
	if got := count(ByKind(KindLaundering)); got != 1 {
		t.Errorf("laundering entries = %d, want 1", got)
	}
	// Several filters select the union.
	if got := count(ByKind(KindWhite), ByKind(KindBlack)); got != 3 {
		t.Errorf("white+black entries = %d, want 3", got)
	}
	if got := count(AcceptAll); got != 4 {
		t.Errorf("all entries = %d, want 4", got)
	}
}

func TestJournal_EntriesEarlyStop(t *testing.T) {
	j := NewJournal()
	for i := 0; i < 10; i++ {
		j.Record(entryWithKind(KindWhite, "cash"))
	}
	n := 0
	for range j.Entries() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("stopped after %d entries, want 3", n)
	}
}

func TestJournal_JSONKeepsOrder(t *testing.T) {
	j := NewJournal()
	j.Record(entryWithKind(KindWhite, "first"))
	j.Record(entryWithKind(KindBlack, "second"))
	j.Record(entryWithKind(KindWhite, "third"))

	data, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	decoded := NewJournal()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if decoded.Len() != 3 {
		t.Fatalf("decoded %d entries, want 3", decoded.Len())
	}
	// Newest first after decoding proves the document is oldest first.
	var fields []string
	for e := range decoded.Entries() {
		fields = append(fields, e.Field)
	}
	if fields[0] != "third" || fields[2] != "first" {
		t.Errorf("decoded order = %v, want [third second first]", fields)
	}
}

func TestJournal_EmptyMarshalsToList(t *testing.T) {
	data, err := json.Marshal(NewJournal())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty journal = %s, want []", data)
	}
}
