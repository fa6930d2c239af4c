package orgbook

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"
)

// Kind classifies a journal entry by the side of the book it touched.
// Laundering conversions get their own kind regardless of fields involved.
type Kind string

const (
	KindWhite      Kind = "white"
	KindBlack      Kind = "black"
	KindLaundering Kind = "laundering"
)

// ParseKind parses a wire/flag name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindWhite, KindBlack, KindLaundering:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown entry kind: %q", s)
	}
}

// Entry is one immutable journal record. BalanceAfter is always the
// deterministic result of BalanceBefore, Operation and Amount.
type Entry struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"type"`
	Operation     Operation `json:"operation"`
	Field         string    `json:"field"` // ledger field name or currency id
	Amount        Money     `json:"amount"`
	Reason        string    `json:"reason"`
	BalanceBefore Money     `json:"balanceBefore"`
	BalanceAfter  Money     `json:"balanceAfter"`
	Timestamp     time.Time `json:"timestamp"`
}

func newEntry(k Kind, op Operation, field string, amount Money, reason string, before, after Money) Entry {
	return Entry{
		ID:            newID(),
		Kind:          k,
		Operation:     op,
		Field:         field,
		Amount:        amount,
		Reason:        reason,
		BalanceBefore: before,
		BalanceAfter:  after,
		Timestamp:     time.Now(),
	}
}

// Journal is the append-only history of an account. Entries are held in
// arrival order, which for a single synchronous session is chronological;
// history is never edited or deleted.
type Journal struct {
	entries []Entry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal { return &Journal{} }

// Record appends an entry. It never rewrites history.
func (j *Journal) Record(e Entry) {
	j.entries = append(j.entries, e)
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int { return len(j.entries) }

// Entries yields entries most-recent-first. With no filter every entry is
// yielded; with filters an entry passing any one of them is yielded.
func (j *Journal) Entries(filters ...func(Entry) bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i := len(j.entries) - 1; i >= 0; i-- {
			e := j.entries[i]
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(e) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ByKind returns a predicate selecting entries of one kind.
func ByKind(k Kind) func(Entry) bool {
	return func(e Entry) bool { return e.Kind == k }
}

// AcceptAll passes every entry.
func AcceptAll(Entry) bool { return true }

// MarshalJSON persists entries oldest-first so a decoded journal replays in
// the exact recorded order.
func (j *Journal) MarshalJSON() ([]byte, error) {
	if j.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(j.entries)
}

func (j *Journal) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.entries)
}
