package orgbook

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NoteCategory classifies a note.
type NoteCategory string

const (
	NoteImportant NoteCategory = "important"
	NoteTech      NoteCategory = "tech"
	NoteIllegal   NoteCategory = "illegal"
	NotePlans     NoteCategory = "plans"
)

// NoteCategories lists every category in display order.
var NoteCategories = []NoteCategory{NoteImportant, NoteTech, NoteIllegal, NotePlans}

// ParseNoteCategory parses a wire/flag name into a NoteCategory.
func ParseNoteCategory(s string) (NoteCategory, error) {
	for _, c := range NoteCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown note category: %q", s)
}

// Note is one free-text note. Only plans carry a deadline.
type Note struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  NoteCategory `json:"category"`
	Deadline  *time.Time   `json:"deadline,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (n Note) validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if _, err := ParseNoteCategory(string(n.Category)); err != nil {
		return invalid("category", "%v", err)
	}
	if n.Deadline != nil && n.Category != NotePlans {
		return invalid("deadline", "only plans carry a deadline")
	}
	return nil
}

// Notes is an account's note list.
type Notes []Note

// Add validates and appends a new note, stamping id and both timestamps.
func (ns *Notes) Add(n Note) (Note, error) {
	if err := n.validate(); err != nil {
		return Note{}, err
	}
	n.ID = newID()
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	*ns = append(*ns, n)
	return n, nil
}

// SetContent replaces a note's body and refreshes its update time.
func (ns Notes) SetContent(id, content string) error {
	for i := range ns {
		if ns[i].ID == id {
			ns[i].Content = content
			ns[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("note %q not found", id)
}

// Remove deletes a note by id.
func (ns *Notes) Remove(id string) error {
	for i := range *ns {
		if (*ns)[i].ID == id {
			*ns = append((*ns)[:i], (*ns)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("note %q not found", id)
}

// Sorted returns the display order: plans with deadlines first, soonest
// deadline on top, then everything else newest-first. The receiver is not
// modified.
func (ns Notes) Sorted(category NoteCategory) []Note {
	out := make([]Note, 0, len(ns))
	for _, n := range ns {
		if category != "" && n.Category != category {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aPlan := a.Category == NotePlans && a.Deadline != nil
		bPlan := b.Category == NotePlans && b.Deadline != nil
		switch {
		case aPlan && bPlan:
			return a.Deadline.Before(*b.Deadline)
		case aPlan:
			return true
		case bPlan:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	return out
}

// Search filters the display order by a case-insensitive query over title
// and content. An empty query matches everything.
func (ns Notes) Search(category NoteCategory, query string) []Note {
	sorted := ns.Sorted(category)
	query = strings.ToLower(query)
	if query == "" {
		return sorted
	}
	out := sorted[:0]
	for _, n := range sorted {
		if strings.Contains(strings.ToLower(n.Title), query) ||
			strings.Contains(strings.ToLower(n.Content), query) {
			out = append(out, n)
		}
	}
	return out
}
