package orgbook

import (
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BinderCategory classifies a command shortcut by the moderation command it
// wraps.
type BinderCategory string

const (
	BinderJail  BinderCategory = "jail"
	BinderMute  BinderCategory = "mute"
	BinderBan   BinderCategory = "ban"
	BinderWarn  BinderCategory = "warn"
	BinderPM    BinderCategory = "pm"
	BinderOther BinderCategory = "other"
)

// BinderCategories lists every category in display order.
var BinderCategories = []BinderCategory{
	BinderJail, BinderMute, BinderBan, BinderWarn, BinderPM, BinderOther,
}

// ParseBinderCategory parses a wire/flag name into a BinderCategory.
func ParseBinderCategory(s string) (BinderCategory, error) {
	for _, c := range BinderCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown binder category: %q", s)
}

// CommandPrefix returns the chat command the category renders to; empty for
// the free-form "other" category.
func (c BinderCategory) CommandPrefix() string {
	switch c {
	case BinderJail:
		return "/jail"
	case BinderMute:
		return "/mute"
	case BinderBan:
		return "/ban"
	case BinderWarn:
		return "/warn"
	case BinderPM:
		return "/pm"
	default:
		return ""
	}
}

// TimeBounds is the allowed punishment duration for one category.
type TimeBounds struct {
	Min, Max int
	Unit     string // "minutes", "days", or "" when unconstrained
	Required bool
}

// TimeBounds returns the duration bounds for the category. The second result
// is false for categories that carry no time at all. The mapping is matched
// exhaustively so new categories cannot silently fall through.
func (c BinderCategory) TimeBounds() (TimeBounds, bool) {
	switch c {
	case BinderJail:
		return TimeBounds{Min: 15, Max: 300, Unit: "minutes", Required: true}, true
	case BinderMute:
		return TimeBounds{Min: 15, Max: 600, Unit: "minutes", Required: true}, true
	case BinderBan:
		return TimeBounds{Min: 1, Max: 30, Unit: "days", Required: true}, true
	case BinderWarn:
		return TimeBounds{}, false
	case BinderPM, BinderOther:
		return TimeBounds{Min: 1, Max: 9999}, true
	default:
		return TimeBounds{}, false
	}
}

// BinderUsage tells where a shortcut applies.
type BinderUsage string

const (
	UsageRecon      BinderUsage = "recon"      // rendered against a report id
	UsageEverywhere BinderUsage = "everywhere" // free-form stored command
)

// ParseBinderUsage parses a wire/flag name into a BinderUsage.
func ParseBinderUsage(s string) (BinderUsage, error) {
	switch BinderUsage(s) {
	case UsageRecon, UsageEverywhere:
		return BinderUsage(s), nil
	default:
		return "", fmt.Errorf("unknown binder usage: %q", s)
	}
}

// Binder is one stored command shortcut.
type Binder struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Command   string         `json:"command"`
	Category  BinderCategory `json:"category"`
	Usage     BinderUsage    `json:"usage"`
	Time      int            `json:"time,omitempty"`
	Reason    string         `json:"reason"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (b Binder) validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if _, err := ParseBinderCategory(string(b.Category)); err != nil {
		return invalid("category", "%v", err)
	}
	if _, err := ParseBinderUsage(string(b.Usage)); err != nil {
		return invalid("usage", "%v", err)
	}
	if b.Usage == UsageEverywhere && strings.TrimSpace(b.Command) == "" {
		return invalid("command", "required for everywhere binders")
	}
	bounds, hasTime := b.Category.TimeBounds()
	switch {
	case !hasTime:
		if b.Time != 0 {
			return invalid("time", "%s binders carry no time", b.Category)
		}
	case b.Time == 0:
		if bounds.Required && b.Usage == UsageRecon {
			return invalid("time", "required for %s binders", b.Category)
		}
	case b.Time < bounds.Min || b.Time > bounds.Max:
		return invalid("time", "must be between %d and %d %s, got %d",
			bounds.Min, bounds.Max, bounds.Unit, b.Time)
	}
	return nil
}

// Render produces the chat command the shortcut stands for. Recon binders
// expand to "<command> {reconID} [time] <reason>" with the literal report-id
// placeholder to be filled on paste; everywhere binders return their stored
// command verbatim.
func (b Binder) Render() string {
	prefix := b.Category.CommandPrefix()
	if b.Usage != UsageRecon || prefix == "" {
		return b.Command
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(" {reconID}")
	if _, hasTime := b.Category.TimeBounds(); hasTime && b.Time > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(b.Time))
	}
	sb.WriteString(" ")
	sb.WriteString(b.Reason)
	return sb.String()
}

// Binders is an account's shortcut list.
type Binders []Binder

// Add validates and appends a new binder, stamping id and creation time.
func (bs *Binders) Add(b Binder) (Binder, error) {
	if err := b.validate(); err != nil {
		return Binder{}, err
	}
	b.ID = newID()
	b.CreatedAt = time.Now()
	*bs = append(*bs, b)
	return b, nil
}

// Update replaces the mutable fields of an existing binder.
func (bs Binders) Update(id string, b Binder) error {
	if err := b.validate(); err != nil {
		return err
	}
	for i := range bs {
		if bs[i].ID == id {
			bs[i].Name = b.Name
			bs[i].Command = b.Command
			bs[i].Category = b.Category
			bs[i].Usage = b.Usage
			bs[i].Time = b.Time
			bs[i].Reason = b.Reason
			return nil
		}
	}
	return fmt.Errorf("binder %q not found", id)
}

// Remove deletes a binder by id.
func (bs *Binders) Remove(id string) error {
	for i := range *bs {
		if (*bs)[i].ID == id {
			*bs = append((*bs)[:i], (*bs)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("binder %q not found", id)
}

// Search yields binders matching a category and a free-text query over name
// and command, newest-first. Empty category or query match everything.
func (bs Binders) Search(category BinderCategory, query string) iter.Seq[Binder] {
	query = strings.ToLower(query)
	matches := func(b Binder) bool {
		if category != "" && b.Category != category {
			return false
		}
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(b.Name), query) ||
			strings.Contains(strings.ToLower(b.Command), query)
	}
	sorted := make([]Binder, len(bs))
	copy(sorted, bs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return func(yield func(Binder) bool) {
		for _, b := range sorted {
			if !matches(b) {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}
