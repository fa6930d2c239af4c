package orgbook

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// ItemCategory classifies an inventory item.
type ItemCategory string

const (
	ItemSkins        ItemCategory = "skins"
	ItemAccessories  ItemCategory = "accessories"
	ItemCertificates ItemCategory = "certificates"
	ItemResources    ItemCategory = "resources"
)

// ItemCategories lists every category in display order.
var ItemCategories = []ItemCategory{ItemSkins, ItemAccessories, ItemCertificates, ItemResources}

// ParseItemCategory parses a wire/flag name into an ItemCategory.
func ParseItemCategory(s string) (ItemCategory, error) {
	for _, c := range ItemCategories {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown item category: %q", s)
}

func (c ItemCategory) Label() string {
	switch c {
	case ItemSkins:
		return "Skins"
	case ItemAccessories:
		return "Accessories"
	case ItemCertificates:
		return "Certificates"
	case ItemResources:
		return "Resources"
	default:
		return string(c)
	}
}

// Item is one inventory entry with a market price range.
type Item struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  ItemCategory `json:"category"`
	Quantity  int64        `json:"quantity"`
	PriceFrom Money        `json:"priceFrom"`
	PriceTo   Money        `json:"priceTo"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (it Item) validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if _, err := ParseItemCategory(string(it.Category)); err != nil {
		return invalid("category", "%v", err)
	}
	if it.Quantity <= 0 {
		return invalid("quantity", "must be positive, got %d", it.Quantity)
	}
	return validatePriceRange(it.PriceFrom, it.PriceTo)
}

func validatePriceRange(from, to Money) error {
	if from.IsNegative() {
		return invalid("price from", "must not be negative, got %s", from)
	}
	if to.LessThan(from) {
		return invalid("price to", "must not be below price from (%s < %s)", to, from)
	}
	return nil
}

// Inventory is an account's item list.
type Inventory []Item

// Add validates and appends a new item, stamping id and creation time.
func (inv *Inventory) Add(it Item) (Item, error) {
	if err := it.validate(); err != nil {
		return Item{}, err
	}
	it.ID = newID()
	it.CreatedAt = time.Now()
	*inv = append(*inv, it)
	return it, nil
}

// Update replaces the mutable fields of an existing item.
func (inv Inventory) Update(id string, it Item) error {
	if err := it.validate(); err != nil {
		return err
	}
	for i := range inv {
		if inv[i].ID == id {
			inv[i].Name = it.Name
			inv[i].Category = it.Category
			inv[i].Quantity = it.Quantity
			inv[i].PriceFrom = it.PriceFrom
			inv[i].PriceTo = it.PriceTo
			return nil
		}
	}
	return fmt.Errorf("item %q not found", id)
}

// Remove deletes an item by id.
func (inv *Inventory) Remove(id string) error {
	for i := range *inv {
		if (*inv)[i].ID == id {
			*inv = append((*inv)[:i], (*inv)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("item %q not found", id)
}

// Filter yields items of one category; an empty category yields everything.
func (inv Inventory) Filter(category ItemCategory) iter.Seq[Item] {
	return inv.Search(category, "")
}

// Search yields items matching a category and a case-insensitive query over
// the name, in stored order. Empty category or query match everything.
func (inv Inventory) Search(category ItemCategory, query string) iter.Seq[Item] {
	query = strings.ToLower(query)
	return func(yield func(Item) bool) {
		for _, it := range inv {
			if category != "" && it.Category != category {
				continue
			}
			if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Count returns how many items sit in a category.
func (inv Inventory) Count(category ItemCategory) int {
	n := 0
	for _, it := range inv {
		if it.Category == category {
			n++
		}
	}
	return n
}
