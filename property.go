package orgbook

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// PropertyCategory splits holdings into movable and immovable.
type PropertyCategory string

const (
	PropertyMovable   PropertyCategory = "movable"
	PropertyImmovable PropertyCategory = "immovable"
)

// ParsePropertyCategory parses a wire/flag name into a PropertyCategory.
func ParsePropertyCategory(s string) (PropertyCategory, error) {
	switch PropertyCategory(s) {
	case PropertyMovable, PropertyImmovable:
		return PropertyCategory(s), nil
	default:
		return "", fmt.Errorf("unknown property category: %q", s)
	}
}

func (c PropertyCategory) Label() string {
	switch c {
	case PropertyMovable:
		return "Movable"
	case PropertyImmovable:
		return "Immovable"
	default:
		return string(c)
	}
}

// Property is one owned asset with a market price range.
type Property struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Category  PropertyCategory `json:"category"`
	PriceFrom Money            `json:"priceFrom"`
	PriceTo   Money            `json:"priceTo"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (p Property) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if _, err := ParsePropertyCategory(string(p.Category)); err != nil {
		return invalid("category", "%v", err)
	}
	return validatePriceRange(p.PriceFrom, p.PriceTo)
}

// Properties is an account's property list.
type Properties []Property

// Add validates and appends a new property, stamping id and creation time.
func (ps *Properties) Add(p Property) (Property, error) {
	if err := p.validate(); err != nil {
		return Property{}, err
	}
	p.ID = newID()
	p.CreatedAt = time.Now()
	*ps = append(*ps, p)
	return p, nil
}

// Update replaces the mutable fields of an existing property.
func (ps Properties) Update(id string, p Property) error {
	if err := p.validate(); err != nil {
		return err
	}
	for i := range ps {
		if ps[i].ID == id {
			ps[i].Name = p.Name
			ps[i].Category = p.Category
			ps[i].PriceFrom = p.PriceFrom
			ps[i].PriceTo = p.PriceTo
			return nil
		}
	}
	return fmt.Errorf("property %q not found", id)
}

// Remove deletes a property by id.
func (ps *Properties) Remove(id string) error {
	for i := range *ps {
		if (*ps)[i].ID == id {
			*ps = append((*ps)[:i], (*ps)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("property %q not found", id)
}

// ByCategory yields properties of one category in insertion order.
func (ps Properties) ByCategory(category PropertyCategory) iter.Seq[Property] {
	return func(yield func(Property) bool) {
		for _, p := range ps {
			if p.Category != category {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
