package taxonomy

import (
	"fmt"
	"strings"
)

// Catalog is an immutable, ordered category → sub-type mapping.
type Catalog struct {
	categories []Category
	index      map[string]int
	subTypes   map[string][]SubType
}

// New validates entries and builds a Catalog. Identifiers are trimmed and
// must be unique (sub-type ids only within their category). A nil SubTypes
// slice is rejected; use an empty slice for a category with no sub-types.
func New(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		categories: make([]Category, 0, len(entries)),
		index:      make(map[string]int, len(entries)),
		subTypes:   make(map[string][]SubType, len(entries)),
	}

	for i, entry := range entries {
		category := entry.Category
		category.ID = strings.TrimSpace(category.ID)
		category.Name = strings.TrimSpace(category.Name)
		if category.ID == "" {
			return nil, fmt.Errorf("taxonomy: category at index %d has an empty id", i)
		}
		if _, exists := c.index[category.ID]; exists {
			return nil, fmt.Errorf("%w: category %q", ErrDuplicateID, category.ID)
		}
		if category.Name == "" {
			category.Name = category.ID
		}
		if entry.SubTypes == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingSubTypes, category.ID)
		}
		category.Icon = sanitizeIconMarkup(category.Icon)

		subs := make([]SubType, 0, len(entry.SubTypes))
		seen := make(map[string]struct{}, len(entry.SubTypes))
		for j, sub := range entry.SubTypes {
			sub.ID = strings.TrimSpace(sub.ID)
			sub.Name = strings.TrimSpace(sub.Name)
			if sub.ID == "" {
				return nil, fmt.Errorf("taxonomy: category %q sub-type at index %d has an empty id", category.ID, j)
			}
			if _, exists := seen[sub.ID]; exists {
				return nil, fmt.Errorf("%w: sub-type %q in category %q", ErrDuplicateID, sub.ID, category.ID)
			}
			seen[sub.ID] = struct{}{}
			if sub.Name == "" {
				sub.Name = sub.ID
			}
			subs = append(subs, sub)
		}

		c.index[category.ID] = len(c.categories)
		c.categories = append(c.categories, category)
		c.subTypes[category.ID] = subs
	}

	return c, nil
}

// MustNew panics if the entries do not form a valid catalog.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	return append([]Category(nil), c.categories...)
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	idx, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[idx], true
}

// SubTypes returns the sub-types declared for categoryID. The boolean is
// false only for unknown categories; a known category may have none.
func (c *Catalog) SubTypes(categoryID string) ([]SubType, bool) {
	if c == nil {
		return nil, false
	}
	subs, ok := c.subTypes[categoryID]
	if !ok {
		return nil, false
	}
	return append([]SubType{}, subs...), true
}

// SubType looks up a sub-type within a category.
func (c *Catalog) SubType(categoryID, subTypeID string) (SubType, bool) {
	if c == nil {
		return SubType{}, false
	}
	for _, sub := range c.subTypes[categoryID] {
		if sub.ID == subTypeID {
			return sub, true
		}
	}
	return SubType{}, false
}

// Entries returns a copy of the catalog in its construction shape.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, 0, len(c.categories))
	for _, category := range c.categories {
		out = append(out, Entry{
			Category: category,
			SubTypes: append([]SubType{}, c.subTypes[category.ID]...),
		})
	}
	return out
}
