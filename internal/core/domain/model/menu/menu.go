// Package menu provides the read-only storefront catalog compiled into the binary.
package menu

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

//go:embed menu.json
var catalogJSON []byte

// Item is one product a customer can order.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	OriginalPrice float64  `json:"originalPrice"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	Proteins      []string `json:"proteins"`
	Tags          []string `json:"tags"`
}

// Catalog groups items into the four storefront sections. Field order is the display order.
type Catalog struct {
	Promos     []Item `json:"promos"`
	Especiales []Item `json:"especiales"`
	Clasicos   []Item `json:"clasicos"`
	Extras     []Item `json:"extras"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogJSON)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every item is identified and that ids are unique across sections.
func (c *Catalog) Validate() error {
	if c == nil {
		return errs.NewValueIsRequiredError("catalog")
	}

	seen := make(map[string]struct{})
	var err error
	for _, section := range c.sections() {
		for i, item := range section.items {
			if item.ID == "" {
				err = errors.Join(err, errs.NewValueIsRequiredError(fmt.Sprintf("%s[%d].id", section.name, i)))
				continue
			}
			if _, dup := seen[item.ID]; dup {
				err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
					fmt.Sprintf("%s[%d].id", section.name, i), fmt.Errorf("duplicate id %q", item.ID)))
				continue
			}
			seen[item.ID] = struct{}{}
			if item.Price < 0 || item.OriginalPrice < 0 {
				err = errors.Join(err, errs.NewValueIsInvalidError(fmt.Sprintf("%s[%d].price", section.name, i)))
			}
		}
	}
	return err
}

// Clone returns a deep copy so callers cannot modify the shared catalog.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{
		Promos:     cloneItems(c.Promos),
		Especiales: cloneItems(c.Especiales),
		Clasicos:   cloneItems(c.Clasicos),
		Extras:     cloneItems(c.Extras),
	}
}

type section struct {
	name  string
	items []Item
}

func (c *Catalog) sections() []section {
	return []section{
		{"promos", c.Promos},
		{"especiales", c.Especiales},
		{"clasicos", c.Clasicos},
		{"extras", c.Extras},
	}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}

func (i Item) clone() Item {
	i.Proteins = append(make([]string, 0, len(i.Proteins)), i.Proteins...)
	i.Tags = append(make([]string, 0, len(i.Tags)), i.Tags...)
	return i
}
