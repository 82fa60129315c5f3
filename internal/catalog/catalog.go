package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Catalog is the read-only registry of beverages and condiments.
// It is loaded once at startup and never mutated afterwards, so
// it is safe to share across request handlers without locking.
type Catalog struct {
	beverages  map[string]Beverage
	condiments map[string]Condiment
}

// New builds a catalog from already-validated maps. Used by Load
// and by in-memory test fixtures.
func New(beverages map[string]Beverage, condiments map[string]Condiment) *Catalog {
	b := make(map[string]Beverage, len(beverages))
	for k, v := range beverages {
		b[k] = v
	}
	c := make(map[string]Condiment, len(condiments))
	for k, v := range condiments {
		c[k] = v
	}
	return &Catalog{beverages: b, condiments: c}
}

// Load reads beverages.json and condiments.json from dir.
// Any malformed entry is a load error; the caller is expected
// to treat that as fatal at startup.
func Load(dir string) (*Catalog, error) {
	var beverages map[string]Beverage
	if err := loadJSON(filepath.Join(dir, "beverages.json"), &beverages); err != nil {
		return nil, err
	}
	if len(beverages) == 0 {
		return nil, fmt.Errorf("catalog: no beverages in %s", dir)
	}

	var condiments map[string]Condiment
	if err := loadJSON(filepath.Join(dir, "condiments.json"), &condiments); err != nil {
		return nil, err
	}
	if len(condiments) == 0 {
		return nil, fmt.Errorf("catalog: no condiments in %s", dir)
	}

	for key, b := range beverages {
		if err := validateEntry(key, b.ID, b.Name, b.Price.IsNegative(), b.Calories); err != nil {
			return nil, fmt.Errorf("catalog: beverage %q: %w", key, err)
		}
		if !beverageCategories[b.Category] {
			return nil, fmt.Errorf("catalog: beverage %q: unknown category %q", key, b.Category)
		}
	}
	for key, c := range condiments {
		if err := validateEntry(key, c.ID, c.Name, c.Price.IsNegative(), c.Calories); err != nil {
			return nil, fmt.Errorf("catalog: condiment %q: %w", key, err)
		}
		if !condimentCategories[c.Category] {
			return nil, fmt.Errorf("catalog: condiment %q: unknown category %q", key, c.Category)
		}
	}

	return New(beverages, condiments), nil
}

func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func validateEntry(key, id, name string, negativePrice bool, calories int) error {
	if id == "" || name == "" {
		return fmt.Errorf("missing id or name")
	}
	if id != key {
		return fmt.Errorf("key does not match id %q", id)
	}
	if negativePrice {
		return fmt.Errorf("negative price")
	}
	if calories < 0 {
		return fmt.Errorf("negative calories")
	}
	return nil
}

// Beverage looks up a beverage by id.
func (c *Catalog) Beverage(id string) (Beverage, bool) {
	b, ok := c.beverages[id]
	return b, ok
}

// Condiment looks up a condiment by id.
func (c *Catalog) Condiment(id string) (Condiment, bool) {
	co, ok := c.condiments[id]
	return co, ok
}

// Beverages returns a copy of the beverage registry keyed by id.
func (c *Catalog) Beverages() map[string]Beverage {
	out := make(map[string]Beverage, len(c.beverages))
	for k, v := range c.beverages {
		out[k] = v
	}
	return out
}

// Condiments returns a copy of the condiment registry keyed by id.
func (c *Catalog) Condiments() map[string]Condiment {
	out := make(map[string]Condiment, len(c.condiments))
	for k, v := range c.condiments {
		out[k] = v
	}
	return out
}

// BeverageIDs lists beverage ids in no particular order.
func (c *Catalog) BeverageIDs() []string {
	ids := make([]string, 0, len(c.beverages))
	for id := range c.beverages {
		ids = append(ids, id)
	}
	return ids
}

// CondimentIDs lists condiment ids in no particular order.
func (c *Catalog) CondimentIDs() []string {
	ids := make([]string, 0, len(c.condiments))
	for id := range c.condiments {
		ids = append(ids, id)
	}
	return ids
}
