package menu

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

//go:embed dishes.json
var catalogJSON []byte

// ErrNotFound is returned when a dish id is not part of the catalog.
var ErrNotFound = errors.New("menu: dish not found")

// Catalog is the read-only set of dishes, promotions and leaders.
type Catalog struct {
	dishes     []Item
	byID       map[int]Item
	promotions []Promotion
	leaders    []Leader
}

type catalogFile struct {
	Dishes     []Item      `json:"dishes"`
	Promotions []Promotion `json:"promotions"`
	Leaders    []Leader    `json:"leaders"`
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(catalogJSON)
	if err != nil {
		panic(fmt.Sprintf("menu: embedded catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("menu: decode catalog: %w", err)
	}
	return New(f.Dishes, f.Promotions, f.Leaders)
}

// New builds a catalog, rejecting duplicate dish ids.
func New(dishes []Item, promotions []Promotion, leaders []Leader) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[int]Item, len(dishes)),
		promotions: append([]Promotion(nil), promotions...),
		leaders:    append([]Leader(nil), leaders...),
	}
	for _, d := range dishes {
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("menu: duplicate dish id %d", d.ID)
		}
		c.byID[d.ID] = d
		c.dishes = append(c.dishes, d)
	}
	sort.SliceStable(c.dishes, func(i, j int) bool { return c.dishes[i].ID < c.dishes[j].ID })
	return c, nil
}

// Dishes lists every dish ordered by id.
func (c *Catalog) Dishes() []Item {
	return append([]Item(nil), c.dishes...)
}

// Dish looks up a dish by id.
func (c *Catalog) Dish(id int) (Item, error) {
	d, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return d, nil
}

// FeaturedDish returns the first featured dish, if any.
func (c *Catalog) FeaturedDish() (Item, bool) {
	for _, d := range c.dishes {
		if d.Featured {
			return d, true
		}
	}
	return Item{}, false
}

// FeaturedPromotion returns the first featured promotion, if any.
func (c *Catalog) FeaturedPromotion() (Promotion, bool) {
	for _, p := range c.promotions {
		if p.Featured {
			return p, true
		}
	}
	return Promotion{}, false
}

// FeaturedLeader returns the first featured leader, if any.
func (c *Catalog) FeaturedLeader() (Leader, bool) {
	for _, l := range c.leaders {
		if l.Featured {
			return l, true
		}
	}
	return Leader{}, false
}

// Leaders lists corporate leadership in catalog order.
func (c *Catalog) Leaders() []Leader {
	return append([]Leader(nil), c.leaders...)
}
