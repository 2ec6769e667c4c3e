// Package category holds the closed set of menu categories and the table each
// one is stored in. Every component that needs to validate a category or pick
// its table goes through this package.
package category

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned for any identifier outside the enumeration.
var ErrInvalid = errors.New("invalid category")

// ID identifies a menu category, e.g. "beverages".
type ID string

const (
	Beverages    ID = "beverages"
	ChatItem     ID = "chatitem"
	ChineseItems ID = "chineseitems"
	Curry        ID = "curry"
	DosaItem     ID = "dosaitem"
	FruitJuice   ID = "fruitjuice"
	IceCreams    ID = "icecreams"
	IndianBreads ID = "indianbreads"
	MealCombo    ID = "mealcombo"
	RiceItem     ID = "riceitem"
	Soup         ID = "soup"
	SouthIndian  ID = "southindian"
	Starters     ID = "starters"
	Sweets       ID = "sweets"
)

var ordered = [...]ID{
	Beverages, ChatItem, ChineseItems, Curry, DosaItem,
	FruitJuice, IceCreams, IndianBreads, MealCombo,
	RiceItem, Soup, SouthIndian, Starters, Sweets,
}

// tables is the only place a category turns into a table name. Table names are
// never built from request input.
var tables = map[ID]string{
	Beverages:    "menu_beverages",
	ChatItem:     "menu_chatitem",
	ChineseItems: "menu_chineseitems",
	Curry:        "menu_curry",
	DosaItem:     "menu_dosaitem",
	FruitJuice:   "menu_fruitjuice",
	IceCreams:    "menu_icecreams",
	IndianBreads: "menu_indianbreads",
	MealCombo:    "menu_mealcombo",
	RiceItem:     "menu_riceitem",
	Soup:         "menu_soup",
	SouthIndian:  "menu_southindian",
	Starters:     "menu_starters",
	Sweets:       "menu_sweets",
}

// List returns every category in display order. The caller owns the slice.
func List() []ID {
	out := make([]ID, len(ordered))
	copy(out, ordered[:])
	return out
}

// IsValid reports whether id belongs to the enumeration.
func IsValid(id ID) bool {
	_, ok := tables[id]
	return ok
}

// Parse normalizes raw client input and validates it.
func Parse(raw string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(raw)))
	if !IsValid(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, raw)
	}
	return id, nil
}

// Table returns the storage table for id.
func Table(id ID) (string, error) {
	table, ok := tables[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalid, string(id))
	}
	return table, nil
}

func (id ID) String() string {
	return string(id)
}
