package typechart

import (
	"strings"

	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// Category is one of the 18 damage/defense types
type Category string

const (
	Normal   Category = "normal"
	Fire     Category = "fire"
	Water    Category = "water"
	Electric Category = "electric"
	Grass    Category = "grass"
	Ice      Category = "ice"
	Fighting Category = "fighting"
	Poison   Category = "poison"
	Ground   Category = "ground"
	Flying   Category = "flying"
	Psychic  Category = "psychic"
	Bug      Category = "bug"
	Rock     Category = "rock"
	Ghost    Category = "ghost"
	Dragon   Category = "dragon"
	Dark     Category = "dark"
	Steel    Category = "steel"
	Fairy    Category = "fairy"
)

// All lists every category in chart order
var All = []Category{
	Normal, Fire, Water, Electric, Grass, Ice,
	Fighting, Poison, Ground, Flying, Psychic, Bug,
	Rock, Ghost, Dragon, Dark, Steel, Fairy,
}

var index = func() map[Category]int {
	m := make(map[Category]int, len(All))
	for i, c := range All {
		m[c] = i
	}
	return m
}()

// Valid reports whether c is one of the 18 categories
func (c Category) Valid() bool {
	_, ok := index[c]
	return ok
}

// String returns the provider identifier
func (c Category) String() string {
	return string(c)
}

// Title returns the display form, e.g. "Fire"
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory parses a user or provider supplied name
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", dexerr.NotFoundf("type %q not found", name).WithMeta("category", name)
	}
	return c, nil
}

// ParseCategories parses an ordered list of names, e.g. a creature's types
func ParseCategories(names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
