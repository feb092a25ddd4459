package entities

// StatName identifies one of the six base statistics
type StatName string

const (
	StatHP             StatName = "hp"
	StatAttack         StatName = "attack"
	StatDefense        StatName = "defense"
	StatSpecialAttack  StatName = "special-attack"
	StatSpecialDefense StatName = "special-defense"
	StatSpeed          StatName = "speed"
)

// StatNames lists the six base statistics in display order
var StatNames = []StatName{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// Stat is a single base statistic
type Stat struct {
	Name StatName `json:"name"`
	Base int      `json:"base"`
}

// Ability is a named ability a creature can have
type Ability struct {
	Name     string `json:"name"`
	IsHidden bool   `json:"is_hidden"`
	Slot     int    `json:"slot"`
}

// Creature is the composite record built from the pokemon and species lookups
type Creature struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`  // provider identifier, e.g. "charizard-mega-x"
	Types      []string  `json:"types"` // primary first
	Abilities  []Ability `json:"abilities"`
	Stats      []Stat    `json:"stats"`
	Height     int       `json:"height"` // decimetres
	Weight     int       `json:"weight"` // hectograms
	SpriteURL  string    `json:"sprite_url,omitempty"`
	SpeciesURL string    `json:"species_url,omitempty"`
	Species    *Species  `json:"species,omitempty"`
}

// Species holds the descriptive record fetched from the species URL
type Species struct {
	Name        string `json:"name"`
	Genus       string `json:"genus,omitempty"`
	FlavorText  string `json:"flavor_text,omitempty"`
	Generation  string `json:"generation,omitempty"`
	EvolvesFrom string `json:"evolves_from,omitempty"`
	IsLegendary bool   `json:"is_legendary"`
	IsMythical  bool   `json:"is_mythical"`
}

// PrimaryType returns the first listed type or an empty string
func (c *Creature) PrimaryType() string {
	if c == nil || len(c.Types) == 0 {
		return ""
	}
	return c.Types[0]
}

// StatMap returns the base statistics keyed by name
func (c *Creature) StatMap() map[StatName]int {
	out := make(map[StatName]int, len(c.Stats))
	for _, s := range c.Stats {
		out[s.Name] = s.Base
	}
	return out
}

// FlavorText returns the species description if one was fetched
func (c *Creature) FlavorText() string {
	if c == nil || c.Species == nil {
		return ""
	}
	return c.Species.FlavorText
}
