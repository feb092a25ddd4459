package typechart

import (
	"slices"

	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// Multipliers a single defending category can contribute
const (
	immuneFactor = 0.0
	weakFactor   = 2.0
	resistFactor = 0.5
)

// MaxDefending is the most categories a creature can have
const MaxDefending = 2

// Effectiveness maps every attacking category to its damage multiplier
type Effectiveness map[Category]float64

// Breakdown groups non-neutral multipliers for display
type Breakdown struct {
	Quadruple []Category // 4x
	Double    []Category // 2x
	Half      []Category // 0.5x
	Quarter   []Category // 0.25x
	Immune    []Category // 0x
}

// Effectiveness computes the multiplier of every attacking category against the
// given defending categories. Within one defending category immune wins over weak,
// weak over resist. The result always has one entry per category.
func (c *Chart) Effectiveness(defending ...Category) (Effectiveness, error) {
	if len(defending) == 0 || len(defending) > MaxDefending {
		return nil, dexerr.InvalidArgumentf("expected 1 to %d defending categories, got %d", MaxDefending, len(defending))
	}

	rels := make([]*Relations, 0, len(defending))
	for _, d := range defending {
		rel, ok := c.relations[d]
		if !ok {
			return nil, dexerr.NotFoundf("type %q not found", d)
		}
		rels = append(rels, rel)
	}

	out := make(Effectiveness, len(All))
	for _, attacking := range All {
		multiplier := 1.0
		for _, rel := range rels {
			switch {
			case slices.Contains(rel.Immune, attacking):
				multiplier = immuneFactor
			case slices.Contains(rel.Weak, attacking):
				multiplier *= weakFactor
			case slices.Contains(rel.Resist, attacking):
				multiplier *= resistFactor
			}
		}
		out[attacking] = multiplier
	}

	return out, nil
}

// EffectivenessFor is a convenience for provider type names, e.g. a creature's types
func (c *Chart) EffectivenessFor(types []string) (Effectiveness, error) {
	defending, err := ParseCategories(types)
	if err != nil {
		return nil, err
	}
	return c.Effectiveness(defending...)
}

// Against returns the multiplier for one attacking category
func (e Effectiveness) Against(attacking Category) float64 {
	return e[attacking]
}

// Breakdown groups the vector by multiplier in chart order, skipping neutral entries
func (e Effectiveness) Breakdown() Breakdown {
	var b Breakdown
	for _, attacking := range All {
		switch e[attacking] {
		case 4:
			b.Quadruple = append(b.Quadruple, attacking)
		case 2:
			b.Double = append(b.Double, attacking)
		case 0.5:
			b.Half = append(b.Half, attacking)
		case 0.25:
			b.Quarter = append(b.Quarter, attacking)
		case 0:
			b.Immune = append(b.Immune, attacking)
		}
	}
	return b
}
