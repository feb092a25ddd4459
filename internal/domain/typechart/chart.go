package typechart

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed chart.yaml
var defaultChart []byte

// Relations holds the attacking categories a defending category reacts to
type Relations struct {
	Weak   []Category
	Resist []Category
	Immune []Category
	Color  int
}

// Chart is the validated compatibility table
type Chart struct {
	Version   int
	relations map[Category]*Relations
}

type chartFile struct {
	Version    int             `yaml:"version"`
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Weak   []string `yaml:"weak"`
	Resist []string `yaml:"resist"`
	Immune []string `yaml:"immune"`
}

// Load parses and validates the embedded chart
func Load() (*Chart, error) {
	return Parse(defaultChart)
}

// MustLoad is like Load but panics on error
func MustLoad() *Chart {
	chart, err := Load()
	if err != nil {
		panic(err)
	}
	return chart
}

// Parse builds a chart from YAML and validates it
func Parse(data []byte) (*Chart, error) {
	var file chartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, dexerr.Wrap(err, "parsing type chart")
	}

	chart := &Chart{
		Version:   file.Version,
		relations: make(map[Category]*Relations, len(file.Categories)),
	}

	for _, entry := range file.Categories {
		defending := Category(entry.Name)
		if !defending.Valid() {
			return nil, dexerr.InvalidArgumentf("type chart: unknown category %q", entry.Name)
		}
		if _, dup := chart.relations[defending]; dup {
			return nil, dexerr.InvalidArgumentf("type chart: category %q listed twice", entry.Name)
		}

		rel := &Relations{}
		var err error
		if rel.Weak, err = toCategories(defending, "weak", entry.Weak); err != nil {
			return nil, err
		}
		if rel.Resist, err = toCategories(defending, "resist", entry.Resist); err != nil {
			return nil, err
		}
		if rel.Immune, err = toCategories(defending, "immune", entry.Immune); err != nil {
			return nil, err
		}
		if rel.Color, err = parseColor(entry.Color); err != nil {
			return nil, dexerr.Wrapf(err, "type chart: color for %s", defending)
		}

		chart.relations[defending] = rel
	}

	if err := chart.Validate(); err != nil {
		return nil, err
	}

	return chart, nil
}

// Validate checks that every category is present exactly once and that the
// weak, resist and immune sets of each category are disjoint
func (c *Chart) Validate() error {
	if len(c.relations) != len(All) {
		return dexerr.InvalidArgumentf("type chart: expected %d categories, got %d", len(All), len(c.relations))
	}

	for _, defending := range All {
		rel, ok := c.relations[defending]
		if !ok {
			return dexerr.InvalidArgumentf("type chart: missing category %q", defending)
		}

		seen := make(map[Category]string)
		sets := []struct {
			name string
			list []Category
		}{
			{"weak", rel.Weak},
			{"resist", rel.Resist},
			{"immune", rel.Immune},
		}
		for _, set := range sets {
			for _, attacking := range set.list {
				if !attacking.Valid() {
					return dexerr.InvalidArgumentf("type chart: %s.%s references unknown category %q", defending, set.name, attacking)
				}
				if prev, dup := seen[attacking]; dup {
					return dexerr.InvalidArgumentf("type chart: %s lists %s in both %s and %s", defending, attacking, prev, set.name)
				}
				seen[attacking] = set.name
			}
		}
	}

	return nil
}

// Get returns the relations for a defending category
func (c *Chart) Get(defending Category) (*Relations, bool) {
	rel, ok := c.relations[defending]
	return rel, ok
}

// Color returns the display color for a category, black when unknown
func (c *Chart) Color(category Category) int {
	if rel, ok := c.relations[category]; ok {
		return rel.Color
	}
	return 0x000000
}

// ColorFor returns the display color for a creature's type list, using the primary type
func (c *Chart) ColorFor(types []string) int {
	if len(types) == 0 {
		return 0x000000
	}
	return c.Color(Category(types[0]))
}

func toCategories(defending Category, set string, names []string) ([]Category, error) {
	out := make([]Category, 0, len(names))
	for _, n := range names {
		cat := Category(n)
		if !cat.Valid() {
			return nil, dexerr.InvalidArgumentf("type chart: %s.%s references unknown category %q", defending, set, n)
		}
		out = append(out, cat)
	}
	return out, nil
}

func parseColor(s string) (int, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if hex == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return int(v), nil
}
