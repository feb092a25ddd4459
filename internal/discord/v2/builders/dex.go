package builders

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/stats"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
	"github.com/bwmarrin/discordgo"
)

// DexEmbeds renders pokedex answers, colored by the type chart
type DexEmbeds struct {
	chart *typechart.Chart
}

// NewDexEmbeds creates the renderer
func NewDexEmbeds(chart *typechart.Chart) *DexEmbeds {
	if chart == nil {
		panic("type chart is required")
	}
	return &DexEmbeds{chart: chart}
}

func (d *DexEmbeds) base(c *entities.Creature, suffix string) *EmbedBuilder {
	title := names.Display(c.Name)
	if suffix != "" {
		title += " - " + suffix
	}
	return NewEmbed().
		Title(title).
		Color(d.chart.ColorFor(c.Types)).
		Thumbnail(c.SpriteURL)
}

// Creature renders the main card
func (d *DexEmbeds) Creature(c *entities.Creature) *discordgo.MessageEmbed {
	b := NewEmbed().
		Title(fmt.Sprintf("%s #%d", names.Display(c.Name), c.ID)).
		Color(d.chart.ColorFor(c.Types)).
		Thumbnail(c.SpriteURL).
		Description(c.FlavorText()).
		Field("Type", joinTypes(c.Types, " / "), true).
		Field("Height", stats.FormatHeight(c.Height), true).
		Field("Weight", stats.FormatWeight(c.Weight), true).
		Field("Abilities", abilityList(c.Abilities), false)

	if c.Species != nil && c.Species.Genus != "" {
		b.Footer(c.Species.Genus)
	}

	return b.Build()
}

// Stats renders base stats as bars with the total
func (d *DexEmbeds) Stats(c *entities.Creature) *discordgo.MessageEmbed {
	values := c.StatMap()
	lines := make([]string, 0, len(entities.StatNames))
	for _, name := range entities.StatNames {
		v, ok := values[name]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("**%s**: %d\n`%s`", stats.Label(name), v, stats.Bar(v)))
	}

	return d.base(c, "Base Stats").
		Description(strings.Join(lines, "\n\n")).
		Field("Total", strconv.Itoa(stats.Total(c.Stats)), true).
		Build()
}

// Abilities lists abilities, marking hidden ones
func (d *DexEmbeds) Abilities(c *entities.Creature) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(c.Abilities))
	for _, a := range c.Abilities {
		line := names.Display(a.Name)
		if a.IsHidden {
			line += " (Hidden)"
		}
		lines = append(lines, "**"+line+"**")
	}

	return d.base(c, "Abilities").
		Description(strings.Join(lines, "\n")).
		Build()
}

// Effectiveness renders the non-neutral multipliers against the creature
func (d *DexEmbeds) Effectiveness(c *entities.Creature, eff typechart.Effectiveness) *discordgo.MessageEmbed {
	bd := eff.Breakdown()

	return d.base(c, "Type Effectiveness").
		FieldIf("4x Weak to", joinCategories(bd.Quadruple), false).
		FieldIf("2x Weak to", joinCategories(bd.Double), false).
		FieldIf("½x Resists", joinCategories(bd.Half), false).
		FieldIf("¼x Resists", joinCategories(bd.Quarter), false).
		FieldIf("Immune to", joinCategories(bd.Immune), false).
		Build()
}

// Comparison renders a head to head with per-stat winners
func (d *DexEmbeds) Comparison(cmp *pokedex.Comparison) *discordgo.MessageEmbed {
	rows := make([]string, 0, len(cmp.Rows))
	for _, r := range cmp.Rows {
		rows = append(rows, fmt.Sprintf("%s: %d %s %d", stats.Label(r.Name), r.First, r.Winner.Marker(), r.Second))
	}

	first := names.Display(cmp.First.Name)
	second := names.Display(cmp.Second.Name)

	b := NewEmbed().
		Title(first+" vs "+second).
		Color(ColorCompare).
		Field(first, fmt.Sprintf("Type: %s\nTotal: %d", joinTypes(cmp.First.Types, "/"), cmp.FirstTotal), true).
		Field("vs", strings.Join(rows, "\n"), true).
		Field(second, fmt.Sprintf("Type: %s\nTotal: %d", joinTypes(cmp.Second.Types, "/"), cmp.SecondTotal), true)

	switch cmp.Winner {
	case stats.WinnerFirst:
		b.Footer(first + " has the higher base stat total")
	case stats.WinnerSecond:
		b.Footer(second + " has the higher base stat total")
	default:
		b.Footer("Base stat totals are tied")
	}

	return b.Build()
}

// Category renders the provider's damage relations for a type
func (d *DexEmbeds) Category(info *entities.CategoryInfo) *discordgo.MessageEmbed {
	rel := info.DamageRelations

	return NewEmbed().
		Title(names.Display(info.Name)+" Type").
		Color(d.chart.Color(typechart.Category(info.Name))).
		Field("Super effective against", orNone(rel.DoubleDamageTo), false).
		Field("Not very effective against", orNone(rel.HalfDamageTo), false).
		Field("No effect against", orNone(rel.NoDamageTo), false).
		Footer(fmt.Sprintf("%d moves • %d Pokémon", info.MoveCount, info.PokemonCount)).
		Build()
}

// Help lists the commands for the given prefix
func (d *DexEmbeds) Help(prefix string) *discordgo.MessageEmbed {
	p := prefix
	return NewEmbed().
		Title("🤖 Pokemon Bot Commands").
		Color(ColorHelp).
		Description("Here are all the available commands:").
		Field(p+"pokemon <name/id>", fmt.Sprintf("Get information about a Pokemon\nExample: `%spokemon pikachu` or `%spokemon eternamax`", p, p), false).
		Field(p+"compare <pokemon1> <pokemon2>", fmt.Sprintf("Compare two Pokemon stats\nExample: `%scompare pikachu raichu`", p), false).
		Field(p+"random", "Get a random Pokemon", false).
		Field(p+"type <type>", fmt.Sprintf("Get information about a Pokemon type\nExample: `%stype fire`", p), false).
		Field(p+"help", "Show this help message", false).
		Footer("Special forms supported: eternamax, mega evolutions, regional variants, and more!").
		Build()
}

func joinTypes(types []string, sep string) string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, names.Display(t))
	}
	return strings.Join(out, sep)
}

func joinCategories(categories []typechart.Category) string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Title())
	}
	return strings.Join(out, ", ")
}

func abilityList(abilities []entities.Ability) string {
	out := make([]string, 0, len(abilities))
	for _, a := range abilities {
		out = append(out, names.Display(a.Name))
	}
	if len(out) == 0 {
		return "None"
	}
	return strings.Join(out, ", ")
}

func orNone(categories []string) string {
	if len(categories) == 0 {
		return "None"
	}
	return joinTypes(categories, ", ")
}
