package builders_test

import (
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/stats"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/testutils"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMap(e *discordgo.MessageEmbed) map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Name] = f.Value
	}
	return out
}

func charizard() *entities.Creature {
	c := testutils.CreateTestCreature(6, "charizard", 80, "fire", "flying")
	c.Height = 17
	c.Weight = 905
	c.SpriteURL = "https://img/6.png"
	c.Abilities = []entities.Ability{
		{Name: "blaze", Slot: 1},
		{Name: "solar-power", IsHidden: true, Slot: 3},
	}
	c.Species = &entities.Species{Name: "charizard", Genus: "Flame Pokémon", FlavorText: "Spits fire."}
	return c
}

func TestDexEmbeds_Creature(t *testing.T) {
	chart := typechart.MustLoad()
	e := builders.NewDexEmbeds(chart).Creature(charizard())

	assert.Equal(t, "Charizard #6", e.Title)
	assert.Equal(t, chart.Color(typechart.Fire), e.Color)
	assert.Equal(t, "Spits fire.", e.Description)
	require.NotNil(t, e.Thumbnail)
	assert.Equal(t, "https://img/6.png", e.Thumbnail.URL)
	assert.Equal(t, "Flame Pokémon", e.Footer.Text)

	fields := fieldMap(e)
	assert.Equal(t, "Fire / Flying", fields["Type"])
	assert.Equal(t, `1.7m (5'7")`, fields["Height"])
	assert.Equal(t, "90.5kg (200 lbs)", fields["Weight"])
	assert.Equal(t, "Blaze, Solar Power", fields["Abilities"])
}

func TestDexEmbeds_StatsAndAbilities(t *testing.T) {
	d := builders.NewDexEmbeds(typechart.MustLoad())
	c := charizard()

	s := d.Stats(c)
	assert.Equal(t, "Charizard - Base Stats", s.Title)
	assert.Contains(t, s.Description, "**HP**: 80\n`████████░░░░░░░`")
	assert.Contains(t, s.Description, "**Sp. Attack**: 80")
	assert.Equal(t, "480", fieldMap(s)["Total"])

	a := d.Abilities(c)
	assert.Equal(t, "Charizard - Abilities", a.Title)
	assert.Equal(t, "**Blaze**\n**Solar Power (Hidden)**", a.Description)
}

func TestDexEmbeds_Effectiveness(t *testing.T) {
	chart := typechart.MustLoad()
	c := charizard()
	eff, err := chart.EffectivenessFor(c.Types)
	require.NoError(t, err)

	e := builders.NewDexEmbeds(chart).Effectiveness(c, eff)
	fields := fieldMap(e)

	assert.Equal(t, "Rock", fields["4x Weak to"])
	assert.Equal(t, "Water, Electric", fields["2x Weak to"])
	assert.Equal(t, "Fire, Fighting, Steel, Fairy", fields["½x Resists"])
	assert.Equal(t, "Grass, Bug", fields["¼x Resists"])
	assert.Equal(t, "Ground", fields["Immune to"])
}

func TestDexEmbeds_EffectivenessSkipsEmptyBuckets(t *testing.T) {
	chart := typechart.MustLoad()
	c := testutils.CreateTestCreature(25, "pikachu", 50, "electric")
	eff, err := chart.EffectivenessFor(c.Types)
	require.NoError(t, err)

	e := builders.NewDexEmbeds(chart).Effectiveness(c, eff)
	fields := fieldMap(e)

	assert.Equal(t, "Ground", fields["2x Weak to"])
	assert.NotContains(t, fields, "4x Weak to")
	assert.NotContains(t, fields, "Immune to")
}

func TestDexEmbeds_Comparison(t *testing.T) {
	first := testutils.CreateTestCreature(25, "pikachu", 50, "electric")
	second := testutils.CreateTestCreature(26, "raichu", 80, "electric")
	cmp := &pokedex.Comparison{
		First:       first,
		Second:      second,
		Rows:        stats.CompareAll(first.Stats, second.Stats),
		FirstTotal:  stats.Total(first.Stats),
		SecondTotal: stats.Total(second.Stats),
		Winner:      stats.WinnerSecond,
	}

	e := builders.NewDexEmbeds(typechart.MustLoad()).Comparison(cmp)
	fields := fieldMap(e)

	assert.Equal(t, "Pikachu vs Raichu", e.Title)
	assert.Equal(t, builders.ColorCompare, e.Color)
	assert.Equal(t, "Type: Electric\nTotal: 300", fields["Pikachu"])
	assert.Equal(t, "Type: Electric\nTotal: 480", fields["Raichu"])
	assert.Contains(t, fields["vs"], "HP: 50 🥈 80")
	assert.Equal(t, "Raichu has the higher base stat total", e.Footer.Text)
}

func TestDexEmbeds_Category(t *testing.T) {
	chart := typechart.MustLoad()
	info := &entities.CategoryInfo{
		Name: "fire",
		DamageRelations: entities.DamageRelations{
			DoubleDamageTo: []string{"grass", "ice"},
			HalfDamageTo:   []string{"water"},
		},
		MoveCount:    2,
		PokemonCount: 1,
	}

	e := builders.NewDexEmbeds(chart).Category(info)
	fields := fieldMap(e)

	assert.Equal(t, "Fire Type", e.Title)
	assert.Equal(t, chart.Color(typechart.Fire), e.Color)
	assert.Equal(t, "Grass, Ice", fields["Super effective against"])
	assert.Equal(t, "Water", fields["Not very effective against"])
	assert.Equal(t, "None", fields["No effect against"])
}

func TestDexEmbeds_CategoryUnknownColor(t *testing.T) {
	e := builders.NewDexEmbeds(typechart.MustLoad()).Category(&entities.CategoryInfo{Name: "stellar"})
	assert.Equal(t, builders.ColorUnknown, e.Color)
}

func TestDexEmbeds_Help(t *testing.T) {
	e := builders.NewDexEmbeds(typechart.MustLoad()).Help("?")

	require.Len(t, e.Fields, 5)
	assert.Equal(t, "?pokemon <name/id>", e.Fields[0].Name)
	assert.Contains(t, e.Fields[0].Value, "`?pokemon eternamax`")
	assert.Equal(t, "?help", e.Fields[4].Name)
	assert.NotEmpty(t, e.Footer.Text)
}

func TestDexButtons(t *testing.T) {
	rows := builders.DexButtons()
	require.Len(t, rows, 1)

	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 3)

	want := []struct {
		label string
		emoji string
		id    string
	}{
		{"Stats", "📊", "dex:stats"},
		{"Abilities", "🧬", "dex:abilities"},
		{"Type Chart", "⚡", "dex:category-breakdown"},
	}
	for i, w := range want {
		btn, ok := row.Components[i].(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, w.label, btn.Label)
		assert.Equal(t, w.emoji, btn.Emoji.Name)
		assert.Equal(t, w.id, btn.CustomID)
		assert.Equal(t, discordgo.SecondaryButton, btn.Style)
		assert.NotEqual(t, core.ButtonUnknown, core.ParseButtonAction(btn.CustomID))
	}
}

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := builders.NewComponentBuilder("dex")
	for i := 0; i < 7; i++ {
		b.Button("b", discordgo.PrimaryButton, "stats")
	}
	rows := b.Build()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 2)
}
