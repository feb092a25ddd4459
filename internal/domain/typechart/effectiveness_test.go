package typechart_test

import (
	"slices"
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowedMultipliers = []float64{0, 0.25, 0.5, 1, 2, 4}

func TestEffectiveness_SingleCategoryMatchesRelations(t *testing.T) {
	chart := typechart.MustLoad()

	for _, defending := range typechart.All {
		t.Run(defending.String(), func(t *testing.T) {
			eff, err := chart.Effectiveness(defending)
			require.NoError(t, err)
			require.Len(t, eff, 18)

			rel, ok := chart.Get(defending)
			require.True(t, ok)

			for _, attacking := range typechart.All {
				want := 1.0
				switch {
				case slices.Contains(rel.Immune, attacking):
					want = 0
				case slices.Contains(rel.Weak, attacking):
					want = 2
				case slices.Contains(rel.Resist, attacking):
					want = 0.5
				}
				assert.Equal(t, want, eff.Against(attacking), "%s attacking %s", attacking, defending)
			}
		})
	}
}

func TestEffectiveness_ImmunityDominatesPairs(t *testing.T) {
	chart := typechart.MustLoad()

	for _, a := range typechart.All {
		for _, b := range typechart.All {
			eff, err := chart.Effectiveness(a, b)
			require.NoError(t, err)

			relA, _ := chart.Get(a)
			relB, _ := chart.Get(b)
			for _, attacking := range typechart.All {
				if slices.Contains(relA.Immune, attacking) || slices.Contains(relB.Immune, attacking) {
					assert.Zero(t, eff[attacking], "%s attacking %s/%s", attacking, a, b)
				}
			}
		}
	}
}

func TestEffectiveness_Commutative(t *testing.T) {
	chart := typechart.MustLoad()

	for _, a := range typechart.All {
		for _, b := range typechart.All {
			ab, err := chart.Effectiveness(a, b)
			require.NoError(t, err)
			ba, err := chart.Effectiveness(b, a)
			require.NoError(t, err)

			assert.Equal(t, ab, ba, "%s/%s", a, b)
		}
	}
}

func TestEffectiveness_ValuesStayInAllowedSet(t *testing.T) {
	chart := typechart.MustLoad()

	for _, a := range typechart.All {
		for _, b := range typechart.All {
			eff, err := chart.Effectiveness(a, b)
			require.NoError(t, err)
			require.Len(t, eff, 18)

			for attacking, m := range eff {
				assert.Contains(t, allowedMultipliers, m, "%s attacking %s/%s", attacking, a, b)
			}
		}
	}
}

func TestEffectiveness_Scenarios(t *testing.T) {
	chart := typechart.MustLoad()

	testCases := []struct {
		name      string
		defending []typechart.Category
		attacking typechart.Category
		want      float64
	}{
		{name: "water on fire", defending: []typechart.Category{typechart.Fire}, attacking: typechart.Water, want: 2},
		{name: "fire on fire", defending: []typechart.Category{typechart.Fire}, attacking: typechart.Fire, want: 0.5},
		{name: "electric on fire", defending: []typechart.Category{typechart.Fire}, attacking: typechart.Electric, want: 1},
		{name: "fighting on ghost/normal", defending: []typechart.Category{typechart.Ghost, typechart.Normal}, attacking: typechart.Fighting, want: 0},
		{name: "fighting on normal/ghost", defending: []typechart.Category{typechart.Normal, typechart.Ghost}, attacking: typechart.Fighting, want: 0},
		{name: "ice on grass/flying", defending: []typechart.Category{typechart.Grass, typechart.Flying}, attacking: typechart.Ice, want: 4},
		{name: "rock on fire/flying", defending: []typechart.Category{typechart.Fire, typechart.Flying}, attacking: typechart.Rock, want: 4},
		{name: "grass on fire/dragon", defending: []typechart.Category{typechart.Fire, typechart.Dragon}, attacking: typechart.Grass, want: 0.25},
		{name: "ground on electric/flying", defending: []typechart.Category{typechart.Electric, typechart.Flying}, attacking: typechart.Ground, want: 0},
		{name: "water on water/ground", defending: []typechart.Category{typechart.Water, typechart.Ground}, attacking: typechart.Water, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eff, err := chart.Effectiveness(tc.defending...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, eff[tc.attacking])
		})
	}
}

func TestEffectiveness_FireScenarioSets(t *testing.T) {
	chart := typechart.MustLoad()

	eff, err := chart.Effectiveness(typechart.Fire)
	require.NoError(t, err)

	breakdown := eff.Breakdown()
	assert.Equal(t, []typechart.Category{typechart.Water, typechart.Ground, typechart.Rock}, breakdown.Double)
	assert.Equal(t, []typechart.Category{
		typechart.Fire, typechart.Grass, typechart.Ice, typechart.Bug, typechart.Steel, typechart.Fairy,
	}, breakdown.Half)
	assert.Empty(t, breakdown.Immune)
	assert.Empty(t, breakdown.Quadruple)
	assert.Empty(t, breakdown.Quarter)
}

func TestEffectiveness_InvalidInput(t *testing.T) {
	chart := typechart.MustLoad()

	_, err := chart.Effectiveness()
	assert.True(t, dexerr.IsInvalidArgument(err))

	_, err = chart.Effectiveness(typechart.Fire, typechart.Water, typechart.Grass)
	assert.True(t, dexerr.IsInvalidArgument(err))

	_, err = chart.Effectiveness(typechart.Category("shadow"))
	assert.True(t, dexerr.IsNotFound(err))
}

func TestEffectivenessFor(t *testing.T) {
	chart := typechart.MustLoad()

	eff, err := chart.EffectivenessFor([]string{"Ghost", "normal"})
	require.NoError(t, err)
	assert.Zero(t, eff[typechart.Fighting])
	assert.Zero(t, eff[typechart.Normal])
	assert.Equal(t, 2.0, eff[typechart.Dark])

	_, err = chart.EffectivenessFor([]string{"stellar"})
	assert.True(t, dexerr.IsNotFound(err))
}

func TestBreakdown_DualType(t *testing.T) {
	chart := typechart.MustLoad()

	// charizard
	eff, err := chart.Effectiveness(typechart.Fire, typechart.Flying)
	require.NoError(t, err)

	b := eff.Breakdown()
	assert.Equal(t, []typechart.Category{typechart.Rock}, b.Quadruple)
	assert.Equal(t, []typechart.Category{typechart.Water, typechart.Electric}, b.Double)
	assert.Equal(t, []typechart.Category{typechart.Grass, typechart.Bug}, b.Quarter)
	assert.Equal(t, []typechart.Category{typechart.Ground}, b.Immune)
	assert.Equal(t, []typechart.Category{typechart.Fire, typechart.Fighting, typechart.Steel, typechart.Fairy}, b.Half)
}
