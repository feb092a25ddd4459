package names_test

import (
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{input: "Pikachu", want: "pikachu"},
		{input: "  Mega   Charizard\tX ", want: "mega-charizard-x"},
		{input: "25", want: "25"},
		{input: "", want: ""},
		{input: "mr-mime", want: "mr-mime"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, names.Normalize(tc.input))
		})
	}
}

func TestCanonicalize(t *testing.T) {
	r := names.MustLoad()

	testCases := []struct {
		input string
		want  string
	}{
		{input: "Mega Charizard X", want: "charizard-mega-x"},
		{input: "eternamax", want: "eternatus-eternamax"},
		{input: "Eternatus Eternamax", want: "eternatus-eternamax"},
		{input: "alolan raichu", want: "raichu-alola"},
		{input: "Paldean Tauros", want: "tauros-paldea-combat"},
		{input: "PIKACHU", want: "pikachu"},
		{input: "150", want: "150"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Canonicalize(tc.input))
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	r := names.MustLoad()

	inputs := []string{
		"Mega Charizard Y", "primal kyogre", "origin-giratina", "sky shaymin",
		"gmax pikachu", "galarian rapidash", "hisuian decidueye", "bulbasaur", "  Mr  Mime ",
		"charizard-mega-x", "eternatus-eternamax",
	}
	for _, in := range inputs {
		once := r.Canonicalize(in)
		assert.Equal(t, once, r.Canonicalize(once), in)
	}
}

func TestNew_RejectsChainedAliases(t *testing.T) {
	_, err := names.New(map[string]string{
		"a": "b",
		"b": "c",
	})
	require.Error(t, err)
	assert.True(t, dexerr.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "not idempotent")
}

func TestNew_AllowsSelfMappedTarget(t *testing.T) {
	r, err := names.New(map[string]string{
		"eternamax":           "eternatus-eternamax",
		"eternatus-eternamax": "eternatus-eternamax",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestNew_RejectsUnnormalizedEntries(t *testing.T) {
	_, err := names.New(map[string]string{"Mega Charizard": "charizard-mega-x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not normalized")

	_, err = names.New(map[string]string{"mega-charizard": "Charizard Mega"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not normalized")
}

func TestParse_Malformed(t *testing.T) {
	_, err := names.Parse([]byte("aliases: [oops"))
	require.Error(t, err)
}

func TestAlias(t *testing.T) {
	r := names.MustLoad()

	assert.Equal(t, "kyogre-primal", r.Alias("primal-kyogre"))
	assert.Equal(t, "Primal Kyogre", r.Alias("Primal Kyogre"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "Charizard Mega X", names.Display("charizard-mega-x"))
	assert.Equal(t, "Pikachu", names.Display("pikachu"))
	assert.Equal(t, "Special Attack", names.Display("special-attack"))
}
