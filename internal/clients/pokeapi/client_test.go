package pokeapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
	mockpokeapi "github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "types": [{"slot": 1, "type": {"name": "electric", "url": "x"}}],
  "abilities": [
    {"ability": {"name": "static"}, "is_hidden": false, "slot": 1},
    {"ability": {"name": "lightning-rod"}, "is_hidden": true, "slot": 3}
  ],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 55, "stat": {"name": "attack"}},
    {"base_stat": 40, "stat": {"name": "defense"}},
    {"base_stat": 50, "stat": {"name": "special-attack"}},
    {"base_stat": 50, "stat": {"name": "special-defense"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "species": {"name": "pikachu", "url": "%s/pokemon-species/25/"},
  "sprites": {
    "front_default": "https://img/front/25.png",
    "other": {"official-artwork": {"front_default": "https://img/artwork/25.png"}}
  }
}`

const charizardTypesJSON = `{
  "id": 6,
  "name": "charizard",
  "types": [
    {"slot": 2, "type": {"name": "flying"}},
    {"slot": 1, "type": {"name": "fire"}}
  ],
  "sprites": {"front_default": "https://img/front/6.png", "other": {"official-artwork": {"front_default": null}}}
}`

const pikachuSpeciesJSON = `{
  "name": "pikachu",
  "is_legendary": false,
  "is_mythical": false,
  "generation": {"name": "generation-i"},
  "evolves_from_species": {"name": "pichu"},
  "genera": [
    {"genus": "ねずみポケモン", "language": {"name": "ja"}},
    {"genus": "Mouse Pokémon", "language": {"name": "en"}}
  ],
  "flavor_text_entries": [
    {"flavor_text": "ほっぺたの", "language": {"name": "ja"}},
    {"flavor_text": "When several of\fthese POKéMON gather", "language": {"name": "en"}},
    {"flavor_text": "second english entry", "language": {"name": "en"}}
  ]
}`

const fireTypeJSON = `{
  "id": 10,
  "name": "fire",
  "damage_relations": {
    "double_damage_to": [{"name": "grass"}, {"name": "ice"}, {"name": "bug"}, {"name": "steel"}],
    "half_damage_to": [{"name": "fire"}, {"name": "water"}, {"name": "rock"}, {"name": "dragon"}],
    "no_damage_to": [],
    "double_damage_from": [{"name": "ground"}, {"name": "rock"}, {"name": "water"}],
    "half_damage_from": [{"name": "bug"}],
    "no_damage_from": []
  },
  "moves": [{"name": "ember"}, {"name": "flamethrower"}],
  "pokemon": [{"slot": 1, "pokemon": {"name": "charmander"}}]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/pokemon/pikachu", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, pikachuJSON, srv.URL)
	})
	mux.HandleFunc("/pokemon/charizard", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, charizardTypesJSON)
	})
	mux.HandleFunc("/pokemon-species/25/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pikachuSpeciesJSON)
	})
	mux.HandleFunc("/type/fire", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fireTypeJSON)
	})
	mux.HandleFunc("/pokemon/broken", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "not a number"`)
	})
	mux.HandleFunc("/pokemon/overloaded", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "try later", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/pokemon/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) pokeapi.Client {
	t.Helper()
	c, err := pokeapi.New(&pokeapi.Config{
		HttpClient: srv.Client(),
		BaseURL:    srv.URL + "/",
	})
	require.NoError(t, err)
	return c
}

func TestClient_GetPokemon(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	creature, err := c.GetPokemon(context.Background(), "pikachu")
	require.NoError(t, err)

	assert.Equal(t, 25, creature.ID)
	assert.Equal(t, "pikachu", creature.Name)
	assert.Equal(t, []string{"electric"}, creature.Types)
	assert.Equal(t, 4, creature.Height)
	assert.Equal(t, 60, creature.Weight)
	assert.Equal(t, "https://img/artwork/25.png", creature.SpriteURL)
	assert.Equal(t, srv.URL+"/pokemon-species/25/", creature.SpeciesURL)
	require.Len(t, creature.Abilities, 2)
	assert.Equal(t, entities.Ability{Name: "lightning-rod", IsHidden: true, Slot: 3}, creature.Abilities[1])
	require.Len(t, creature.Stats, 6)
	assert.Equal(t, entities.Stat{Name: entities.StatSpeed, Base: 90}, creature.Stats[5])
	assert.Nil(t, creature.Species)
}

func TestClient_GetPokemon_OrdersTypesBySlotAndFallsBackToSprite(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	creature, err := c.GetPokemon(context.Background(), "charizard")
	require.NoError(t, err)

	assert.Equal(t, []string{"fire", "flying"}, creature.Types)
	assert.Equal(t, "https://img/front/6.png", creature.SpriteURL)
}

func TestClient_GetPokemon_Errors(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	testCases := []struct {
		name     string
		query    string
		wantCode dexerr.Code
	}{
		{name: "missing", query: "missingno", wantCode: dexerr.CodeNotFound},
		{name: "server error", query: "overloaded", wantCode: dexerr.CodeUnavailable},
		{name: "malformed payload", query: "broken", wantCode: dexerr.CodeUnavailable},
		{name: "empty query", query: "", wantCode: dexerr.CodeInvalidArgument},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creature, err := c.GetPokemon(context.Background(), tc.query)
			require.Error(t, err)
			assert.Nil(t, creature)
			assert.Equal(t, tc.wantCode, dexerr.GetCode(err))
		})
	}
}

func TestClient_GetPokemon_ContextDeadline(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.GetPokemon(ctx, "slow")
	require.Error(t, err)
	assert.True(t, dexerr.IsUnavailable(err))
}

func TestClient_GetSpecies(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	species, err := c.GetSpecies(context.Background(), srv.URL+"/pokemon-species/25/")
	require.NoError(t, err)

	assert.Equal(t, &entities.Species{
		Name:        "pikachu",
		Genus:       "Mouse Pokémon",
		FlavorText:  "When several of these POKéMON gather",
		Generation:  "generation-i",
		EvolvesFrom: "pichu",
	}, species)
}

func TestClient_GetType(t *testing.T) {
	srv := newTestServer(t)
	c := newClient(t, srv)

	info, err := c.GetType(context.Background(), "Fire")
	require.NoError(t, err)

	assert.Equal(t, "fire", info.Name)
	assert.Equal(t, []string{"grass", "ice", "bug", "steel"}, info.DamageRelations.DoubleDamageTo)
	assert.Empty(t, info.DamageRelations.NoDamageTo)
	assert.Equal(t, 2, info.MoveCount)
	assert.Equal(t, 1, info.PokemonCount)

	_, err = c.GetType(context.Background(), "shadow")
	assert.True(t, dexerr.IsNotFound(err))
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := pokeapi.New(nil)
	require.Error(t, err)

	_, err = pokeapi.New(&pokeapi.Config{})
	require.Error(t, err)
}

func TestClient_ImplementsInterface(t *testing.T) {
	ctrl := gomock.NewController(t)

	var _ pokeapi.Client = mockpokeapi.NewMockClient(ctrl)
}
