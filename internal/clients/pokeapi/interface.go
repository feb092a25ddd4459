package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockpokeapi . Client

import (
	"context"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

// Client reads reference data from PokeAPI. A missing resource is reported as
// errors.CodeNotFound, anything else that goes wrong as errors.CodeUnavailable.
type Client interface {
	// GetPokemon fetches /pokemon/{nameOrID}. The species is not fetched; use
	// SpeciesURL with GetSpecies.
	GetPokemon(ctx context.Context, nameOrID string) (*entities.Creature, error)

	// GetSpecies fetches a species record by the absolute URL the pokemon record links to
	GetSpecies(ctx context.Context, url string) (*entities.Species, error)

	// GetType fetches /type/{name}
	GetType(ctx context.Context, name string) (*entities.CategoryInfo, error)
}
