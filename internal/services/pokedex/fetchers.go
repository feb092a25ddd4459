package pokedex

import (
	"context"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/cache"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

// NewCreatureFetcher loads a pokemon record and then its species, merged into one creature
func NewCreatureFetcher(client pokeapi.Client) cache.Fetcher[*entities.Creature] {
	return cache.FetcherFunc[*entities.Creature](func(ctx context.Context, key string) (*entities.Creature, error) {
		creature, err := client.GetPokemon(ctx, key)
		if err != nil {
			return nil, err
		}

		if creature.SpeciesURL != "" {
			species, err := client.GetSpecies(ctx, creature.SpeciesURL)
			if err != nil {
				return nil, err
			}
			creature.Species = species
		}

		return creature, nil
	})
}

// NewCategoryFetcher loads a type record
func NewCategoryFetcher(client pokeapi.Client) cache.Fetcher[*entities.CategoryInfo] {
	return cache.FetcherFunc[*entities.CategoryInfo](client.GetType)
}
