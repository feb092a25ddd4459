package services

import (
	"time"

	internal "github.com/KirkDiggler/pokedex-bot-discord/internal"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/cache"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/dice"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
	"github.com/redis/go-redis/v9"
)

// Provider holds all service instances
type Provider struct {
	PokedexService  pokedex.Service
	MessageContexts messagecontexts.Repository
	Chart           *typechart.Chart
	Names           *names.Resolver
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PokeAPIClient pokeapi.Client // Required

	// RedisClient switches message contexts to Redis. Optional.
	RedisClient       redis.UniversalClient
	MessageContextTTL time.Duration

	// Optional overrides
	Chart       *typechart.Chart
	Names       *names.Resolver
	Roller      dice.Roller
	RandomMaxID int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil || cfg.PokeAPIClient == nil {
		return nil, internal.NewMissingParamError("cfg.PokeAPIClient")
	}

	chart := cfg.Chart
	if chart == nil {
		chart = typechart.MustLoad()
	}
	resolver := cfg.Names
	if resolver == nil {
		resolver = names.MustLoad()
	}

	creatures, err := cache.New(&cache.Config[*entities.Creature]{
		Name:    "pokemon",
		Fetcher: pokedex.NewCreatureFetcher(cfg.PokeAPIClient),
		Alias:   resolver.Alias,
	})
	if err != nil {
		return nil, err
	}

	categories, err := cache.New(&cache.Config[*entities.CategoryInfo]{
		Name:    "type",
		Fetcher: pokedex.NewCategoryFetcher(cfg.PokeAPIClient),
	})
	if err != nil {
		return nil, err
	}

	// Use in-memory repository if no Redis client is provided
	var contexts messagecontexts.Repository
	if cfg.RedisClient != nil {
		contexts = messagecontexts.NewRedis(&messagecontexts.RedisConfig{
			Client: cfg.RedisClient,
			TTL:    cfg.MessageContextTTL,
		})
	} else {
		contexts = messagecontexts.NewInMemoryRepository(&messagecontexts.InMemoryConfig{
			TTL: cfg.MessageContextTTL,
		})
	}

	return &Provider{
		PokedexService: pokedex.NewService(&pokedex.ServiceConfig{
			Creatures:   creatures,
			Categories:  categories,
			Chart:       chart,
			Names:       resolver,
			Roller:      cfg.Roller,
			RandomMaxID: cfg.RandomMaxID,
		}),
		MessageContexts: contexts,
		Chart:           chart,
		Names:           resolver,
	}, nil
}
