package v2

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/uuid"
)

// SetupConfig holds what the dex pipeline needs
type SetupConfig struct {
	Provider *services.Provider // Required
	Prefix   string             // defaults to core.DefaultPrefix

	// RateLimitPerMinute caps commands per user, 0 disables
	RateLimitPerMinute int
	// RateLimitStore defaults to an in-memory store
	RateLimitStore middleware.RateLimitStore

	// UUIDGenerator stamps request IDs, defaults to short random IDs
	UUIDGenerator uuid.Generator
}

// SetupDexPipeline builds the pipeline answering every dex command and button
func SetupDexPipeline(cfg *SetupConfig) (*core.Pipeline, error) {
	if cfg == nil || cfg.Provider == nil {
		return nil, fmt.Errorf("service provider is required")
	}

	handler, err := handlers.NewDexHandler(&handlers.DexHandlerConfig{
		Service:  cfg.Provider.PokedexService,
		Contexts: cfg.Provider.MessageContexts,
		Embeds:   builders.NewDexEmbeds(cfg.Provider.Chart),
		Prefix:   cfg.Prefix,
	})
	if err != nil {
		return nil, err
	}

	pipeline := core.NewPipeline()

	// Apply global middleware, outermost first
	pipeline.Use(
		middleware.RecoveryMiddleware(),
		middleware.RequestIDMiddleware(cfg.UUIDGenerator),
		middleware.LoggingMiddleware(nil),
		middleware.ErrorMiddleware(nil),
	)

	var routeMiddleware []core.Middleware
	if cfg.RateLimitPerMinute > 0 {
		store := cfg.RateLimitStore
		if store == nil {
			store = middleware.NewMemoryRateLimitStore()
		}
		routeMiddleware = append(routeMiddleware,
			middleware.UserRateLimitMiddleware(cfg.RateLimitPerMinute, time.Minute, store))
	}

	if _, err := routers.NewDexRouter(pipeline, handler, routeMiddleware...); err != nil {
		return nil, err
	}

	return pipeline, nil
}
