package config

import (
	"time"

	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	PokeAPI PokeAPIConfig
	Redis   RedisConfig
	Bot     BotConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token string `envconfig:"DISCORD_BOT_TOKEN"`
}

// PokeAPIConfig holds the reference data provider configuration
type PokeAPIConfig struct {
	BaseURL string        `envconfig:"POKEAPI_URL" default:"https://pokeapi.co/api/v2"`
	Timeout time.Duration `envconfig:"POKEAPI_TIMEOUT" default:"10s"`
}

// RedisConfig holds Redis-specific configuration. Redis is optional; without a
// URL message contexts stay in memory.
type RedisConfig struct {
	URL               string        `envconfig:"REDIS_URL"`
	MessageContextTTL time.Duration `envconfig:"MESSAGE_CONTEXT_TTL" default:"24h"`
}

// BotConfig holds command handling configuration
type BotConfig struct {
	Prefix             string        `envconfig:"COMMAND_PREFIX" default:"!"`
	EventTimeout       time.Duration `envconfig:"EVENT_TIMEOUT" default:"15s"`
	RandomMaxID        int           `envconfig:"RANDOM_MAX_ID" default:"1010"`
	HeartbeatInterval  time.Duration `envconfig:"HEARTBEAT_INTERVAL" default:"5m"`
	StatusText         string        `envconfig:"STATUS_TEXT" default:"!help for commands"`
	RateLimitPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"` // 0 disables
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	sections := []any{&cfg.Discord, &cfg.PokeAPI, &cfg.Redis, &cfg.Bot}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, dexerr.WrapWithCode(err, dexerr.CodeInvalidArgument, "reading environment")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and value ranges
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return dexerr.InvalidArgument("DISCORD_BOT_TOKEN is required; set it in the environment or a .env file")
	}
	if c.Bot.Prefix == "" {
		return dexerr.InvalidArgument("COMMAND_PREFIX cannot be empty")
	}
	if c.PokeAPI.Timeout <= 0 {
		return dexerr.InvalidArgumentf("POKEAPI_TIMEOUT must be positive, got %s", c.PokeAPI.Timeout)
	}
	if c.Bot.EventTimeout <= 0 {
		return dexerr.InvalidArgumentf("EVENT_TIMEOUT must be positive, got %s", c.Bot.EventTimeout)
	}
	if c.Bot.HeartbeatInterval <= 0 {
		return dexerr.InvalidArgumentf("HEARTBEAT_INTERVAL must be positive, got %s", c.Bot.HeartbeatInterval)
	}
	if c.Bot.RandomMaxID < 1 {
		return dexerr.InvalidArgumentf("RANDOM_MAX_ID must be at least 1, got %d", c.Bot.RandomMaxID)
	}
	if c.Bot.RateLimitPerMinute < 0 {
		return dexerr.InvalidArgumentf("RATE_LIMIT_PER_MINUTE cannot be negative, got %d", c.Bot.RateLimitPerMinute)
	}
	return nil
}
