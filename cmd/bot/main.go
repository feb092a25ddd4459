package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/config"
	v2 "github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Command prefix: %s", cfg.Bot.Prefix)
	log.Printf("PokeAPI: %s (timeout %v)", cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout)

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	// Create PokeAPI client
	pokeClient, err := pokeapi.New(&pokeapi.Config{
		HttpClient: &http.Client{
			Timeout: cfg.PokeAPI.Timeout,
		},
		BaseURL: cfg.PokeAPI.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create PokeAPI client: %v", err)
	}

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		PokeAPIClient:     pokeClient,
		MessageContextTTL: cfg.Redis.MessageContextTTL,
		RandomMaxID:       cfg.Bot.RandomMaxID,
	}
	setupConfig := &v2.SetupConfig{
		Prefix:             cfg.Bot.Prefix,
		RateLimitPerMinute: cfg.Bot.RateLimitPerMinute,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory message contexts")
		} else {
			log.Printf("Connecting to Redis at: %s", opts.Addr)
			client := redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := client.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory message contexts")
				_ = client.Close()
			} else {
				log.Println("Successfully connected to Redis")
				redisClient = client
				providerConfig.RedisClient = redisClient
				setupConfig.RateLimitStore = middleware.NewRedisRateLimitStore(redisClient)
				log.Println("Using Redis for message contexts and rate limits")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory message contexts")
	}

	// Create service provider
	serviceProvider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create service provider: %v", err)
	}
	setupConfig.Provider = serviceProvider

	pipeline, err := v2.SetupDexPipeline(setupConfig)
	if err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	bot, err := v2.NewBot(&v2.BotConfig{
		Pipeline:          pipeline,
		Contexts:          serviceProvider.MessageContexts,
		Prefix:            cfg.Bot.Prefix,
		EventTimeout:      cfg.Bot.EventTimeout,
		HeartbeatInterval: cfg.Bot.HeartbeatInterval,
		StatusText:        cfg.Bot.StatusText,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	bot.Register(dg)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	bot.Close()
	if err := dg.Close(); err != nil {
		log.Printf("Failed to close Discord connection: %v", err)
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
