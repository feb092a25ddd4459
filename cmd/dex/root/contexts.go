package root

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts"
)

func newContextsCmd() *cobra.Command {
	var redisURL string

	cmd := &cobra.Command{
		Use:   "contexts",
		Short: "List the message contexts the bot keeps in Redis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(commandContext(cmd), 30*time.Second)
			defer cancel()

			opts, err := redis.ParseURL(redisURL)
			if err != nil {
				return fmt.Errorf("failed to parse Redis URL: %w", err)
			}

			client := redis.NewClient(opts)
			defer client.Close()

			if err := client.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}

			return listContexts(ctx, cmd, client)
		},
	}

	defaultURL := os.Getenv("REDIS_URL")
	if defaultURL == "" {
		defaultURL = "redis://localhost:6379/0"
	}
	cmd.Flags().StringVar(&redisURL, "redis", defaultURL, "Redis URL")

	return cmd
}

func listContexts(ctx context.Context, cmd *cobra.Command, client redis.UniversalClient) error {
	out := cmd.OutOrStdout()

	var keys []string
	iter := client.Scan(ctx, 0, messagecontexts.KeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan message contexts: %w", err)
	}

	fmt.Fprintln(out, Heading(IconDex, fmt.Sprintf("Found %d message contexts", len(keys))))
	for _, key := range keys {
		raw, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Fprintf(out, "  %s: %s\n", key, Bad.Render("ERROR - "+err.Error()))
			continue
		}

		var data messagecontexts.Data
		if err := json.Unmarshal(raw, &data); err != nil {
			fmt.Fprintf(out, "  %s: %s\n", key, Bad.Render("unreadable - "+err.Error()))
			continue
		}

		creature := "?"
		if data.Creature != nil {
			creature = names.Display(data.Creature.Name)
		}

		ttl, _ := client.TTL(ctx, key).Result()
		fmt.Fprintf(out, "  %s %s %s\n", Key.Render(data.MessageID), creature,
			Muted.Render(fmt.Sprintf("(channel %s, expires in %v)", data.ChannelID, ttl.Round(time.Second))))
	}

	return nil
}
