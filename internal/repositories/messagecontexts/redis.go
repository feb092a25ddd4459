package messagecontexts

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a message keeps answering its buttons
const DefaultTTL = 24 * time.Hour

// KeyPrefix starts every message context key
const KeyPrefix = "msgctx:"

type Data struct {
	MessageID string             `json:"message_id"`
	ChannelID string             `json:"channel_id"`
	UserID    string             `json:"user_id"`
	Creature  *entities.Creature `json:"creature"`
	CreatedAt time.Time          `json:"created_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	ttl          time.Duration
	timeProvider TimeProvider
}

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client       redis.UniversalClient // Required
	TTL          time.Duration         // defaults to DefaultTTL
	TimeProvider TimeProvider          // defaults to the wall clock
}

// NewRedis creates a Redis backed message context repository
func NewRedis(cfg *RedisConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	r := &redisRepo{
		client:       cfg.Client,
		ttl:          cfg.TTL,
		timeProvider: cfg.TimeProvider,
	}
	if r.ttl <= 0 {
		r.ttl = DefaultTTL
	}
	if r.timeProvider == nil {
		r.timeProvider = NewTimeProvider()
	}
	return r
}

func contextKey(messageID string) string {
	return KeyPrefix + messageID
}

func (r *redisRepo) Save(ctx context.Context, mc *entities.MessageContext) error {
	if mc == nil {
		return dexerr.InvalidArgument("message context cannot be nil")
	}
	if mc.MessageID == "" {
		return dexerr.InvalidArgument("message ID cannot be empty")
	}

	if mc.CreatedAt.IsZero() {
		mc.CreatedAt = r.timeProvider.Now()
	}

	jsonData, err := json.Marshal(toData(mc))
	if err != nil {
		return dexerr.Wrap(err, "failed to marshal message context")
	}

	if err := r.client.Set(ctx, contextKey(mc.MessageID), string(jsonData), r.ttl).Err(); err != nil {
		return dexerr.WrapWithCode(err, dexerr.CodeUnavailable, "failed to save message context in Redis")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, messageID string) (*entities.MessageContext, error) {
	jsonData, err := r.client.Get(ctx, contextKey(messageID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, dexerr.MissingContextf("no context for message %s", messageID).WithMeta("message_id", messageID)
		}
		return nil, dexerr.WrapWithCode(err, dexerr.CodeUnavailable, "failed to get message context from Redis")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, dexerr.WrapWithCode(err, dexerr.CodeInternal, "failed to unmarshal message context")
	}

	return fromData(&data), nil
}

func (r *redisRepo) Delete(ctx context.Context, messageID string) error {
	if err := r.client.Del(ctx, contextKey(messageID)).Err(); err != nil {
		return dexerr.WrapWithCode(err, dexerr.CodeUnavailable, "failed to delete message context from Redis")
	}

	return nil
}

func toData(mc *entities.MessageContext) *Data {
	return &Data{
		MessageID: mc.MessageID,
		ChannelID: mc.ChannelID,
		UserID:    mc.UserID,
		Creature:  mc.Creature,
		CreatedAt: mc.CreatedAt,
	}
}

func fromData(data *Data) *entities.MessageContext {
	return &entities.MessageContext{
		MessageID: data.MessageID,
		ChannelID: data.ChannelID,
		UserID:    data.UserID,
		Creature:  data.Creature,
		CreatedAt: data.CreatedAt,
	}
}
