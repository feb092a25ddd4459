package messagecontexts

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	contexts     map[string]*entities.MessageContext
	ttl          time.Duration
	timeProvider TimeProvider
}

// InMemoryConfig holds configuration for the in-memory repository
type InMemoryConfig struct {
	TTL          time.Duration // zero keeps entries for the life of the process
	TimeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory message context repository
func NewInMemoryRepository(cfg *InMemoryConfig) Repository {
	r := &inMemoryRepository{
		contexts:     make(map[string]*entities.MessageContext),
		timeProvider: NewTimeProvider(),
	}
	if cfg != nil {
		r.ttl = cfg.TTL
		if cfg.TimeProvider != nil {
			r.timeProvider = cfg.TimeProvider
		}
	}
	return r
}

// Save stores or replaces the context for a message
func (r *inMemoryRepository) Save(ctx context.Context, mc *entities.MessageContext) error {
	if mc == nil {
		return dexerr.InvalidArgument("message context cannot be nil")
	}
	if mc.MessageID == "" {
		return dexerr.InvalidArgument("message ID cannot be empty")
	}

	if mc.CreatedAt.IsZero() {
		mc.CreatedAt = r.timeProvider.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// copy to avoid external modifications
	mcCopy := *mc
	r.contexts[mc.MessageID] = &mcCopy

	return nil
}

// Get retrieves the context for a message
func (r *inMemoryRepository) Get(ctx context.Context, messageID string) (*entities.MessageContext, error) {
	r.mu.RLock()
	mc, exists := r.contexts[messageID]
	r.mu.RUnlock()

	if !exists {
		return nil, dexerr.MissingContextf("no context for message %s", messageID).WithMeta("message_id", messageID)
	}

	if r.expired(mc) {
		r.mu.Lock()
		// only drop it if nobody replaced it meanwhile
		if current, ok := r.contexts[messageID]; ok && current == mc {
			delete(r.contexts, messageID)
		}
		r.mu.Unlock()
		return nil, dexerr.MissingContextf("context for message %s expired", messageID).WithMeta("message_id", messageID)
	}

	mcCopy := *mc
	return &mcCopy, nil
}

// Delete removes the context for a message. Deleting a missing message is not an error.
func (r *inMemoryRepository) Delete(ctx context.Context, messageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.contexts, messageID)
	return nil
}

func (r *inMemoryRepository) expired(mc *entities.MessageContext) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.timeProvider.Now().Sub(mc.CreatedAt) >= r.ttl
}
