package messagecontexts

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmessagecontexts -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
)

// Repository remembers which creature a bot message showed. Get returns an
// errors.CodeMissingContext error when nothing is stored for the message.
type Repository interface {
	Save(ctx context.Context, mc *entities.MessageContext) error
	Get(ctx context.Context, messageID string) (*entities.MessageContext, error)
	Delete(ctx context.Context, messageID string) error
}
