package messagecontexts_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInMemoryRepository_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := messagecontexts.NewInMemoryRepository(nil)

	mc := &entities.MessageContext{
		MessageID: "msg-1",
		ChannelID: "chan-1",
		Creature:  &entities.Creature{ID: 25, Name: "pikachu"},
	}
	require.NoError(t, repo.Save(ctx, mc))
	assert.False(t, mc.CreatedAt.IsZero())

	got, err := repo.Get(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", got.Creature.Name)

	// returned value is a copy
	got.ChannelID = "changed"
	again, err := repo.Get(ctx, "msg-1")
	require.NoError(t, err)
	assert.Equal(t, "chan-1", again.ChannelID)

	require.NoError(t, repo.Delete(ctx, "msg-1"))
	_, err = repo.Get(ctx, "msg-1")
	assert.True(t, dexerr.IsMissingContext(err))

	// deleting twice is fine
	assert.NoError(t, repo.Delete(ctx, "msg-1"))
}

func TestInMemoryRepository_Validation(t *testing.T) {
	repo := messagecontexts.NewInMemoryRepository(nil)

	assert.Error(t, repo.Save(context.Background(), nil))
	assert.Error(t, repo.Save(context.Background(), &entities.MessageContext{}))
}

func TestInMemoryRepository_TTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockTimeProvider(ctrl)

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := messagecontexts.NewInMemoryRepository(&messagecontexts.InMemoryConfig{
		TTL:          time.Hour,
		TimeProvider: clock,
	})

	clock.EXPECT().Now().Return(start)
	require.NoError(t, repo.Save(context.Background(), &entities.MessageContext{MessageID: "msg-1"}))

	clock.EXPECT().Now().Return(start.Add(59 * time.Minute))
	_, err := repo.Get(context.Background(), "msg-1")
	require.NoError(t, err)

	clock.EXPECT().Now().Return(start.Add(time.Hour))
	_, err = repo.Get(context.Background(), "msg-1")
	assert.True(t, dexerr.IsMissingContext(err))

	// expired entries are dropped, so no clock read happens here
	_, err = repo.Get(context.Background(), "msg-1")
	assert.True(t, dexerr.IsMissingContext(err))
}
