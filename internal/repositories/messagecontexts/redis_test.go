package messagecontexts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/repositories/messagecontexts/mocks"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedis(&RedisConfig{
		Client:       s.mockClient,
		TTL:          time.Hour,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testContext(now time.Time) *entities.MessageContext {
	return &entities.MessageContext{
		MessageID: "msg-1",
		ChannelID: "chan-1",
		UserID:    "user-1",
		Creature: &entities.Creature{
			ID:    25,
			Name:  "pikachu",
			Types: []string{"electric"},
			Stats: []entities.Stat{{Name: entities.StatSpeed, Base: 90}},
		},
		CreatedAt: now,
	}
}

func (s *RedisRepoTestSuite) TestSave() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	mc := testContext(now)

	expectedData, err := json.Marshal(toData(mc))
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectSet("msgctx:msg-1", string(expectedData), time.Hour).SetVal("OK")

	err = s.repo.Save(ctx, mc)
	s.NoError(err)

	// Dependency error
	s.mock.ExpectSet("msgctx:msg-1", string(expectedData), time.Hour).SetErr(errors.New("redis error"))

	err = s.repo.Save(ctx, mc)
	s.Error(err)
	s.True(dexerr.IsUnavailable(err))

	// Input validation
	s.Error(s.repo.Save(ctx, nil))
	s.Error(s.repo.Save(ctx, &entities.MessageContext{}))
}

func (s *RedisRepoTestSuite) TestSave_StampsCreatedAt() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	mc := testContext(time.Time{})
	expected := testContext(now)
	expectedData, err := json.Marshal(toData(expected))
	s.Require().NoError(err)

	s.mock.ExpectSet("msgctx:msg-1", string(expectedData), time.Hour).SetVal("OK")

	s.NoError(s.repo.Save(ctx, mc))
	s.Equal(now, mc.CreatedAt)
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	mc := testContext(now)

	jsonData, err := json.Marshal(toData(mc))
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("msgctx:msg-1").SetVal(string(jsonData))

	got, err := s.repo.Get(ctx, "msg-1")
	s.Require().NoError(err)
	s.Equal(mc, got)

	// Missing
	s.mock.ExpectGet("msgctx:msg-2").RedisNil()

	_, err = s.repo.Get(ctx, "msg-2")
	s.Error(err)
	s.True(dexerr.IsMissingContext(err))

	// Dependency error
	s.mock.ExpectGet("msgctx:msg-3").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "msg-3")
	s.Error(err)
	s.True(dexerr.IsUnavailable(err))

	// Corrupt payload
	s.mock.ExpectGet("msgctx:msg-4").SetVal("{not json")

	_, err = s.repo.Get(ctx, "msg-4")
	s.Error(err)
	s.True(dexerr.IsInternal(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("msgctx:msg-1").SetVal(1)
	s.NoError(s.repo.Delete(ctx, "msg-1"))

	s.mock.ExpectDel("msgctx:msg-2").SetErr(errors.New("redis error"))
	s.Error(s.repo.Delete(ctx, "msg-2"))
}
