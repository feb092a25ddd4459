package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=mockpokedex -source=service.go

import (
	"context"
	"log"
	"strconv"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/cache"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/dice"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/stats"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultRandomMaxID is the highest national dex number picked by RandomCreature
const DefaultRandomMaxID = 1010

// Service answers creature and category questions
type Service interface {
	// GetCreature resolves a name, alias or dex number to a creature with its species
	GetCreature(ctx context.Context, query string) (*entities.Creature, error)

	// RandomCreature picks a dex number between 1 and the configured maximum
	RandomCreature(ctx context.Context) (*entities.Creature, error)

	// Compare resolves both creatures concurrently and compares their base stats
	Compare(ctx context.Context, first, second string) (*Comparison, error)

	// GetCategory fetches the provider's record for a type
	GetCategory(ctx context.Context, name string) (*entities.CategoryInfo, error)

	// Effectiveness computes how every attacking type fares against the creature
	Effectiveness(creature *entities.Creature) (typechart.Effectiveness, error)

	// Canonicalize shows which provider identifier a query resolves to
	Canonicalize(query string) string
}

// Comparison is a head to head of two creatures
type Comparison struct {
	First       *entities.Creature
	Second      *entities.Creature
	Rows        []stats.StatComparison
	FirstTotal  int
	SecondTotal int
	Winner      stats.Winner
}

type service struct {
	creatures   *cache.Cache[*entities.Creature]
	categories  *cache.Cache[*entities.CategoryInfo]
	chart       *typechart.Chart
	names       *names.Resolver
	roller      dice.Roller
	randomMaxID int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Creatures   *cache.Cache[*entities.Creature]     // Required
	Categories  *cache.Cache[*entities.CategoryInfo] // Required
	Chart       *typechart.Chart                     // Required
	Names       *names.Resolver                      // Required
	Roller      dice.Roller                          // defaults to dice.NewRandomRoller
	RandomMaxID int                                  // defaults to DefaultRandomMaxID
}

// NewService creates a new pokedex service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Creatures == nil {
		panic("creature cache is required")
	}
	if cfg.Categories == nil {
		panic("category cache is required")
	}
	if cfg.Chart == nil {
		panic("type chart is required")
	}
	if cfg.Names == nil {
		panic("name resolver is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}
	maxID := cfg.RandomMaxID
	if maxID <= 0 {
		maxID = DefaultRandomMaxID
	}

	return &service{
		creatures:   cfg.Creatures,
		categories:  cfg.Categories,
		chart:       cfg.Chart,
		names:       cfg.Names,
		roller:      roller,
		randomMaxID: maxID,
	}
}

func (s *service) GetCreature(ctx context.Context, query string) (*entities.Creature, error) {
	creature, err := s.creatures.Resolve(ctx, query)
	if err != nil {
		return nil, dexerr.Wrap(err, "get creature").WithMeta("query", query)
	}
	return creature, nil
}

func (s *service) RandomCreature(ctx context.Context) (*entities.Creature, error) {
	roll, err := s.roller.Roll(1, s.randomMaxID, 0)
	if err != nil {
		return nil, dexerr.Wrap(err, "picking random dex number")
	}

	log.Printf("[Pokedex] random pick #%d", roll.Total)
	return s.GetCreature(ctx, strconv.Itoa(roll.Total))
}

func (s *service) Compare(ctx context.Context, first, second string) (*Comparison, error) {
	var (
		a, b       *entities.Creature
		errA, errB error
	)

	// errors are kept per side so the first name is reported first
	g := new(errgroup.Group)
	g.Go(func() error {
		a, errA = s.GetCreature(ctx, first)
		return nil
	})
	g.Go(func() error {
		b, errB = s.GetCreature(ctx, second)
		return nil
	})
	_ = g.Wait()

	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}

	firstTotal := stats.Total(a.Stats)
	secondTotal := stats.Total(b.Stats)

	return &Comparison{
		First:       a,
		Second:      b,
		Rows:        stats.CompareAll(a.Stats, b.Stats),
		FirstTotal:  firstTotal,
		SecondTotal: secondTotal,
		Winner:      stats.Compare(firstTotal, secondTotal),
	}, nil
}

func (s *service) GetCategory(ctx context.Context, name string) (*entities.CategoryInfo, error) {
	info, err := s.categories.Resolve(ctx, name)
	if err != nil {
		return nil, dexerr.Wrap(err, "get category").WithMeta("query", name)
	}
	return info, nil
}

func (s *service) Effectiveness(creature *entities.Creature) (typechart.Effectiveness, error) {
	if creature == nil {
		return nil, dexerr.InvalidArgument("creature is required")
	}
	return s.chart.EffectivenessFor(creature.Types)
}

func (s *service) Canonicalize(query string) string {
	return s.names.Canonicalize(query)
}
