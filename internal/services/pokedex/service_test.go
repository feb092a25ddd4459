package pokedex_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/pokedex-bot-discord/internal/cache"
	mockpokeapi "github.com/KirkDiggler/pokedex-bot-discord/internal/clients/pokeapi/mock"
	mockdice "github.com/KirkDiggler/pokedex-bot-discord/internal/dice/mock"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/names"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/stats"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/domain/typechart"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/entities"
	dexerr "github.com/KirkDiggler/pokedex-bot-discord/internal/errors"
	"github.com/KirkDiggler/pokedex-bot-discord/internal/services/pokedex"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const speciesURL = "https://pokeapi.co/api/v2/pokemon-species/"

type ServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *mockpokeapi.MockClient
	roller     *mockdice.ManualMockRoller
	creatures  *cache.Cache[*entities.Creature]
	categories *cache.Cache[*entities.CategoryInfo]
	service    pokedex.Service
	ctx        context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = mockpokeapi.NewMockClient(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()
	s.ctx = context.Background()

	resolver := names.MustLoad()

	var err error
	s.creatures, err = cache.New(&cache.Config[*entities.Creature]{
		Name:    "pokemon",
		Fetcher: pokedex.NewCreatureFetcher(s.mockClient),
		Alias:   resolver.Alias,
	})
	s.Require().NoError(err)

	s.categories, err = cache.New(&cache.Config[*entities.CategoryInfo]{
		Name:    "type",
		Fetcher: pokedex.NewCategoryFetcher(s.mockClient),
	})
	s.Require().NoError(err)

	s.service = pokedex.NewService(&pokedex.ServiceConfig{
		Creatures:   s.creatures,
		Categories:  s.categories,
		Chart:       typechart.MustLoad(),
		Names:       resolver,
		Roller:      s.roller,
		RandomMaxID: 1010,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func creature(id int, name string, types []string, base int) *entities.Creature {
	c := &entities.Creature{
		ID:         id,
		Name:       name,
		Types:      types,
		SpeciesURL: speciesURL + name + "/",
	}
	for _, n := range entities.StatNames {
		c.Stats = append(c.Stats, entities.Stat{Name: n, Base: base})
	}
	return c
}

func (s *ServiceTestSuite) expectCreature(lookup string, c *entities.Creature) {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), lookup).Return(c, nil).Times(1)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), c.SpeciesURL).
		Return(&entities.Species{Name: c.Name, FlavorText: "flavor of " + c.Name}, nil).Times(1)
}

func (s *ServiceTestSuite) TestGetCreature_MergesSpeciesAndCaches() {
	s.expectCreature("pikachu", creature(25, "pikachu", []string{"electric"}, 50))

	first, err := s.service.GetCreature(s.ctx, "Pikachu")
	s.Require().NoError(err)
	s.Equal("flavor of pikachu", first.FlavorText())

	second, err := s.service.GetCreature(s.ctx, "pikachu")
	s.Require().NoError(err)
	s.Same(first, second)
	s.Equal(1, s.creatures.Len())
}

func (s *ServiceTestSuite) TestGetCreature_AppliesAlias() {
	s.expectCreature("charizard-mega-x", creature(10034, "charizard-mega-x", []string{"fire", "dragon"}, 100))

	got, err := s.service.GetCreature(s.ctx, "Mega Charizard X")
	s.Require().NoError(err)
	s.Equal(10034, got.ID)
}

func (s *ServiceTestSuite) TestGetCreature_SpeciesFailureIsNotFound() {
	c := creature(150, "mewtwo", []string{"psychic"}, 100)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "mewtwo").Return(c, nil).Times(2)
	s.mockClient.EXPECT().GetSpecies(gomock.Any(), c.SpeciesURL).Return(nil, dexerr.Unavailablef("boom")).Times(2)

	for i := 0; i < 2; i++ {
		_, err := s.service.GetCreature(s.ctx, "mewtwo")
		s.Require().Error(err)
		s.True(dexerr.IsNotFound(err))
		s.Equal("mewtwo", dexerr.GetMeta(err)["query"])
	}
	s.Zero(s.creatures.Len())
}

func (s *ServiceTestSuite) TestGetCreature_NotFound() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "missingno").Return(nil, dexerr.NotFound("not found"))

	_, err := s.service.GetCreature(s.ctx, "missingno")
	s.Require().Error(err)
	s.True(dexerr.IsNotFound(err))
}

func (s *ServiceTestSuite) TestRandomCreature() {
	s.roller.SetNextRoll(25)
	s.expectCreature("25", creature(25, "pikachu", []string{"electric"}, 50))

	got, err := s.service.RandomCreature(s.ctx)
	s.Require().NoError(err)
	s.Equal("pikachu", got.Name)
}

func (s *ServiceTestSuite) TestRandomCreature_RollFails() {
	_, err := s.service.RandomCreature(s.ctx)
	s.Error(err)
}

func (s *ServiceTestSuite) TestCompare() {
	s.expectCreature("pikachu", creature(25, "pikachu", []string{"electric"}, 50))
	s.expectCreature("raichu", creature(26, "raichu", []string{"electric"}, 80))

	cmp, err := s.service.Compare(s.ctx, "pikachu", "raichu")
	s.Require().NoError(err)

	s.Equal("pikachu", cmp.First.Name)
	s.Equal("raichu", cmp.Second.Name)
	s.Equal(300, cmp.FirstTotal)
	s.Equal(480, cmp.SecondTotal)
	s.Equal(stats.WinnerSecond, cmp.Winner)
	s.Len(cmp.Rows, 6)
}

func (s *ServiceTestSuite) TestCompare_ReportsFirstMissingName() {
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "missingno").Return(nil, dexerr.NotFound("not found"))
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "agumon").Return(nil, dexerr.NotFound("not found"))

	_, err := s.service.Compare(s.ctx, "missingno", "agumon")
	s.Require().Error(err)
	s.True(dexerr.IsNotFound(err))
	s.Equal("missingno", dexerr.GetMeta(err)["query"])
}

func (s *ServiceTestSuite) TestCompare_ReportsSecondMissingName() {
	s.expectCreature("pikachu", creature(25, "pikachu", []string{"electric"}, 50))
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "agumon").Return(nil, dexerr.NotFound("not found"))

	_, err := s.service.Compare(s.ctx, "pikachu", "agumon")
	s.Require().Error(err)
	s.Equal("agumon", dexerr.GetMeta(err)["query"])
}

func (s *ServiceTestSuite) TestGetCategory() {
	fire := &entities.CategoryInfo{ID: 10, Name: "fire"}
	s.mockClient.EXPECT().GetType(gomock.Any(), "fire").Return(fire, nil).Times(1)

	got, err := s.service.GetCategory(s.ctx, "FIRE")
	s.Require().NoError(err)
	s.Same(fire, got)

	_, err = s.service.GetCategory(s.ctx, "fire")
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestGetCategory_NotFound() {
	s.mockClient.EXPECT().GetType(gomock.Any(), "shadow").Return(nil, dexerr.NotFound("not found"))

	_, err := s.service.GetCategory(s.ctx, "shadow")
	s.Require().Error(err)
	s.True(dexerr.IsNotFound(err))
	s.Equal("shadow", dexerr.GetMeta(err)["query"])
}

func (s *ServiceTestSuite) TestEffectiveness() {
	eff, err := s.service.Effectiveness(creature(94, "gengar", []string{"ghost", "poison"}, 0))
	s.Require().NoError(err)
	s.Zero(eff[typechart.Normal])
	s.Zero(eff[typechart.Fighting])
	s.Equal(2.0, eff[typechart.Psychic])
	s.Equal(0.25, eff[typechart.Bug])

	_, err = s.service.Effectiveness(nil)
	s.True(dexerr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCanonicalize() {
	s.Equal("raichu-alola", s.service.Canonicalize("Alolan Raichu"))
}
