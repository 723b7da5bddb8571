package drink_type

import (
	"context"
	"testing"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetKeepsNullVolume() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SaveDrinkType(ctx, &SaveDrinkTypeInput{
		DrinkType: &models.DrinkType{
			ID:        "cubata",
			Code:      "CUBATA",
			Label:     "Cubata",
			Category:  models.DrinkCategoryOther,
			UnitPrice: decimal.RequireFromString("6.50"),
			Active:    true,
		},
	}))

	drink, err := s.repo.GetDrinkType(ctx, &GetDrinkTypeInput{DrinkTypeID: "cubata"})
	s.Require().NoError(err)
	s.False(drink.HasLiters())
	s.True(drink.UnitPrice.Equal(decimal.RequireFromString("6.5")))
}

func (s *RedisRepositoryTestSuite) TestRejectsInvalidDrinkType() {
	err := s.repo.SaveDrinkType(context.Background(), &SaveDrinkTypeInput{
		DrinkType: &models.DrinkType{ID: "x", Label: "X", Category: "WINE"},
	})
	s.Error(err)

	err = s.repo.SaveDrinkType(context.Background(), &SaveDrinkTypeInput{
		DrinkType: &models.DrinkType{
			ID:               "x",
			Label:            "X",
			Category:         models.DrinkCategoryBeer,
			UnitVolumeLiters: decimal.NewNullDecimal(decimal.Zero),
		},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSeedCatalogIsIdempotent() {
	ctx := context.Background()

	added, err := SeedCatalog(ctx, s.repo)
	s.Require().NoError(err)
	s.Equal(13, added)

	added, err = SeedCatalog(ctx, s.repo)
	s.Require().NoError(err)
	s.Equal(0, added)

	beers, err := s.repo.ListDrinkTypes(ctx, &ListDrinkTypesInput{
		Category:   models.DrinkCategoryBeer,
		ActiveOnly: true,
	})
	s.Require().NoError(err)
	s.Len(beers.DrinkTypes, 10)
	s.Equal("Botellín", beers.DrinkTypes[0].Label)

	others, err := s.repo.ListDrinkTypes(ctx, &ListDrinkTypesInput{Category: models.DrinkCategoryOther})
	s.Require().NoError(err)
	s.Require().Len(others.DrinkTypes, 3)
	for _, drink := range others.DrinkTypes {
		s.False(drink.HasLiters())
	}
}

func (s *RedisRepositoryTestSuite) TestActiveOnlySkipsRetiredDrinks() {
	ctx := context.Background()
	_, err := SeedCatalog(ctx, s.repo)
	s.Require().NoError(err)

	litro, err := s.repo.GetDrinkType(ctx, &GetDrinkTypeInput{DrinkTypeID: IDForCode("LITRO")})
	s.Require().NoError(err)
	litro.Active = false
	s.Require().NoError(s.repo.SaveDrinkType(ctx, &SaveDrinkTypeInput{DrinkType: litro}))

	active, err := s.repo.ListDrinkTypes(ctx, &ListDrinkTypesInput{ActiveOnly: true})
	s.Require().NoError(err)
	s.Len(active.DrinkTypes, 12)
}

func (s *RedisRepositoryTestSuite) TestGetMissingDrinkType() {
	_, err := s.repo.GetDrinkType(context.Background(), &GetDrinkTypeInput{DrinkTypeID: "absenta"})
	s.Equal(ErrDrinkTypeNotFound, err)
}
