package drink_type

import (
	"context"
	"testing"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo Repository
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	repo, err := NewGorm(&GormConfig{DB: db, AutoMigrate: true})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *GormRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func (s *GormRepositoryTestSuite) TestSeedAndRead() {
	ctx := context.Background()

	added, err := SeedCatalog(ctx, s.repo)
	s.Require().NoError(err)
	s.Equal(13, added)

	tercio, err := s.repo.GetDrinkType(ctx, &GetDrinkTypeInput{DrinkTypeID: IDForCode("TERCIO")})
	s.Require().NoError(err)
	s.True(tercio.HasLiters())
	s.True(tercio.UnitVolumeLiters.Decimal.Equal(decimal.RequireFromString("0.33")))
	s.True(tercio.UnitPrice.Equal(decimal.RequireFromString("2.25")))

	chupito, err := s.repo.GetDrinkType(ctx, &GetDrinkTypeInput{DrinkTypeID: IDForCode("CHUPITO")})
	s.Require().NoError(err)
	s.False(chupito.HasLiters())
}

func (s *GormRepositoryTestSuite) TestListByCategory() {
	ctx := context.Background()
	_, err := SeedCatalog(ctx, s.repo)
	s.Require().NoError(err)

	others, err := s.repo.ListDrinkTypes(ctx, &ListDrinkTypesInput{
		Category:   models.DrinkCategoryOther,
		ActiveOnly: true,
	})
	s.Require().NoError(err)
	s.Require().Len(others.DrinkTypes, 3)
	s.Equal("Chupito", others.DrinkTypes[0].Label)
	s.Equal("Cubata", others.DrinkTypes[1].Label)
	s.Equal("Piedra", others.DrinkTypes[2].Label)
}

func (s *GormRepositoryTestSuite) TestGetMissingDrinkType() {
	_, err := s.repo.GetDrinkType(context.Background(), &GetDrinkTypeInput{DrinkTypeID: "absenta"})
	s.Equal(ErrDrinkTypeNotFound, err)
}
